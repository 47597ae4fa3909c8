package repo

import (
	"context"

	"gorm.io/gorm"

	"go-shop-services/internal/domain"
)

var productSpec = ListSpec{
	Table:  "products AS p",
	Select: "p.id, p.name, p.price, c.name AS category",
	Join:   "LEFT JOIN category c ON c.id = p.category_id",
	IDCol:  "p.id",
}

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context, p domain.ListParams) ([]domain.ProductView, error) {
	return listRows[domain.ProductView](ctx, r.db, productSpec, p)
}

func (r *ProductRepo) GetByID(ctx context.Context, id uint) (*domain.ProductView, error) {
	return getRow[domain.ProductView](ctx, r.db, productSpec, id)
}

// Create 单事务插入，id 由库分配写回 m
func (r *ProductRepo) Create(ctx context.Context, m *domain.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	return wrapWriteErr(err)
}

// DeleteByID 幂等：删不存在的 id 也算成功
func (r *ProductRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error
}

func (r *ProductRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
