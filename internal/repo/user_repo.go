package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-shop-services/internal/domain"
)

var userSpec = ListSpec{
	Table:  "users AS u",
	Select: "u.id, u.name, u.email, r.name AS role",
	Join:   "LEFT JOIN role r ON r.id = u.role_id",
	IDCol:  "u.id",
}

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) List(ctx context.Context, p domain.ListParams) ([]domain.UserView, error) {
	return listRows[domain.UserView](ctx, r.db, userSpec, p)
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*domain.UserView, error) {
	return getRow[domain.UserView](ctx, r.db, userSpec, id)
}

func (r *UserRepo) Create(ctx context.Context, m *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
	return wrapWriteErr(err)
}

// UpdatePartial 只更新传入的字段；先在事务内确认存在，再打补丁
func (r *UserRepo) UpdatePartial(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if e := tx.First(&u, id).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return e
		}
		return tx.Model(&u).Updates(fields).Error
	})
	return wrapWriteErr(err)
}

func (r *UserRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, id).Error
}

func (r *UserRepo) Roles(ctx context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
