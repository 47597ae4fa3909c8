package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-shop-services/internal/core/cache"
	"go-shop-services/internal/domain"
	"go-shop-services/internal/repo"
)

const productEntity = "products"

// CatalogService 商品/分类：列表走读穿缓存，写成功后整命名空间失效
type CatalogService struct {
	repo  *repo.ProductRepo
	cache *cache.Cache
	log   *zap.Logger
	ttl   time.Duration
}

func NewCatalog(r *repo.ProductRepo, c *cache.Cache, l *zap.Logger, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: r, cache: c, log: l, ttl: ttl}
}

func (s *CatalogService) List(ctx context.Context, p domain.ListParams) ([]domain.ProductView, error) {
	p = p.Normalize()
	return cache.GetOrLoadJSON(s.cache, ctx, p.CacheKey(productEntity), s.ttl,
		func(ctx context.Context) ([]domain.ProductView, error) {
			return s.repo.List(ctx, p)
		})
}

// Get 点查不进缓存
func (s *CatalogService) Get(ctx context.Context, id uint) (*domain.ProductView, error) {
	return s.repo.GetByID(ctx, id)
}

// Create 提交成功 → 失效缓存 → 回读带分类名的规范行
func (s *CatalogService) Create(ctx context.Context, m *domain.Product) (*domain.ProductView, error) {
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, m.ID)
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

// invalidate 失败只告警：库已提交，宁可短暂脏读也不阻塞写
func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateNamespace(ctx, domain.ListNamespace(productEntity)); err != nil {
		s.log.Warn("cache invalidate failed",
			zap.String("entity", productEntity), zap.Error(err))
	}
}
