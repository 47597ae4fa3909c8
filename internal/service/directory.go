package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-shop-services/internal/core/cache"
	"go-shop-services/internal/domain"
	"go-shop-services/internal/repo"
)

const userEntity = "users"

// DirectoryService 用户/角色，缓存与失效策略和 Catalog 完全一致
type DirectoryService struct {
	repo  *repo.UserRepo
	cache *cache.Cache
	log   *zap.Logger
	ttl   time.Duration
}

func NewDirectory(r *repo.UserRepo, c *cache.Cache, l *zap.Logger, ttl time.Duration) *DirectoryService {
	return &DirectoryService{repo: r, cache: c, log: l, ttl: ttl}
}

func (s *DirectoryService) List(ctx context.Context, p domain.ListParams) ([]domain.UserView, error) {
	p = p.Normalize()
	return cache.GetOrLoadJSON(s.cache, ctx, p.CacheKey(userEntity), s.ttl,
		func(ctx context.Context) ([]domain.UserView, error) {
			return s.repo.List(ctx, p)
		})
}

func (s *DirectoryService) Get(ctx context.Context, id uint) (*domain.UserView, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DirectoryService) Create(ctx context.Context, m *domain.User) (*domain.UserView, error) {
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, m.ID)
}

func (s *DirectoryService) Update(ctx context.Context, id uint, fields map[string]any) (*domain.UserView, error) {
	if err := s.repo.UpdatePartial(ctx, id, fields); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *DirectoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DirectoryService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.repo.Roles(ctx)
}

func (s *DirectoryService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateNamespace(ctx, domain.ListNamespace(userEntity)); err != nil {
		s.log.Warn("cache invalidate failed",
			zap.String("entity", userEntity), zap.Error(err))
	}
}
