package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"go-shop-services/internal/core/cache"
	"go-shop-services/internal/domain"
	"go-shop-services/internal/repo"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.Category{}, &domain.Product{},
		&domain.Role{}, &domain.User{},
	))
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestCatalogListFreshAfterCreate(t *testing.T) {
	db := testDB(t)
	svc := NewCatalog(repo.NewProductRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Category{ID: 1, Name: "Stationery"}).Error)

	p := domain.ListParams{Limit: 20}
	first, err := svc.List(ctx, p)
	require.NoError(t, err)
	assert.Len(t, first, 0)

	// 列表已进缓存；写成功后必须整命名空间失效，立刻可见
	created, err := svc.Create(ctx, &domain.Product{Name: "Pen", Price: 1.5, CategoryID: uintPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Stationery", *created.Category)

	second, err := svc.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Pen", second[0].Name)
}

func TestCatalogInvalidationCoversAllPages(t *testing.T) {
	db := testDB(t)
	svc := NewCatalog(repo.NewProductRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &domain.Product{Name: "p", Price: 1})
		require.NoError(t, err)
	}

	// 用不同参数铺几个缓存页
	pages := []domain.ListParams{
		{Limit: 2, Offset: 0, Order: domain.OrderAsc},
		{Limit: 2, Offset: 2, Order: domain.OrderAsc},
		{Limit: 20, Offset: 0, Order: domain.OrderDesc},
	}
	for _, p := range pages {
		_, err := svc.List(ctx, p)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, 1))

	for _, p := range pages {
		rows, err := svc.List(ctx, p)
		require.NoError(t, err)
		for _, r := range rows {
			assert.NotEqual(t, uint(1), r.ID, "params %+v 命中了脏缓存", p)
		}
	}
}

func TestCatalogCacheTransparency(t *testing.T) {
	db := testDB(t)
	svc := NewCatalog(repo.NewProductRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Category{ID: 1, Name: "Stationery"}).Error)
	_, err := svc.Create(ctx, &domain.Product{Name: "Pen", Price: 1.5, CategoryID: uintPtr(1)})
	require.NoError(t, err)

	p := domain.ListParams{Limit: 20}
	fresh, err := svc.List(ctx, p)
	require.NoError(t, err)
	cached, err := svc.List(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
}

// failDeleteStore 失效报错但读写正常：写路径不能因此失败
type failDeleteStore struct{ cache.Store }

func (failDeleteStore) DeletePrefix(context.Context, string) error {
	return errors.New("cache unreachable")
}

func TestInvalidationFailureDoesNotFailWrite(t *testing.T) {
	db := testDB(t)
	store := failDeleteStore{Store: cache.NewMemory()}
	svc := NewDirectory(repo.NewUserRepo(db), cache.New(store), zap.NewNop(), time.Minute)
	ctx := context.Background()

	created, err := svc.Create(ctx, &domain.User{Name: "a", Email: "a@x.dev"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.dev", created.Email)

	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestDirectoryUpdateVisibleAfterCachedList(t *testing.T) {
	db := testDB(t)
	svc := NewDirectory(repo.NewUserRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	ctx := context.Background()

	u, err := svc.Create(ctx, &domain.User{Name: "a", Email: "a@x.dev"})
	require.NoError(t, err)

	p := domain.ListParams{Limit: 20}
	_, err = svc.List(ctx, p) // 预热缓存
	require.NoError(t, err)

	updated, err := svc.Update(ctx, u.ID, map[string]any{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	rows, err := svc.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "renamed", rows[0].Name)
}

func TestDirectoryCreateConflictPropagates(t *testing.T) {
	db := testDB(t)
	svc := NewDirectory(repo.NewUserRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.User{Name: "a", Email: "a@x.dev"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.User{Name: "b", Email: "a@x.dev"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
