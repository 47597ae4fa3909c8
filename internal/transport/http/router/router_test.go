package router

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"go-shop-services/internal/core/cache"
	"go-shop-services/internal/domain"
	"go-shop-services/internal/repo"
	"go-shop-services/internal/service"
	"go-shop-services/internal/transport/http/handler"
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

func newProductsApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testDB(t)
	svc := service.NewCatalog(repo.NewProductRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	return NewProductsEngine(zap.NewNop(), handler.NewProductHandler(svc)), db
}

func newUsersApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testDB(t)
	svc := service.NewDirectory(repo.NewUserRepo(db), cache.New(cache.NewMemory()), zap.NewNop(), time.Minute)
	return NewUsersEngine(zap.NewNop(), handler.NewUserHandler(svc), nil), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
