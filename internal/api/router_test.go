package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paycoin_backend/internal/api"
	"paycoin_backend/internal/domain"
	"paycoin_backend/internal/middleware"
	"paycoin_backend/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// testEnv bundles the wired router with its backing stores
type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	rdb       *redis.Client
	uploadDir string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Store{}, &domain.Product{}, &domain.Transaction{}))
	return db
}

// newTestEnv wires the full route table against in-memory sqlite and miniredis
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	srv, err := miniredis.Run()
	require.NoError(t, err, "start miniredis")
	t.Cleanup(srv.Close)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	uploadDir := t.TempDir()
	diskStore, err := storage.NewDiskStore(uploadDir)
	require.NoError(t, err, "prepare upload dir")

	r := gin.New()
	apiGroup := r.Group("/api")
	apiGroup.GET("/health", api.HealthHandler())
	apiGroup.POST("/auth/register", api.RegisterHandler(db, testSecret))
	apiGroup.POST("/auth/login", api.LoginHandler(db, testSecret))
	apiGroup.GET("/stores", api.ListStoresHandler(db, rdb))
	apiGroup.GET("/products", api.ListProductsHandler(db, rdb))

	authGroup := apiGroup.Group("")
	authGroup.Use(middleware.JWTAuthMiddleware(db, testSecret))
	authGroup.GET("/user/profile", api.GetProfileHandler())
	authGroup.PUT("/user/profile", api.UpdateProfileHandler(db))
	authGroup.POST("/user/upload-image", api.UploadInlineImageHandler(db, storage.InlineStore{}))
	authGroup.POST("/upload/image", api.UploadImageHandler(db, diskStore))
	authGroup.DELETE("/upload/image/:image_type", api.RemoveImageHandler(db, diskStore))
	authGroup.POST("/transactions", api.CreateTransactionHandler(db))
	authGroup.GET("/transactions", api.ListTransactionsHandler(db))

	merchantGroup := authGroup.Group("")
	merchantGroup.Use(middleware.MerchantOnlyMiddleware())
	merchantGroup.POST("/stores", api.CreateStoreHandler(db, rdb))
	merchantGroup.GET("/my-stores", api.MyStoresHandler(db))
	merchantGroup.POST("/products", api.CreateProductHandler(db, rdb))
	merchantGroup.GET("/my-products", api.MyProductsHandler(db))
	merchantGroup.GET("/analytics/dashboard", api.DashboardAnalyticsHandler(db))

	return &testEnv{router: r, db: db, rdb: rdb, uploadDir: uploadDir}
}

// doJSON performs a request with an optional bearer token and JSON body
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the API and returns the token response
func (e *testEnv) register(t *testing.T, email, userType string) api.TokenResponse {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     email,
		"name":      "Test User",
		"user_type": userType,
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", email, w.Body.String())
	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
