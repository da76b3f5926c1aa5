package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storehub/config"
	"storehub/internal/delivery/api/middleware"
	"storehub/internal/delivery/api/router"
	"storehub/internal/delivery/api/router/handler"
	"storehub/internal/domain/service"
	"storehub/internal/infra/auth"
	"storehub/internal/infra/persistence/memory"
	mockSvc "storehub/internal/mocks/service"
	"storehub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@storehub.local"
	adminPassword = "admin-secret"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	e        *echo.Echo
	assets   *mockSvc.MockAssetStorage
	notifier *mockSvc.MockNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.Admin = config.AdminConfig{Name: "Admin", Email: adminEmail, Password: adminPassword}
	cfg.Assets = &config.AssetsConfig{MaxUploadSizeMB: 1}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := memory.New()
	accounts := memory.NewAccountRepository(db)
	stores := memory.NewStoreRepository(db)
	products := memory.NewProductRepository(db)
	assets := mockSvc.NewMockAssetStorage(t)
	notifier := mockSvc.NewMockNotifier(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo:  accounts,
		StoreRepo:    stores,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	storeUC := impl.NewStoreService(impl.StoreServiceParams{
		AccountRepo: accounts, StoreRepo: stores, ProductRepo: products, Assets: assets, Logger: logger,
	})
	cascadeUC := impl.NewCascadeService(impl.CascadeServiceParams{
		AccountRepo: accounts, StoreRepo: stores, ProductRepo: products, Assets: assets, Notifier: notifier, Logger: logger,
	})
	adminUC := impl.NewAdminService(impl.AdminServiceParams{
		AccountRepo: accounts, StoreRepo: stores, Notifier: notifier, Logger: logger,
	})
	uploadUC := impl.NewUploadService(impl.UploadServiceParams{Assets: assets, Config: cfg, Logger: logger})

	e := NewEcho(cfg, logger, router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: accountUC, Logger: logger}),
		StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreUC: storeUC, CascadeUC: cascadeUC, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: adminUC, CascadeUC: cascadeUC, Logger: logger}),
		UploadHandler:  handler.NewUploadHandler(handler.UploadHandlerParams{UploadUC: uploadUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AccountUC: accountUC, Logger: logger}),
	})

	return &testServer{e: e, assets: assets, notifier: notifier}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func (s *testServer) register(t *testing.T, name, email, role, phone string) (token, id string) {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": name, "email": email, "password": "password123", "role": role, "phone": phone,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out.Token, out.ID.String()
}

func (s *testServer) loginAdmin(t *testing.T) string {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": adminEmail, "password": adminPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out.Token
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec, env := s.serve(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestServer_RegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	s.register(t, "Ravi", "ravi@example.com", "vendor", "9876543210")

	rec, env := s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": "Ravi", "email": "RAVI@example.com", "password": "x", "role": "customer",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": "Eve", "email": "eve@example.com", "password": "x", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "ravi@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "password")
	out := decode[handler.AuthResponse](t, env)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "9876543210", out.Phone)

	rec, env = s.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "ravi@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestServer_AuthenticationAndCapabilities(t *testing.T) {
	s := newTestServer(t)
	customer, _ := s.register(t, "Asha", "asha@example.com", "customer", "")

	rec, env := s.do(t, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	rec, _ = s.do(t, http.MethodGet, "/api/users/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = s.do(t, http.MethodGet, "/api/users/profile", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[handler.ProfileResponse](t, env)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Empty(t, profile.FavoriteStores)

	rec, env = s.do(t, http.MethodPost, "/api/stores/request", customer, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/admin/vendors", customer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_MarketplaceLifecycle(t *testing.T) {
	s := newTestServer(t)

	vendor, vendorID := s.register(t, "Ravi", "ravi@example.com", "vendor", "9876543210")
	customer, _ := s.register(t, "Asha", "asha@example.com", "customer", "")
	admin := s.loginAdmin(t)

	rec, env := s.do(t, http.MethodPost, "/api/stores/request", vendor, map[string]any{
		"name":     "Green Grocer",
		"image":    "local_store_hub/2026/04/store.png",
		"category": "Grocery",
		"address":  map[string]string{"area": "Baner", "city": "Pune", "district": "Pune"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	store := decode[handler.StoreResponse](t, env)
	assert.Equal(t, "pending", string(store.Status))
	storeURL := "/api/stores/" + store.ID.String()

	rec, env = s.do(t, http.MethodGet, "/api/admin/requests", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	requests := decode[[]handler.AdminStoreResponse](t, env)
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].Vendor)
	assert.Equal(t, "9876543210", requests[0].Vendor.Phone)

	rec, env = s.do(t, http.MethodPut, "/api/admin/requests/"+store.ID.String(), admin, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	s.notifier.EXPECT().
		Notify(mock.Anything, "ravi@example.com", "Your Store Request has been approved", mock.Anything).
		Return(nil).Once()
	rec, _ = s.do(t, http.MethodPut, "/api/admin/requests/"+store.ID.String(), admin, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = s.do(t, http.MethodPut, "/api/admin/requests/"+store.ID.String(), admin, map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)

	rec, _ = s.do(t, http.MethodPost, storeURL+"/products", vendor, map[string]any{
		"name": "Apples", "image": "local_store_hub/2026/04/apples.png", "price": 50,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = s.do(t, http.MethodPost, storeURL+"/products", customer, map[string]any{"name": "Pears", "price": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = s.do(t, http.MethodPost, storeURL+"/reviews", customer, map[string]any{"rating": 4, "comment": "Fresh"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reviewed := decode[handler.StoreResponse](t, env)
	assert.InDelta(t, 4.0, reviewed.Rating, 1e-9)
	assert.Equal(t, 1, reviewed.ReviewCount)

	rec, env = s.do(t, http.MethodPost, storeURL+"/reviews", customer, map[string]any{"rating": 5, "comment": "Again"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_REVIEW", env.Error.Code)

	rec, env = s.do(t, http.MethodPut, "/api/users/profile/favorite/"+store.ID.String(), customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[handler.FavoriteResponse](t, env).Favorited)

	rec, env = s.do(t, http.MethodGet, "/api/stores?keyword=baner", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]handler.StoreResponse](t, env), 1)

	rec, env = s.do(t, http.MethodGet, storeURL, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[handler.StoreDetailResponse](t, env)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "Apples", detail.Products[0].Name)

	s.assets.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).Return(service.AssetDeleted, nil).Times(2)
	s.notifier.EXPECT().
		Notify(mock.Anything, "ravi@example.com", "Your Account has been Deleted", mock.Anything).
		Return(nil).Once()

	rec, env = s.do(t, http.MethodDelete, "/api/admin/vendors/"+vendorID, admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[handler.CascadeResponse](t, env)
	assert.EqualValues(t, 1, report.StoresDeleted)
	assert.EqualValues(t, 1, report.ProductsDeleted)
	assert.EqualValues(t, 1, report.FavoritesScrubbed)

	rec, env = s.do(t, http.MethodGet, storeURL, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STORE_NOT_FOUND", env.Error.Code)

	rec, env = s.do(t, http.MethodGet, "/api/users/profile", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[handler.ProfileResponse](t, env).Favorites)

	rec, _ = s.do(t, http.MethodGet, "/api/stores/my-stores", vendor, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_UploadImage(t *testing.T) {
	s := newTestServer(t)
	customer, _ := s.register(t, "Asha", "asha@example.com", "customer", "")

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	multipartRequest := func(field string, data []byte) *http.Request {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile(field, "photo.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+customer)

		return req
	}

	s.assets.EXPECT().
		Upload(mock.Anything, mock.Anything, int64(len(png)), "image/png").
		Return(&service.UploadedAsset{PublicID: "local_store_hub/2026/04/a.png", ImageURL: "http://img/a.png"}, nil).Once()

	rec, env := s.serve(t, multipartRequest("image", png))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"publicId":"local_store_hub/2026/04/a.png","imageUrl":"http://img/a.png"}`, string(env.Data))

	rec, env = s.serve(t, multipartRequest("file", png))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = s.serve(t, multipartRequest("image", []byte("plain text, not an image")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
