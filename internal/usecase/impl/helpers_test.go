package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storehub/config"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/repository"
	"storehub/internal/infra/auth"
	"storehub/internal/infra/persistence/memory"
	mockSvc "storehub/internal/mocks/service"
	"storehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@storehub.local"
	testAdminPassword = "admin-secret"
	testPassword      = "password123"
)

// testEnv wires the services against the in-memory backend with mocked
// collaborators.
type testEnv struct {
	cfg      *config.Config
	accounts repository.AccountRepository
	stores   repository.StoreRepository
	products repository.ProductRepository
	assets   *mockSvc.MockAssetStorage
	notifier *mockSvc.MockNotifier

	accountSvc usecase.AccountUsecase
	storeSvc   usecase.StoreUsecase
	cascadeSvc usecase.CascadeUsecase
	adminSvc   usecase.AdminUsecase
	uploadSvc  usecase.UploadUsecase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Admin = config.AdminConfig{Name: "Admin", Email: testAdminEmail, Password: testAdminPassword}
	cfg.Assets = &config.AssetsConfig{MaxUploadSizeMB: 1}

	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	db := memory.New()
	env := &testEnv{
		cfg:      cfg,
		accounts: memory.NewAccountRepository(db),
		stores:   memory.NewStoreRepository(db),
		products: memory.NewProductRepository(db),
		assets:   mockSvc.NewMockAssetStorage(t),
		notifier: mockSvc.NewMockNotifier(t),
	}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	logger := discardLogger()

	env.accountSvc = NewAccountService(AccountServiceParams{
		AccountRepo:  env.accounts,
		StoreRepo:    env.stores,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	env.storeSvc = NewStoreService(StoreServiceParams{
		AccountRepo: env.accounts,
		StoreRepo:   env.stores,
		ProductRepo: env.products,
		Assets:      env.assets,
		Logger:      logger,
	})
	env.cascadeSvc = NewCascadeService(CascadeServiceParams{
		AccountRepo: env.accounts,
		StoreRepo:   env.stores,
		ProductRepo: env.products,
		Assets:      env.assets,
		Notifier:    env.notifier,
		Logger:      logger,
	})
	env.adminSvc = NewAdminService(AdminServiceParams{
		AccountRepo: env.accounts,
		StoreRepo:   env.stores,
		Notifier:    env.notifier,
		Logger:      logger,
	})
	env.uploadSvc = NewUploadService(UploadServiceParams{
		Assets: env.assets,
		Config: cfg,
		Logger: logger,
	})

	return env
}

func (env *testEnv) seedAccount(t *testing.T, role entity.Role, name, email string) *entity.Account {
	t.Helper()

	account := &entity.Account{Name: name, Email: email, Role: role, Favorites: []uuid.UUID{}}
	if role == entity.RoleVendor {
		account.Phone = "9876543210"
	}
	require.NoError(t, env.accounts.Create(context.Background(), account))

	return account
}

func (env *testEnv) seedStore(t *testing.T, vendorID uuid.UUID, name string, status entity.StoreStatus, image string) *entity.Store {
	t.Helper()

	store := &entity.Store{
		VendorID: vendorID,
		Name:     name,
		Image:    image,
		Category: "Grocery",
		Address:  entity.Address{Area: "Baner", City: "Pune", District: "Pune"},
		Status:   status,
	}
	require.NoError(t, env.stores.Create(context.Background(), store))

	return store
}

func (env *testEnv) seedProduct(t *testing.T, store *entity.Store, name, image string) *entity.Product {
	t.Helper()

	product := &entity.Product{StoreID: store.ID, VendorID: store.VendorID, Name: name, Image: image, Price: 10}
	require.NoError(t, env.products.Create(context.Background(), product))

	return product
}

func (env *testEnv) favorite(t *testing.T, account *entity.Account, stores ...*entity.Store) {
	t.Helper()

	for _, store := range stores {
		require.NoError(t, env.accounts.AddFavorite(context.Background(), account.ID, store.ID))
	}
}

func adminPrincipal() *entity.Principal {
	return &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}
}

// assertAppError checks both the error identity and the HTTP status it maps to.
func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}
