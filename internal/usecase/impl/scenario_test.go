package impl

import (
	"context"
	"testing"

	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMarketplaceLifecycle follows a vendor from registration to removal by the admin.
func TestMarketplaceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vendorAuth, err := env.accountSvc.Register(ctx, usecase.RegisterInput{
		Name: "Ravi", Email: "ravi@example.com", Password: testPassword, Role: entity.RoleVendor, Phone: "9876543210",
	})
	require.NoError(t, err)
	vendor, err := env.accountSvc.ResolvePrincipal(ctx, vendorAuth.Token)
	require.NoError(t, err)

	store, err := env.storeSvc.RequestStore(ctx, vendor, usecase.RequestStoreInput{
		Name:     "Green Grocer",
		Image:    "local_store_hub/2026/04/store.png",
		Category: "Grocery",
		Address:  entity.Address{Area: "Baner", City: "Pune", District: "Pune"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusPending, store.Status)

	adminAuth, err := env.accountSvc.Login(ctx, usecase.LoginInput{Email: testAdminEmail, Password: testAdminPassword})
	require.NoError(t, err)
	admin, err := env.accountSvc.ResolvePrincipal(ctx, adminAuth.Token)
	require.NoError(t, err)

	env.notifier.EXPECT().
		Notify(mock.Anything, "ravi@example.com", "Your Store Request has been approved", mock.Anything).
		Return(nil).Once()
	approved, err := env.adminSvc.SetStoreStatus(ctx, admin, store.ID, entity.StoreStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.StoreStatusApproved, approved.Status)

	apples, err := env.storeSvc.CreateProduct(ctx, vendor, store.ID, usecase.CreateProductInput{
		Name: "Apples", Image: "local_store_hub/2026/04/apples.png", Price: 50,
	})
	require.NoError(t, err)

	customerAuth, err := env.accountSvc.Register(ctx, usecase.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: testPassword, Role: entity.RoleCustomer,
	})
	require.NoError(t, err)
	customer, err := env.accountSvc.ResolvePrincipal(ctx, customerAuth.Token)
	require.NoError(t, err)

	fav, err := env.accountSvc.ToggleFavorite(ctx, customer, store.ID)
	require.NoError(t, err)
	require.True(t, fav.Favorited)

	env.assets.EXPECT().Delete(mock.Anything, mock.AnythingOfType("string")).Return(service.AssetDeleted, nil).Times(2)
	env.notifier.EXPECT().
		Notify(mock.Anything, "ravi@example.com", "Your Account has been Deleted", mock.Anything).
		Return(nil).Once()

	_, err = env.cascadeSvc.DeleteVendor(ctx, admin, vendor.AccountID)
	require.NoError(t, err)

	_, err = env.storeSvc.GetStore(ctx, store.ID)
	assertAppError(t, err, domainerrors.ErrStoreNotFound)

	_, err = env.products.FindByID(ctx, apples.ID)
	assert.Error(t, err)

	profile, err := env.accountSvc.Profile(ctx, customer)
	require.NoError(t, err)
	assert.Empty(t, profile.Favorites)
	assert.Empty(t, profile.Account.Favorites)

	_, err = env.accountSvc.ResolvePrincipal(ctx, vendorAuth.Token)
	assertAppError(t, err, domainerrors.ErrUnauthenticated)
}
