package memory

import (
	"context"
	"testing"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(New())

	account := &entity.Account{Name: "Asha", Email: "asha@example.com", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)

	got, err := repo.FindByEmail(ctx, "ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	err = repo.Create(ctx, &entity.Account{Email: "asha@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_FavoritesAreASet(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(New())

	account := &entity.Account{Email: "c@example.com", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, account))

	storeID := uuid.New()
	require.NoError(t, repo.AddFavorite(ctx, account.ID, storeID))
	require.NoError(t, repo.AddFavorite(ctx, account.ID, storeID))

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{storeID}, got.Favorites)

	require.NoError(t, repo.RemoveFavorite(ctx, account.ID, storeID))
	require.NoError(t, repo.RemoveFavorite(ctx, account.ID, storeID))

	got, err = repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Favorites)

	assert.ErrorIs(t, repo.AddFavorite(ctx, uuid.New(), storeID), repository.ErrAccountNotFound)
}

func TestAccountRepository_RemoveFavoritesEverywhere(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(New())

	gone, kept := uuid.New(), uuid.New()
	holders := []*entity.Account{
		{Email: "a@example.com", Favorites: []uuid.UUID{gone, kept}},
		{Email: "b@example.com", Favorites: []uuid.UUID{gone}},
		{Email: "c@example.com", Favorites: []uuid.UUID{kept}},
	}
	for _, account := range holders {
		require.NoError(t, repo.Create(ctx, account))
	}

	modified, err := repo.RemoveFavoritesEverywhere(ctx, []uuid.UUID{gone})
	require.NoError(t, err)
	assert.EqualValues(t, 2, modified)

	for _, account := range holders {
		got, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.False(t, got.HasFavorite(gone))
	}

	got, err := repo.FindByID(ctx, holders[0].ID)
	require.NoError(t, err)
	assert.True(t, got.HasFavorite(kept))
}

func TestStoreRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(New())
	vendorID := uuid.New()

	stores := []*entity.Store{
		{VendorID: vendorID, Name: "Green Grocer", Category: "Grocery", Status: entity.StoreStatusApproved, Rating: 3},
		{VendorID: vendorID, Name: "Book Nook", Category: "Books", Address: entity.Address{City: "Pune"}, Status: entity.StoreStatusApproved, Rating: 4.5},
		{VendorID: uuid.New(), Name: "Greens Cafe", Status: entity.StoreStatusPending},
	}
	for _, store := range stores {
		require.NoError(t, repo.Create(ctx, store))
	}

	approved, err := repo.List(ctx, repository.StoreFilter{Status: entity.StoreStatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, "Book Nook", approved[0].Name)

	byCity, err := repo.List(ctx, repository.StoreFilter{Status: entity.StoreStatusApproved, Keyword: "pune"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Book Nook", byCity[0].Name)

	green, err := repo.List(ctx, repository.StoreFilter{Keyword: "green", NameOnly: true})
	require.NoError(t, err)
	assert.Len(t, green, 2)

	mine, err := repo.List(ctx, repository.StoreFilter{VendorID: vendorID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestStoreRepository_UpdateStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(New())

	store := &entity.Store{Name: "Green Grocer", Status: entity.StoreStatusPending}
	require.NoError(t, repo.Create(ctx, store))

	require.NoError(t, repo.UpdateStatus(ctx, store.ID, entity.StoreStatusPending, entity.StoreStatusApproved))

	err := repo.UpdateStatus(ctx, store.ID, entity.StoreStatusPending, entity.StoreStatusRejected)
	assert.ErrorIs(t, err, repository.ErrStatusConflict)

	err = repo.UpdateStatus(ctx, uuid.New(), entity.StoreStatusPending, entity.StoreStatusApproved)
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRepository(New())

	store := &entity.Store{Name: "Green Grocer", Status: entity.StoreStatusApproved}
	require.NoError(t, repo.Create(ctx, store))

	got, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	got.AppendReview(entity.Review{AccountID: uuid.New(), Rating: 5, Comment: "fresh"})

	again, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Reviews)

	require.NoError(t, repo.SaveReviews(ctx, got))
	again, err = repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Len(t, again.Reviews, 1)
	assert.Equal(t, 1, again.ReviewCount)
}

func TestProductRepository_DeleteByStores(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(New())

	storeA, storeB := uuid.New(), uuid.New()
	for _, product := range []*entity.Product{
		{StoreID: storeA, Name: "Apples"},
		{StoreID: storeA, Name: "Bananas"},
		{StoreID: storeB, Name: "Cherries"},
	} {
		require.NoError(t, repo.Create(ctx, product))
	}

	apples, err := repo.ListByStore(ctx, storeA, "APP")
	require.NoError(t, err)
	require.Len(t, apples, 1)

	deleted, err := repo.DeleteByStores(ctx, []uuid.UUID{storeA})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	remaining, err := repo.ListByStores(ctx, []uuid.UUID{storeA, storeB})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Cherries", remaining[0].Name)

	assert.NoError(t, repo.Delete(ctx, uuid.New()))
}
