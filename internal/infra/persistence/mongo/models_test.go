package mongo

import (
	"testing"
	"time"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestStoreDocMapping(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := &entity.Store{
		ID:       uuid.New(),
		VendorID: uuid.New(),
		Name:     "Green Grocer",
		Image:    "local_store_hub/2026/01/a.png",
		Category: "Grocery",
		Address:  entity.Address{Area: "Baner", City: "Pune", District: "Pune"},
		Status:   entity.StoreStatusApproved,
		Reviews: []entity.Review{
			{AccountID: uuid.New(), Name: "Asha", Rating: 4, Comment: "fresh", CreatedAt: createdAt},
		},
		Rating:      4,
		ReviewCount: 1,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	assert.Equal(t, store, storeFromDoc(storeToDoc(store)))
}

func TestAccountDocFavoritesNeverNull(t *testing.T) {
	doc := accountToDoc(&entity.Account{ID: uuid.New(), Role: entity.RoleCustomer})

	// $addToSet fails on a null field, so an empty set must be stored as [].
	assert.NotNil(t, doc.Favorites)
	assert.Empty(t, doc.Favorites)
}

func TestParseIDsSkipsGarbage(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, []uuid.UUID{id}, parseIDs([]string{id.String(), "not-a-uuid"}))
}

func TestKeywordRegexEscapesInput(t *testing.T) {
	re := keywordRegex("a.b*")
	assert.Equal(t, bson.Regex{Pattern: `a\.b\*`, Options: "i"}, re)
}

func TestMigrationIndexesCoverCollections(t *testing.T) {
	indexes := migrationIndexes()
	for _, col := range []string{colAccounts, colStores, colProducts} {
		assert.NotEmpty(t, indexes[col], col)
	}
}
