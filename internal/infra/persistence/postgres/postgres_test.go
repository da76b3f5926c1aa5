package postgres

import (
	"errors"
	"testing"
	"time"

	"storehub/internal/domain/entity"
	"storehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_accounts_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%green%", likePattern("green"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestStoreMappingRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &entity.Store{
		ID:       uuid.New(),
		VendorID: uuid.New(),
		Name:     "Green Grocer",
		Category: "Grocery",
		Address:  entity.Address{Area: "Baner", City: "Pune", District: "Pune"},
		Status:   entity.StoreStatusApproved,
		Reviews: []entity.Review{
			{AccountID: uuid.New(), Name: "Asha", Rating: 5, Comment: "great", CreatedAt: created},
		},
		Rating:      5,
		ReviewCount: 1,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	m := fromStoreDomain(store)
	m.Reviews = fromReviewsDomain(store)

	assert.Equal(t, store, toStoreDomain(m))
	assert.Equal(t, store.ID, m.Reviews[0].StoreID)
}

func TestAccountMappingCollectsFavorites(t *testing.T) {
	storeID := uuid.New()
	m := &model.AccountModel{
		ID:        uuid.New(),
		Email:     "c@example.com",
		Role:      "customer",
		Favorites: []model.AccountFavoriteModel{{StoreID: storeID}},
	}

	account := toAccountDomain(m)
	assert.Equal(t, entity.RoleCustomer, account.Role)
	assert.Equal(t, []uuid.UUID{storeID}, account.Favorites)
}
