package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipal_Can(t *testing.T) {
	customer := &Principal{AccountID: uuid.New(), Role: RoleCustomer}
	vendor := &Principal{AccountID: uuid.New(), Role: RoleVendor}
	admin := &Principal{AccountID: uuid.New(), Role: RoleAdmin}

	tests := []struct {
		name       string
		principal  *Principal
		capability Capability
		want       bool
	}{
		{"anonymous public", nil, CapabilityPublic, true},
		{"anonymous authenticated", nil, CapabilityAuthenticated, false},
		{"anonymous vendor", nil, CapabilityVendor, false},
		{"customer authenticated", customer, CapabilityAuthenticated, true},
		{"customer vendor", customer, CapabilityVendor, false},
		{"customer admin", customer, CapabilityAdmin, false},
		{"vendor vendor", vendor, CapabilityVendor, true},
		{"vendor admin", vendor, CapabilityAdmin, false},
		{"admin vendor", admin, CapabilityVendor, true},
		{"admin admin", admin, CapabilityAdmin, true},
		{"unknown role", &Principal{Role: Role("root")}, CapabilityAuthenticated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.Can(tt.capability))
		})
	}
}

func TestCapability_GrantedRoles(t *testing.T) {
	assert.ElementsMatch(t, Roles{RoleVendor, RoleAdmin}, CapabilityVendor.GrantedRoles())
	assert.ElementsMatch(t, Roles{RoleAdmin}, CapabilityAdmin.GrantedRoles())
	assert.Nil(t, CapabilityPublic.GrantedRoles())
}

func TestRole_IsRegistrable(t *testing.T) {
	assert.True(t, RoleCustomer.IsRegistrable())
	assert.True(t, RoleVendor.IsRegistrable())
	assert.False(t, RoleAdmin.IsRegistrable())
	assert.False(t, Role("").IsRegistrable())
}

func TestStoreStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StoreStatusPending.CanTransitionTo(StoreStatusApproved))
	assert.True(t, StoreStatusPending.CanTransitionTo(StoreStatusRejected))
	assert.False(t, StoreStatusPending.CanTransitionTo(StoreStatusPending))
	assert.False(t, StoreStatusApproved.CanTransitionTo(StoreStatusRejected))
	assert.False(t, StoreStatusRejected.CanTransitionTo(StoreStatusApproved))
	assert.False(t, StoreStatusApproved.CanTransitionTo(StoreStatusPending))
}

func TestStore_AppendReview(t *testing.T) {
	store := &Store{Status: StoreStatusApproved}
	first := uuid.New()

	for _, rating := range []int{5, 3, 4} {
		reviewer := uuid.New()
		if rating == 5 {
			reviewer = first
		}
		store.AppendReview(Review{AccountID: reviewer, Rating: rating, Comment: "ok"})
	}

	assert.Equal(t, 3, store.ReviewCount)
	assert.InDelta(t, 4.0, store.Rating, 1e-9)
	assert.True(t, store.HasReviewBy(first))
	assert.False(t, store.HasReviewBy(uuid.New()))
}

func TestStore_RecomputeRatingEmpty(t *testing.T) {
	store := &Store{Rating: 3.5, ReviewCount: 2}
	store.RecomputeRating()

	assert.Zero(t, store.Rating)
	assert.Zero(t, store.ReviewCount)
}

func TestAccount_HasFavorite(t *testing.T) {
	storeID := uuid.New()
	account := &Account{Favorites: []uuid.UUID{storeID}}

	assert.True(t, account.HasFavorite(storeID))
	assert.False(t, account.HasFavorite(uuid.New()))
}
