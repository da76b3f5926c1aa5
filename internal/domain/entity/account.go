package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Account represents a customer, vendor or the admin.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	// Phone is only set for vendors.
	Phone string
	// Favorites is a set of store IDs; order carries no meaning.
	Favorites []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal returns the authorization view of the account.
func (a *Account) Principal() *Principal {
	return &Principal{AccountID: a.ID, Role: a.Role}
}

// IsVendor reports whether the account owns stores.
func (a *Account) IsVendor() bool {
	return a.Role == RoleVendor
}

// HasFavorite reports whether storeID is in the favorites set.
func (a *Account) HasFavorite(storeID uuid.UUID) bool {
	return slices.Contains(a.Favorites, storeID)
}
