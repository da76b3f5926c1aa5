// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an account with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicateEmail on a taken email.
	Create(ctx context.Context, account *entity.Account) error

	// ListByRole returns every account with the given role, newest first.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// Delete removes an account. Deleting an absent account is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFavorite inserts storeID into the account's favorites set.
	// Returns ErrAccountNotFound when the account does not exist.
	AddFavorite(ctx context.Context, accountID, storeID uuid.UUID) error

	// RemoveFavorite pulls storeID out of the account's favorites set.
	// Returns ErrAccountNotFound when the account does not exist.
	RemoveFavorite(ctx context.Context, accountID, storeID uuid.UUID) error

	// RemoveFavoritesEverywhere pulls every given store ID from the favorites
	// set of every account holding it, and reports how many accounts changed.
	RemoveFavoritesEverywhere(ctx context.Context, storeIDs []uuid.UUID) (int64, error)
}
