package repository

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrStatusConflict is returned when a conditional status update finds the
	// store in a different status than expected.
	ErrStatusConflict = errors.New("store status changed concurrently")
)

// StoreFilter narrows List results. Zero values mean "any".
type StoreFilter struct {
	Status   entity.StoreStatus
	VendorID uuid.UUID
	// Keyword matches case-insensitively against name, category and address fields.
	Keyword string
	// NameOnly restricts Keyword matching to the store name.
	NameOnly bool
}

// StoreRepository defines the operations for store persistence.
type StoreRepository interface {
	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// FindByID retrieves a single store including its embedded reviews.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByIDs retrieves the stores that still exist among ids. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error)

	// List returns stores matching the filter, ordered by rating descending
	// and then by creation time descending.
	List(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// UpdateStatus moves a store from one status to another in a single write.
	// Returns ErrStoreNotFound when absent and ErrStatusConflict when the
	// current status differs from from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.StoreStatus) error

	// SaveReviews persists the store's reviews together with its rating aggregates.
	SaveReviews(ctx context.Context, store *entity.Store) error

	// Delete removes a store. Deleting an absent store is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDs removes every listed store and reports how many were removed.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
