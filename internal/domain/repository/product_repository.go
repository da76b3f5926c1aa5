package repository

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByStore returns the products of one store, newest first.
	// A non-empty keyword filters case-insensitively on the product name.
	ListByStore(ctx context.Context, storeID uuid.UUID, keyword string) ([]*entity.Product, error)

	// ListByStores returns every product belonging to any of the given stores.
	ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Product, error)

	// Delete removes a product. Deleting an absent product is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByStores removes every product belonging to any of the given stores
	// in one batch and reports how many were removed.
	DeleteByStores(ctx context.Context, storeIDs []uuid.UUID) (int64, error)
}
