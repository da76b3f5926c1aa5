package usecase

import (
	"context"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestStoreInput defines a vendor's store request.
type RequestStoreInput struct {
	Name     string
	Image    string
	Category string
	Address  entity.Address
}

// CreateProductInput defines a product listed in an approved store.
type CreateProductInput struct {
	Name        string
	Image       string
	Description string
	Price       float64
}

// AddReviewInput defines a review written by the caller.
type AddReviewInput struct {
	Rating  int
	Comment string
}

// StoreDetail is a store together with its products.
type StoreDetail struct {
	Store    *entity.Store
	Products []*entity.Product
}

// StoreUsecase covers browsing, vendor store management and reviews.
type StoreUsecase interface {
	ListApprovedStores(ctx context.Context, keyword string) ([]*entity.Store, error)
	GetStore(ctx context.Context, storeID uuid.UUID) (*StoreDetail, error)
	RequestStore(ctx context.Context, principal *entity.Principal, input RequestStoreInput) (*entity.Store, error)
	ListMyStores(ctx context.Context, principal *entity.Principal, keyword string) ([]*entity.Store, error)
	CreateProduct(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	ListStoreProducts(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, keyword string) ([]*entity.Product, error)
	DeleteProduct(ctx context.Context, principal *entity.Principal, storeID, productID uuid.UUID) error
	AddReview(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, input AddReviewInput) (*entity.Store, error)
}
