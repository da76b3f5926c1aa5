package usecase

import (
	"context"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorContact is the part of a vendor account shown to the admin.
type VendorContact struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
}

// StoreWithVendor is a store joined with its owner's contact details.
// Vendor is nil when the owner no longer exists.
type StoreWithVendor struct {
	Store  *entity.Store
	Vendor *VendorContact
}

// AdminUsecase covers the moderation console. Every operation requires the admin capability.
type AdminUsecase interface {
	ListPendingRequests(ctx context.Context, principal *entity.Principal) ([]*StoreWithVendor, error)
	SetStoreStatus(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, status entity.StoreStatus) (*entity.Store, error)
	ListVendors(ctx context.Context, principal *entity.Principal) ([]*entity.Account, error)
	ListAllStores(ctx context.Context, principal *entity.Principal) ([]*StoreWithVendor, error)
}
