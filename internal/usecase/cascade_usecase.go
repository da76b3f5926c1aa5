package usecase

import (
	"context"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

// CascadeReport summarizes what a cascading deletion removed.
type CascadeReport struct {
	RootID            uuid.UUID
	StoresDeleted     int64
	ProductsDeleted   int64
	FavoritesScrubbed int64
	AssetsDeleted     int
	AssetsMissing     int
	AssetFailures     int
}

// CascadeUsecase removes a vendor or a store together with everything that
// depends on it, leaving no product or favorite pointing at a removed store.
type CascadeUsecase interface {
	// DeleteStore requires the admin or the owning vendor.
	DeleteStore(ctx context.Context, principal *entity.Principal, storeID uuid.UUID) (*CascadeReport, error)
	// DeleteVendor requires the admin.
	DeleteVendor(ctx context.Context, principal *entity.Principal, vendorID uuid.UUID) (*CascadeReport, error)
}
