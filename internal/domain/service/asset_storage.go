package service

import (
	"context"
	"io"

	"storehub/internal/errors"
)

// ErrAssetStorageDisabled is returned by Upload when no image host is configured.
var ErrAssetStorageDisabled = errors.New("asset storage is not configured")

// AssetDeleteResult is the outcome of a cleanup request for one asset reference.
type AssetDeleteResult int

const (
	AssetDeleted AssetDeleteResult = iota
	AssetNotFound
)

func (r AssetDeleteResult) String() string {
	if r == AssetNotFound {
		return "not_found"
	}

	return "deleted"
}

// UploadedAsset identifies a stored image.
type UploadedAsset struct {
	// PublicID is the opaque reference stored on stores and products.
	PublicID string `json:"publicId"`
	ImageURL string `json:"imageUrl"`
}

// AssetStorage is the external image host.
type AssetStorage interface {
	// Upload stores an image and returns its reference. contentType is the sniffed MIME type.
	Upload(ctx context.Context, body io.Reader, size int64, contentType string) (*UploadedAsset, error)

	// Delete removes the asset behind ref. An unknown ref yields AssetNotFound, not an error.
	Delete(ctx context.Context, ref string) (AssetDeleteResult, error)
}
