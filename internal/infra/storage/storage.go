// Package storage provides the image host used for store and product pictures.
package storage

import (
	"context"
	"io"
	"log/slog"

	"storehub/config"
	"storehub/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the parameters required for the asset storage.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns an S3 backed storage when assets are configured, and a storage
// that rejects uploads otherwise.
func New(params Params) (service.AssetStorage, error) {
	if params.Config.Assets == nil || params.Config.Assets.Bucket == "" {
		params.Logger.Warn("Asset storage is not configured, uploads are disabled")

		return NewNoop(), nil
	}

	return NewS3Storage(context.Background(), params.Config.Assets)
}

type noopStorage struct{}

var _ service.AssetStorage = noopStorage{}

// NewNoop returns a storage with nothing in it.
func NewNoop() service.AssetStorage {
	return noopStorage{}
}

func (noopStorage) Upload(context.Context, io.Reader, int64, string) (*service.UploadedAsset, error) {
	return nil, service.ErrAssetStorageDisabled
}

func (noopStorage) Delete(context.Context, string) (service.AssetDeleteResult, error) {
	return service.AssetNotFound, nil
}
