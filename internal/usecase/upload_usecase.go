package usecase

import (
	"context"
	"io"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"
)

// UploadUsecase stores images referenced by stores and products.
type UploadUsecase interface {
	// UploadImage accepts jpeg, png or webp images up to the configured size.
	UploadImage(ctx context.Context, principal *entity.Principal, body io.Reader, size int64) (*service.UploadedAsset, error)
}
