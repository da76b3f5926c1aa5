package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"storehub/config"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxUploadSizeMB = 10

// allowedImageTypes are the MIME types accepted for store and product images.
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	assets   service.AssetStorage
	maxBytes int64
	logger   *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Assets service.AssetStorage
	Config *config.Config
	Logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxMB := int64(defaultMaxUploadSizeMB)
	if params.Config.Assets != nil && params.Config.Assets.MaxUploadSizeMB > 0 {
		maxMB = params.Config.Assets.MaxUploadSizeMB
	}

	return &uploadService{
		assets:   params.Assets,
		maxBytes: maxMB << 20,
		logger:   params.Logger,
	}
}

// UploadImage checks the size and sniffed type of the image before storing it.
// The declared content type of the request is ignored.
func (srv *uploadService) UploadImage(ctx context.Context, principal *entity.Principal, body io.Reader, size int64) (*service.UploadedAsset, error) {
	if err := authorize(principal, entity.CapabilityAuthenticated); err != nil {
		return nil, err
	}
	if size > srv.maxBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is too large")
	}

	data, err := io.ReadAll(io.LimitReader(body, srv.maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no image provided")
	}
	if int64(len(data)) > srv.maxBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is too large")
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("images only (jpeg, png, webp)")
	}

	asset, err := srv.assets.Upload(ctx, bytes.NewReader(data), int64(len(data)), mtype.String())
	if err != nil {
		if errors.Is(err, service.ErrAssetStorageDisabled) {
			return nil, domainerrors.ErrAssetStorageDisabled
		}

		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Image upload failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("upload image")
	}

	return asset, nil
}
