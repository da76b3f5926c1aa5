package handler

import (
	"log/slog"

	"storehub/internal/delivery/api/middleware"
	"storehub/internal/delivery/api/response"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadField is the multipart form field carrying the image.
const uploadField = "image"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts store and product images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadImage stores the multipart "image" file and returns its reference.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	asset, err := h.uploadUC.UploadImage(c.Request().Context(), middleware.GetPrincipal(c), file, fileHeader.Size)
	if err != nil {
		return err
	}

	return response.OK(c, asset)
}
