package handler

import (
	"log/slog"

	"storehub/internal/delivery/api/middleware"
	"storehub/internal/delivery/api/response"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC   usecase.AdminUsecase
	CascadeUC usecase.CascadeUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the moderation console.
type AdminHandler struct {
	adminUC   usecase.AdminUsecase
	cascadeUC usecase.CascadeUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:   params.AdminUC,
		cascadeUC: params.CascadeUC,
		logger:    params.Logger,
	}
}

// ListRequests returns pending store requests with the requesting vendor.
func (h *AdminHandler) ListRequests(c echo.Context) error {
	entries, err := h.adminUC.ListPendingRequests(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, toAdminStoreResponses(entries))
}

// UpdateRequest approves or rejects a pending store request.
func (h *AdminHandler) UpdateRequest(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	store, err := h.adminUC.SetStoreStatus(c.Request().Context(), middleware.GetPrincipal(c), storeID, entity.StoreStatus(req.Status))
	if err != nil {
		return err
	}

	return response.OK(c, toStoreResponse(store))
}

// ListVendors returns every vendor account.
func (h *AdminHandler) ListVendors(c echo.Context) error {
	vendors, err := h.adminUC.ListVendors(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, toAccountResponses(vendors))
}

// DeleteVendor removes a vendor with all stores, products, images and favorites.
func (h *AdminHandler) DeleteVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id", domainerrors.ErrVendorNotFound)
	if err != nil {
		return err
	}

	report, err := h.cascadeUC.DeleteVendor(c.Request().Context(), middleware.GetPrincipal(c), vendorID)
	if err != nil {
		return err
	}

	return response.OK(c, toCascadeResponse("Vendor and all associated stores and products removed", report))
}

// ListStores returns every store in any status with its owner.
func (h *AdminHandler) ListStores(c echo.Context) error {
	entries, err := h.adminUC.ListAllStores(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, toAdminStoreResponses(entries))
}

// DeleteStore removes any store on behalf of its owner.
func (h *AdminHandler) DeleteStore(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	report, err := h.cascadeUC.DeleteStore(c.Request().Context(), middleware.GetPrincipal(c), storeID)
	if err != nil {
		return err
	}

	return response.OK(c, toCascadeResponse("Store and all associated products removed", report))
}
