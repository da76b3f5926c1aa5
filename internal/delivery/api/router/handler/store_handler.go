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

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC   usecase.StoreUsecase
	CascadeUC usecase.CascadeUsecase
	Logger    *slog.Logger
}

// StoreHandler serves store browsing, vendor store management and reviews.
type StoreHandler struct {
	storeUC   usecase.StoreUsecase
	cascadeUC usecase.CascadeUsecase
	logger    *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler.
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC:   params.StoreUC,
		cascadeUC: params.CascadeUC,
		logger:    params.Logger,
	}
}

// ListStores returns approved stores matching ?keyword=.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeUC.ListApprovedStores(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	return response.OK(c, toStoreResponses(stores))
}

// GetStore returns a store and its products.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	detail, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return err
	}

	return response.OK(c, StoreDetailResponse{
		StoreResponse: toStoreResponse(detail.Store),
		Products:      toProductResponses(detail.Products),
	})
}

// RequestStore submits a new store for moderation.
func (h *StoreHandler) RequestStore(c echo.Context) error {
	var req StoreRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	store, err := h.storeUC.RequestStore(c.Request().Context(), middleware.GetPrincipal(c), usecase.RequestStoreInput{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		Address: entity.Address{
			Area:     req.Address.Area,
			City:     req.Address.City,
			District: req.Address.District,
		},
	})
	if err != nil {
		return err
	}

	return response.Created(c, toStoreResponse(store))
}

// ListMyStores returns the caller's stores in any status.
func (h *StoreHandler) ListMyStores(c echo.Context) error {
	stores, err := h.storeUC.ListMyStores(c.Request().Context(), middleware.GetPrincipal(c), c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	return response.OK(c, toStoreResponses(stores))
}

// DeleteStore removes a store with its products, images and favorites.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
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

// CreateProduct lists a product in one of the caller's stores.
func (h *StoreHandler) CreateProduct(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.storeUC.CreateProduct(c.Request().Context(), middleware.GetPrincipal(c), storeID, usecase.CreateProductInput{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toProductResponse(product))
}

// ListProducts returns the products of one of the caller's stores.
func (h *StoreHandler) ListProducts(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	products, err := h.storeUC.ListStoreProducts(c.Request().Context(), middleware.GetPrincipal(c), storeID, c.QueryParam("keyword"))
	if err != nil {
		return err
	}

	return response.OK(c, toProductResponses(products))
}

// DeleteProduct removes a product from one of the caller's stores.
func (h *StoreHandler) DeleteProduct(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId", domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.storeUC.DeleteProduct(c.Request().Context(), middleware.GetPrincipal(c), storeID, productID); err != nil {
		return err
	}

	return response.OK(c, response.Message{Message: "Product removed"})
}

// AddReview records the caller's review of an approved store.
func (h *StoreHandler) AddReview(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	store, err := h.storeUC.AddReview(c.Request().Context(), middleware.GetPrincipal(c), storeID, usecase.AddReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toStoreResponse(store))
}
