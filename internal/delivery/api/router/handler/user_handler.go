// Package handler contains the HTTP handlers for the application.
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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register handles account sign up.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return response.Created(c, AuthResponse{
		AccountResponse: toAccountResponse(output.Account),
		Token:           output.Token,
	})
}

// Login handles account sign in.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, AuthResponse{
		AccountResponse: toAccountResponse(output.Account),
		Token:           output.Token,
	})
}

// GetProfile returns the caller's account and favorite stores.
func (h *UserHandler) GetProfile(c echo.Context) error {
	output, err := h.accountUC.Profile(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	return response.OK(c, ProfileResponse{
		AccountResponse: toAccountResponse(output.Account),
		FavoriteStores:  toStoreResponses(output.Favorites),
	})
}

// ToggleFavorite adds or removes a store from the caller's favorites.
func (h *UserHandler) ToggleFavorite(c echo.Context) error {
	storeID, err := pathID(c, "id", domainerrors.ErrStoreNotFound)
	if err != nil {
		return err
	}

	output, err := h.accountUC.ToggleFavorite(c.Request().Context(), middleware.GetPrincipal(c), storeID)
	if err != nil {
		return err
	}

	message := "Store removed from favorites"
	if output.Favorited {
		message = "Store added to favorites"
	}

	return response.OK(c, FavoriteResponse{
		StoreID:   output.StoreID,
		Favorited: output.Favorited,
		Message:   message,
	})
}
