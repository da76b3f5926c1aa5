// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storehub/internal/delivery/api/middleware"
	"storehub/internal/delivery/api/router/handler"
	"storehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StoreHandler   *handler.StoreHandler
	AdminHandler   *handler.AdminHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	storeHandler   *handler.StoreHandler
	adminHandler   *handler.AdminHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		storeHandler:   params.StoreHandler,
		adminHandler:   params.AdminHandler,
		uploadHandler:  params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	vendorOnly := r.authMiddleware.RequireCapability(entity.CapabilityVendor)
	adminOnly := r.authMiddleware.RequireCapability(entity.CapabilityAdmin)

	api := e.Group("/api")

	// Account routes
	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		usersGroup.PUT("/profile/favorite/:id", r.userHandler.ToggleFavorite, authenticate)
	}

	// Store routes. Static paths take precedence over /:id in echo.
	storesGroup := api.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.POST("/:id/reviews", r.storeHandler.AddReview, authenticate)

		// Ownership is checked by the use case; admins act on behalf of the owner.
		storesGroup.POST("/request", r.storeHandler.RequestStore, authenticate, vendorOnly)
		storesGroup.GET("/my-stores", r.storeHandler.ListMyStores, authenticate, vendorOnly)
		storesGroup.DELETE("/:id", r.storeHandler.DeleteStore, authenticate, vendorOnly)
		storesGroup.POST("/:id/products", r.storeHandler.CreateProduct, authenticate, vendorOnly)
		storesGroup.GET("/:id/products", r.storeHandler.ListProducts, authenticate, vendorOnly)
		storesGroup.DELETE("/:id/products/:productId", r.storeHandler.DeleteProduct, authenticate, vendorOnly)
	}

	// Image upload
	api.POST("/upload", r.uploadHandler.UploadImage, authenticate)

	// Admin console
	adminGroup := api.Group("/admin")
	adminGroup.Use(authenticate, adminOnly)
	{
		adminGroup.GET("/requests", r.adminHandler.ListRequests)
		adminGroup.PUT("/requests/:id", r.adminHandler.UpdateRequest)
		adminGroup.GET("/vendors", r.adminHandler.ListVendors)
		adminGroup.DELETE("/vendors/:id", r.adminHandler.DeleteVendor)
		adminGroup.GET("/stores", r.adminHandler.ListStores)
		adminGroup.DELETE("/stores/:id", r.adminHandler.DeleteStore)
	}
}
