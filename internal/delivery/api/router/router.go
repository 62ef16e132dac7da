// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bakeandtaste/internal/delivery/api/middleware"
	"bakeandtaste/internal/delivery/api/router/handler"
	"bakeandtaste/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	SellerHandler  *handler.SellerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	sellerHandler  *handler.SellerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		sellerHandler:  params.SellerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.SignIn)
		authGroup.POST("/logout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.GET("/cakes", r.catalogHandler.ListCakes)
	apiV1.GET("/cakes/:id", r.catalogHandler.GetCake)
	apiV1.GET("/bakeries/:id", r.catalogHandler.GetBakery)
	apiV1.GET("/bakeries/:id/qr", r.catalogHandler.GetBakeryQR)

	profileGroup := apiV1.Group("/profile", r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	ordersGroup := apiV1.Group("/orders",
		r.authMiddleware.Authenticate,
		r.authMiddleware.LoadProfile,
		r.authMiddleware.RequireRole(entity.RoleCustomer),
	)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
	}

	sellerGroup := apiV1.Group("/seller",
		r.authMiddleware.Authenticate,
		r.authMiddleware.LoadProfile,
		r.authMiddleware.RequireRole(entity.RoleSeller),
	)
	{
		sellerGroup.GET("/bakery", r.sellerHandler.GetBakery)
		sellerGroup.PUT("/bakery", r.sellerHandler.UpsertBakery)
		sellerGroup.GET("/bakery/cakes", r.sellerHandler.ListCakes)
		sellerGroup.POST("/bakery/cakes", r.sellerHandler.CreateCake)
		sellerGroup.PUT("/cakes/:id", r.sellerHandler.UpdateCake)
		sellerGroup.DELETE("/cakes/:id", r.sellerHandler.DeleteCake)
		sellerGroup.PUT("/cakes/:id/availability", r.sellerHandler.SetAvailability)
		sellerGroup.GET("/orders", r.sellerHandler.ListOrders)
		sellerGroup.PATCH("/orders/:id/status", r.sellerHandler.UpdateOrderStatus)
	}
}
