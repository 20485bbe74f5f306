// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	CatalogHandler *handler.CatalogHandler
	BasketHandler  *handler.BasketHandler
	OrderHandler   *handler.OrderHandler
	PartnerHandler *handler.PartnerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	catalogHandler *handler.CatalogHandler
	basketHandler  *handler.BasketHandler
	orderHandler   *handler.OrderHandler
	partnerHandler *handler.PartnerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		catalogHandler: params.CatalogHandler,
		basketHandler:  params.BasketHandler,
		orderHandler:   params.OrderHandler,
		partnerHandler: params.PartnerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public catalog routes
	apiV1.GET("/shops", r.catalogHandler.ListShops)
	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.GET("/products", r.catalogHandler.SearchProducts)

	// Account routes, registration and login are public
	userGroup := apiV1.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/register/confirm", r.userHandler.Confirm)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/refresh", r.userHandler.Refresh)
	}

	// Account routes that require authentication
	accountGroup := apiV1.Group("/user")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/details", r.userHandler.GetDetails)
		accountGroup.POST("/details", r.userHandler.UpdateDetails)

		accountGroup.GET("/contact", r.contactHandler.List)
		accountGroup.POST("/contact", r.contactHandler.Create)
		accountGroup.PUT("/contact", r.contactHandler.Update)
		accountGroup.DELETE("/contact", r.contactHandler.Delete)
	}

	// Basket routes
	basketGroup := apiV1.Group("/basket")
	basketGroup.Use(r.authMiddleware.Authenticate)
	{
		basketGroup.GET("", r.basketHandler.Get)
		basketGroup.POST("", r.basketHandler.AddItems)
		basketGroup.PUT("", r.basketHandler.UpdateQuantities)
		basketGroup.DELETE("", r.basketHandler.RemoveItems)
	}

	// Buyer order routes
	orderGroup := apiV1.Group("/order")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.POST("", r.orderHandler.Checkout)
	}

	// Supplier routes that require a shop account
	partnerGroup := apiV1.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireShop)
	{
		partnerGroup.POST("/update", r.partnerHandler.Import)
		partnerGroup.GET("/state", r.partnerHandler.GetState)
		partnerGroup.POST("/state", r.partnerHandler.SetState)
		partnerGroup.GET("/orders", r.partnerHandler.Orders)
		partnerGroup.POST("/orders/state", r.partnerHandler.AdvanceOrder)
	}
}
