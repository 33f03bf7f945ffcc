package routes

import (
	"log"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/sportsmart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/labstack/echo/v4"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Categories *handlers.CategoryHandler
	Products   *handlers.ProductHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Orders     *handlers.OrderHandler
	Locations  *handlers.LocationHandler
	Health     echo.HandlerFunc
}

type Deps struct {
	Handlers  Handlers
	Tokens    *utils.TokenManager
	Cache     *customMiddleware.ResponseCache
	UploadDir string
}

func SetupRoutes(e *echo.Echo, d Deps) {
	h := d.Handlers
	auth := customMiddleware.Authenticate(d.Tokens)
	admin := []echo.MiddlewareFunc{auth, customMiddleware.RequireRole(models.RoleAdmin), d.Cache.PurgeOnWrite()}
	cached := d.Cache.Cache()

	e.GET("/health", h.Health)
	e.GET("/metrics", customMiddleware.MetricsHandler())
	e.Static("/uploads", d.UploadDir)

	api := e.Group("/api")

	// Category routes
	categories := api.Group("/categories")
	categories.GET("", h.Categories.GetCategories, cached)
	categories.GET("/options", h.Categories.GetCategoryOptions, cached)
	categories.POST("", h.Categories.CreateCategory, admin...)
	categories.PUT("/:id", h.Categories.UpdateCategory, admin...)
	categories.DELETE("/:id", h.Categories.DeleteCategory, admin...)

	// Product routes
	products := api.Group("/products")
	products.GET("", h.Products.GetProducts, cached)
	products.GET("/category/:slug", h.Products.GetProductsByCategory, cached)
	products.GET("/:id", h.Products.GetProduct, cached)
	products.GET("/:id/availability", h.Products.GetAvailability)
	products.POST("", h.Products.CreateProduct, admin...)
	products.PUT("/:id", h.Products.UpdateProduct, admin...)
	products.DELETE("/:id", h.Products.DeleteProduct, admin...)

	// Auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", h.Auth.Me, auth)

	api.GET("/users/profile", h.Users.GetUserProfile, auth)
	api.PUT("/users/profile", h.Users.UpdateUserProfile, auth)

	// Order routes
	orders := api.Group("/orders", auth)
	orders.POST("", h.Orders.CreateOrder)
	orders.GET("/myorders", h.Orders.GetMyOrders)
	orders.GET("", h.Orders.GetOrders, customMiddleware.RequireRole(models.RoleAdmin))
	orders.GET("/:id", h.Orders.GetOrder)

	api.GET("/locations/states", h.Locations.GetStates, cached)
	api.GET("/locations/cities/:state", h.Locations.GetCities, cached)

	log.Printf("Routes registered: %d", len(e.Routes()))
}
