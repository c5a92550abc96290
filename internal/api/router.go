package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/supplychain/backoffice/docs"
	"github.com/supplychain/backoffice/internal/api/handler"
	"github.com/supplychain/backoffice/internal/api/middleware"
	"github.com/supplychain/backoffice/internal/core/ports"
	"github.com/supplychain/backoffice/internal/core/token"
)

// Dependencies carries everything the router needs. Services are built in
// main so the bootstrap step can share the same repositories.
type Dependencies struct {
	Tokens    *token.Provider
	Users     ports.UserRepository
	Auth      ports.AuthService
	Admin     ports.AdminService
	Products  ports.ProductService
	Stocks    ports.StockService
	Sales     ports.SaleService
	Suppliers ports.SupplierService
	Analytics ports.AnalyticsService
	Mongo     *mongo.Database
	Redis     *redis.Client
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Authentication and authorization run as global middleware; handlers never
// re-check roles.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))
	e.Use(middleware.Authenticate(deps.Tokens, deps.Users))
	e.Use(middleware.Authorize(middleware.DefaultRules))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	productHandler := handler.NewProductHandler(deps.Products)
	stockHandler := handler.NewStockHandler(deps.Stocks)
	saleHandler := handler.NewSaleHandler(deps.Sales)
	supplierHandler := handler.NewSupplierHandler(deps.Suppliers)
	analyticsHandler := handler.NewAnalyticsHandler(deps.Analytics)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Products ---
	e.POST("/products", productHandler.Create)
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/products/code/:code", productHandler.GetByCode)
	e.GET("/products/category/:category", productHandler.ListByCategory)
	e.GET("/products/active/all", productHandler.ListActive)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	// --- Stocks ---
	e.POST("/stocks", stockHandler.Create)
	e.GET("/stocks", stockHandler.List)
	e.GET("/stocks/:id", stockHandler.Get)
	e.GET("/stocks/product/:productId", stockHandler.GetByProduct)
	e.GET("/stocks/low-stock/all", stockHandler.ListLow)
	e.PUT("/stocks/:id", stockHandler.Update)
	e.DELETE("/stocks/:id", stockHandler.Delete)

	// --- Sales ---
	e.POST("/sales", saleHandler.Create)
	e.GET("/sales", saleHandler.List)
	e.GET("/sales/:id", saleHandler.Get)
	e.GET("/sales/order/:orderNumber", saleHandler.GetByOrderNumber)
	e.GET("/sales/status/:status", saleHandler.ListByStatus)
	e.GET("/sales/product/:productId", saleHandler.ListByProduct)
	e.PUT("/sales/:id", saleHandler.Update)
	e.DELETE("/sales/:id", saleHandler.Delete)

	// --- Suppliers ---
	e.POST("/suppliers", supplierHandler.Create)
	e.GET("/suppliers", supplierHandler.List)
	e.GET("/suppliers/:id", supplierHandler.Get)
	e.GET("/suppliers/code/:code", supplierHandler.GetByCode)
	e.GET("/suppliers/email/:email", supplierHandler.GetByEmail)
	e.GET("/suppliers/active/all", supplierHandler.ListActive)
	e.PUT("/suppliers/:id", supplierHandler.Update)
	e.DELETE("/suppliers/:id", supplierHandler.Delete)

	// --- Analytics ---
	e.GET("/analytics/sales", analyticsHandler.Sales)
	e.GET("/analytics/inventory", analyticsHandler.Inventory)
	e.GET("/analytics/dashboard", analyticsHandler.Dashboard)

	// --- Role administration ---
	e.GET("/admin/users", adminHandler.ListUsers)
	e.GET("/admin/users/stats", adminHandler.Stats)
	e.GET("/admin/users/:id", adminHandler.GetUser)
	e.GET("/admin/users/role/:role", adminHandler.ListUsersByRole)
	e.POST("/admin/users/:id/promote-to-admin", adminHandler.PromoteToAdmin)
	e.POST("/admin/users/:id/promote-to-manager", adminHandler.PromoteToManager)
	e.POST("/admin/users/:id/demote-to-user", adminHandler.DemoteToUser)
	e.POST("/admin/users/:id/activate", adminHandler.ActivateUser)
	e.POST("/admin/users/:id/deactivate", adminHandler.DeactivateUser)
	e.DELETE("/admin/users/:id", adminHandler.DeleteUser)

	// --- Operational surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
