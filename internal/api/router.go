package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/murahjaya/inventory-system/internal/api/handler"
	"github.com/murahjaya/inventory-system/internal/api/middleware"
	"github.com/murahjaya/inventory-system/internal/core/ports"
	"github.com/murahjaya/inventory-system/internal/core/service"
	"github.com/murahjaya/inventory-system/internal/infrastructure/config"
	"github.com/murahjaya/inventory-system/internal/infrastructure/db/mysql"
	redisdb "github.com/murahjaya/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *mysql.Store, rdb *redis.Client, mongoDB *mongo.Database, audit ports.AuditSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	secureCookies := cfg.Env == "production"

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(store)
	categoryRepo := mysql.NewCategoryRepository(store)
	productRepo := mysql.NewProductRepository(store)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo)
	sessions := service.NewSessionManager(sessionStore, cfg.SessionSecret)
	userService := service.NewUserService(userRepo, audit)
	categoryService := service.NewCategoryService(categoryRepo, audit)
	productService := service.NewProductService(productRepo, audit)

	authHandler := handler.NewAuthHandler(authService, sessions, secureCookies)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	dashboardHandler := handler.NewDashboardHandler(productService, categoryService, userService)

	resolveSession := middleware.Session(sessionStore, cfg.SessionSecret)
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()
	e.Use(resolveSession)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Dashboard ---
	e.GET("/dashboard", dashboardHandler.Summary, requireAuth)

	// --- Categories: reads for any session, writes for admins ---
	e.GET("/categories", categoryHandler.List, requireAuth)
	e.GET("/categories/:id", categoryHandler.Get, requireAuth)
	e.POST("/categories", categoryHandler.Create, requireAdmin)
	e.PUT("/categories/:id", categoryHandler.Update, requireAdmin)
	e.DELETE("/categories/:id", categoryHandler.Delete, requireAdmin)

	// --- Products: reads for any session, writes for admins ---
	e.GET("/products", productHandler.List, requireAuth)
	e.GET("/products/:id", productHandler.Get, requireAuth)
	e.POST("/products", productHandler.Create, requireAdmin)
	e.PUT("/products/:id", productHandler.Update, requireAdmin)
	e.DELETE("/products/:id", productHandler.Delete, requireAdmin)

	// --- User management: admin only ---
	e.GET("/users", userHandler.List, requireAdmin)
	e.POST("/users", userHandler.Create, requireAdmin)
	e.PUT("/users/:id", userHandler.Update, requireAdmin)
	e.DELETE("/users/:id", userHandler.Delete, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store, rdb, mongoDB)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
