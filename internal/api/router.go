package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/junhobyun/customer-admin/internal/api/handler"
	"github.com/junhobyun/customer-admin/internal/api/middleware"
	"github.com/junhobyun/customer-admin/internal/core/domain"
	"github.com/junhobyun/customer-admin/internal/core/ports"
	"github.com/junhobyun/customer-admin/internal/core/service"
	"github.com/junhobyun/customer-admin/internal/infrastructure/config"
	"github.com/junhobyun/customer-admin/internal/infrastructure/db/postgres"
	redisdb "github.com/junhobyun/customer-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the logout route and denylist check are then disabled.
func NewRouter(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("customer_admin"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL)
	customerService := service.NewCustomerService(customerRepo)

	var denylist ports.TokenDenylist
	if rdb != nil {
		denylist = redisdb.NewTokenDenylist(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, denylist)
	customerHandler := handler.NewCustomerHandler(customerService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, denylist)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	if denylist != nil {
		e.POST("/logout", authHandler.Logout, authMiddleware)
	}

	// --- Record routes: every operation sits behind the gate ---
	customers := e.Group("/customers", authMiddleware, adminOnly)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
