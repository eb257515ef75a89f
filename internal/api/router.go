package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fuelquote/fuel-quote-api/docs"
	"github.com/fuelquote/fuel-quote-api/internal/api/handler"
	"github.com/fuelquote/fuel-quote-api/internal/api/middleware"
	"github.com/fuelquote/fuel-quote-api/internal/core/service"
	mongodb "github.com/fuelquote/fuel-quote-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fuelquote/fuel-quote-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fuelquote"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	sessions := redisdb.NewSessionStore(rdb, sessionTTL)

	hasher := service.NewPasswordHasher()
	authService := service.NewAuthService(accountRepo, sessions, hasher, log)
	profileService := service.NewProfileService(profileRepo, log)
	quoteService := service.NewQuoteService(quoteRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessionTTL)
	profileHandler := handler.NewProfileHandler(profileService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	requireSession := middleware.Session(sessions)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Account-scoped routes (session required) ---
	v1 := e.Group("/v1", requireSession)
	v1.GET("/profile", profileHandler.Get)
	v1.PUT("/profile", profileHandler.Update)
	v1.POST("/quotes", quoteHandler.Create)
	v1.GET("/quotes", quoteHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
