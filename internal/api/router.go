package api

import (
	"time"

	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contactdesk/contacts-system/internal/api/handler"
	"github.com/contactdesk/contacts-system/internal/api/middleware"
	"github.com/contactdesk/contacts-system/internal/core/domain"
	"github.com/contactdesk/contacts-system/internal/core/ports"
	"github.com/contactdesk/contacts-system/internal/core/service"
	mongorepo "github.com/contactdesk/contacts-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/contactdesk/contacts-system/internal/infrastructure/db/redis"
)

// RouterOptions carries everything NewRouter needs beyond its storage handles.
type RouterOptions struct {
	JWTSecret string
	TokenTTL  time.Duration
	AuditSink ports.AuditSink
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("contacts"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)
	throttle := redisrepo.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	userService := service.NewUserService(userRepo, contactRepo, opts.AuditSink, opts.Logger)
	contactService := service.NewContactService(contactRepo, opts.AuditSink, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)

	authMiddleware := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Contact routes (any authenticated user) ---
	contacts := e.Group("/api/contacts", authMiddleware)
	contacts.GET("", contactHandler.List)
	contacts.GET("/list", contactHandler.ListSummaries)
	contacts.GET("/:id", contactHandler.Get)
	contacts.POST("", contactHandler.Create)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	// --- User administration routes (admins only) ---
	users := e.Group("/api/auth/users", authMiddleware, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
