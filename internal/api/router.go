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

	_ "github.com/matchfit/matchfit-api/docs"
	"github.com/matchfit/matchfit-api/internal/api/handler"
	"github.com/matchfit/matchfit-api/internal/api/middleware"
	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
	"github.com/matchfit/matchfit-api/internal/core/service"
	mongodb "github.com/matchfit/matchfit-api/internal/infrastructure/db/mongo"
	redisdb "github.com/matchfit/matchfit-api/internal/infrastructure/db/redis"
)

// Deps carries everything the router needs to assemble services and handlers.
type Deps struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	AI        ports.GenerativeClient
	Recorder  service.ActivityRecorder
	JWTSecret string
	JWTTTL    time.Duration
	Bootstrap service.BootstrapAdmin
	TextModel string
	FaceModel string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("matchfit"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(deps.Mongo)
	invitationRepo := mongodb.NewInvitationRepository(deps.Mongo)
	rsvpRepo := mongodb.NewRSVPRepository(deps.Mongo)
	activityRepo := mongodb.NewActivityRepository(deps.Mongo)
	productRepo := mongodb.NewProductRepository(deps.Mongo)
	orderRepo := mongodb.NewOrderRepository(deps.Mongo)
	cartStore := redisdb.NewCartStore(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(authRepo, deps.Bootstrap, deps.JWTSecret, deps.JWTTTL)
	invitationService := service.NewInvitationService(invitationRepo, rsvpRepo, activityRepo, deps.Recorder, deps.Log)
	shopService := service.NewShopService(productRepo, orderRepo, cartStore, authRepo, deps.Log)
	advisorService := service.NewAdvisorService(deps.AI, deps.TextModel, deps.FaceModel, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	productHandler := handler.NewProductHandler(shopService)
	cartHandler := handler.NewCartHandler(shopService)
	orderHandler := handler.NewOrderHandler(shopService)
	adminHandler := handler.NewAdminHandler(shopService)
	advisorHandler := handler.NewAdvisorHandler(advisorService)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.GET("/v1/auth/me", authHandler.Me, authMiddleware)

	// --- Public guest routes (no auth) ---
	public := e.Group("/v1/public")
	public.GET("/invitations/:id", invitationHandler.PublicView)
	public.POST("/invitations/:id/rsvps", invitationHandler.SubmitRSVP)

	// --- Catalog is browsable without an account ---
	e.GET("/v1/products", productHandler.List)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/invitations", invitationHandler.Create)
	v1.GET("/invitations", invitationHandler.List)
	v1.GET("/invitations/:id", invitationHandler.Get)
	v1.DELETE("/invitations/:id", invitationHandler.Delete)
	v1.GET("/invitations/:id/activity", invitationHandler.Activity)

	v1.GET("/cart", cartHandler.Get)
	v1.POST("/cart/items", cartHandler.AddItem)
	v1.PATCH("/cart/items/:productId", cartHandler.AdjustItem)
	v1.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	v1.DELETE("/cart", cartHandler.Clear)

	v1.POST("/checkout", orderHandler.Checkout)
	v1.GET("/orders", orderHandler.List)

	v1.POST("/advisor/invitation-copy", advisorHandler.InvitationCopy)
	v1.POST("/advisor/fashion", advisorHandler.Fashion)
	v1.POST("/advisor/face", advisorHandler.Face)

	// --- Admin console ---
	admin := v1.Group("/admin", adminOnly)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
