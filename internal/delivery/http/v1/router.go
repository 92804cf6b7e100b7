package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	SessionsUC  domain.ContactSessionUsecase
	InboxUC     domain.InboxUsecase   // nil when no database is configured
	ProfileUC   domain.ProfileUsecase // nil when no profile file is configured
	HealthUC    usecase.HealthUsecase
	RateLimiter *middleware.RateLimiter
	Events      *security.EventLogger
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil, deps.Events)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: append([]string{cfg.FrontendURL}, cfg.AllowedOrigins...),
		Production:     cfg.IsProduction(),
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		report := deps.HealthUC.Check(c.Request.Context())
		if report["status"] != "ok" {
			response.ErrorWithData(c, http.StatusServiceUnavailable, "System degraded", report, nil)
			return
		}
		response.Success(c, http.StatusOK, "System operational", report)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	public := v1.Group("")
	public.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	{
		contactLimit := limiter.Middleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window))
		NewContactHandler(public, deps.ContactUC, contactLimit)
		if deps.SessionsUC != nil {
			NewContactSessionHandler(public, deps.SessionsUC, contactLimit)
		}
		if deps.ProfileUC != nil {
			NewProfileHandler(public, deps.ProfileUC)
		}
	}

	// Protected routes
	if deps.InboxUC != nil {
		protected := v1.Group("")
		protected.Use(middleware.AdminAuthMiddleware(cfg.AdminJWTSecret, deps.Events))
		{
			NewAdminHandler(protected, deps.InboxUC)
		}
	}

	return r
}
