package v1

import (
	"net/http"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // registers the swagger spec
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// ClientIP keys the rate limiter, so forwarded headers count only from known proxies.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Log.Error("Invalid TRUSTED_PROXIES, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Any other verb on a known route gets the JSON 405 below.
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperror.MethodNotAllowed())
	})
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not Found", nil)
	})

	NewHealthHandler(r, deps.HealthUC)

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	NewContactHandler(r, deps.ContactUC,
		middleware.BodyLimit(cfg.MaxBodyBytes),
		middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window)),
	)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
