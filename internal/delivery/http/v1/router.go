package v1

import (
	"net/http"
	"time"

	"go-jobswipe-backend/config"
	"go-jobswipe-backend/internal/delivery/http/middleware"
	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SwipeUC domain.SwipeUsecase
	MatchUC domain.MatchUsecase
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		swipes := protected.Group("")
		swipes.Use(middleware.RateLimitMiddleware(
			middleware.SwipeRateLimitConfig(deps.Config.RateLimitSwipeThreshold, window)))
		NewSwipeHandler(swipes, deps.SwipeUC)

		NewMatchHandler(protected, deps.MatchUC)
	}

	return r
}
