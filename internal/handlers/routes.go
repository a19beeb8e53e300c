package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"housing-prediction-api/internal/config"
	"housing-prediction-api/internal/metrics"
	"housing-prediction-api/internal/middleware"
	"housing-prediction-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	PredictionService services.PredictionService
	Metrics           *metrics.Recorder
	Endpoint          string
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, rc *RouterConfig) {
	predictionHandler := NewPredictionHandler(rc.PredictionService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "housing-prediction-api",
			"endpoint":  rc.Endpoint,
			"timestamp": time.Now().UTC(),
		})
	})

	if rc.Metrics != nil {
		router.GET("/metrics", gin.WrapH(rc.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/predict", predictionHandler.Predict)
		v1.OPTIONS("/predict", predictionHandler.Preflight)
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.ServerConfig, logger logrus.FieldLogger, recorder *metrics.Recorder) {
	router.Use(gin.Recovery())

	// Request ID
	router.Use(middleware.RequestID())

	// CORS
	router.Use(middleware.CORS())

	// Request size limit
	router.Use(middleware.RequestSizeLimit(cfg.MaxBodyBytes))

	// Rate limiting
	router.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Structured logging
	router.Use(middleware.StructuredLogger(logger))

	// Metrics
	router.Use(middleware.Metrics(recorder))
}
