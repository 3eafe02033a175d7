package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"demandcast/internal/auth"
	"demandcast/internal/config"
	"demandcast/internal/handler"
	"demandcast/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *zap.SugaredLogger,
	sessions *auth.Sessions,
	datasetH *handler.DatasetHandler,
	validationH *handler.ValidationHandler,
	forecastH *handler.ForecastHandler,
	exportH *handler.ExportHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/health", healthH.Liveness)
	r.GET("/ready", healthH.Readiness)

	// Operational surfaces
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public routes: upload opens a session; validate/rules/models are stateless.
	v1.POST("/datasets", datasetH.Upload)
	v1.POST("/validate", validationH.Validate)
	v1.GET("/rules", validationH.Rules)
	v1.GET("/models", forecastH.Models)

	// Session routes - Bearer token enforced when require_session_token is on
	session := v1.Group("")
	session.Use(middleware.SessionAuth(sessions, cfg.Auth.RequireSessionToken))
	session.GET("/datasets/:id", datasetH.GetByID)
	session.GET("/datasets/:id/records", datasetH.Records)
	session.GET("/datasets/:id/issues", datasetH.Issues)
	session.GET("/datasets/:id/download", datasetH.Download)
	session.POST("/process", forecastH.Process)
	session.GET("/results", forecastH.Results)
	session.POST("/forecast", forecastH.Forecast)
	session.GET("/export/results", exportH.Results)
	session.GET("/export/issues", exportH.Issues)

	// Admin routes - X-API-Key
	admin := v1.Group("")
	admin.Use(middleware.AdminKey(cfg.Auth.AdminKeyHash))
	admin.GET("/datasets", datasetH.List)
	admin.DELETE("/datasets/:id", datasetH.Delete)
	admin.GET("/stats", statsH.GetStats)

	// Aliases kept for clients of the pre-v1 API
	legacy := r.Group("/api")
	legacy.GET("/health", healthH.Liveness)
	legacy.POST("/upload", datasetH.Upload)

	legacySession := legacy.Group("")
	legacySession.Use(middleware.SessionAuth(sessions, cfg.Auth.RequireSessionToken))
	legacySession.POST("/process", forecastH.Process)
	legacySession.GET("/results", forecastH.Results)
	legacySession.POST("/forecast", forecastH.Forecast)

	return r
}
