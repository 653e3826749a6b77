package server

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/http/handlers"
	"github.com/yungbote/aletheia-backend/internal/http/middleware"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	HealthHandler   *handlers.HealthHandler
	EnvCheckHandler *handlers.EnvCheckHandler
	DilemmaHandler  *handlers.DilemmaHandler
	AnalysisHandler *handlers.AnalysisHandler
	HistoryHandler  *handlers.HistoryHandler
	SettingsHandler *handlers.SettingsHandler
	ExportHandler   *handlers.ExportHandler
	AuthHandler     *handlers.AuthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.AttachBearer())

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	router.GET("/env-check", cfg.EnvCheckHandler.Check)

	router.GET("/dilemmas", cfg.DilemmaHandler.List)
	router.GET("/dilemmas/:key/responses", cfg.DilemmaHandler.Responses)
	router.POST("/analyze", cfg.AnalysisHandler.Analyze)

	router.POST("/history", cfg.HistoryHandler.Create)
	router.GET("/history", cfg.HistoryHandler.List)
	router.DELETE("/history", cfg.HistoryHandler.Delete)

	router.GET("/settings", cfg.SettingsHandler.Get)
	router.POST("/settings", cfg.SettingsHandler.Upsert)

	router.GET("/export", cfg.ExportHandler.Export)

	router.POST("/auth/otp", cfg.AuthHandler.SendOTP)

	return router
}
