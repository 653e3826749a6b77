package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		HealthHandler:   handlerset.Health,
		EnvCheckHandler: handlerset.EnvCheck,
		DilemmaHandler:  handlerset.Dilemma,
		AnalysisHandler: handlerset.Analysis,
		HistoryHandler:  handlerset.History,
		SettingsHandler: handlerset.Settings,
		ExportHandler:   handlerset.Export,
		AuthHandler:     handlerset.Auth,
	})
}
