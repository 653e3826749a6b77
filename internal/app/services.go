package app

import (
	"github.com/yungbote/aletheia-backend/internal/content"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/services"
)

type Services struct {
	Analysis services.AnalysisService
}

func wireServices(lib *content.Library, reposet Repos, log *logger.Logger) Services {
	return Services{
		Analysis: services.NewAnalysisService(lib, reposet.History, log),
	}
}
