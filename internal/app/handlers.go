package app

import (
	"github.com/yungbote/aletheia-backend/internal/content"
	"github.com/yungbote/aletheia-backend/internal/http/handlers"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	EnvCheck *handlers.EnvCheckHandler
	Dilemma  *handlers.DilemmaHandler
	Analysis *handlers.AnalysisHandler
	History  *handlers.HistoryHandler
	Settings *handlers.SettingsHandler
	Export   *handlers.ExportHandler
	Auth     *handlers.AuthHandler
}

func wireHandlers(cfg Config, lib *content.Library, store supabase.Client, reposet Repos, serviceset Services) Handlers {
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		EnvCheck: handlers.NewEnvCheckHandler(cfg.Store.URL, cfg.Store.AnonKey),
		Dilemma:  handlers.NewDilemmaHandler(lib),
		Analysis: handlers.NewAnalysisHandler(serviceset.Analysis),
		History:  handlers.NewHistoryHandler(reposet.History),
		Settings: handlers.NewSettingsHandler(reposet.Settings),
		Export:   handlers.NewExportHandler(reposet.History),
		Auth:     handlers.NewAuthHandler(store),
	}
}
