package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aletheia-backend/internal/content"
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

// App owns every long-lived dependency: one logger, one store handle, the
// content tables, and the wired router. Everything is constructed here and
// passed down; nothing reads configuration after startup.
type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    supabase.Client
	Library  *content.Library
	Repos    Repos
	Services Services
	Router   *gin.Engine
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	var store supabase.Client
	if cfg.Store.Configured() {
		store, err = supabase.New(log, cfg.Store)
		if err != nil {
			log.Sync()
			return nil, fmt.Errorf("init store client: %w", err)
		}
	} else {
		log.Warn("Store configuration missing; running in anonymous, non-persistent mode")
	}

	lib, err := content.Load()
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load dilemma tables: %w", err)
	}

	reposet := wireRepos(store, log)
	serviceset := wireServices(lib, reposet, log)
	handlerset := wireHandlers(cfg, lib, store, reposet, serviceset)
	router := wireRouter(log, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Store:    store,
		Library:  lib,
		Repos:    reposet,
		Services: serviceset,
		Router:   router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("HTTP server starting", "addr", a.Cfg.HTTPAddr)
	return a.Router.Run(a.Cfg.HTTPAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
