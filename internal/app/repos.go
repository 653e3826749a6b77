package app

import (
	"github.com/yungbote/aletheia-backend/internal/platform/logger"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
	"github.com/yungbote/aletheia-backend/internal/repos"
)

type Repos struct {
	History  repos.HistoryRepo
	Settings repos.SettingsRepo
}

// wireRepos accepts a nil store: the facades then answer every persistence
// call with a store-not-configured failure while the rest of the app keeps
// serving.
func wireRepos(store supabase.Client, log *logger.Logger) Repos {
	return Repos{
		History:  repos.NewHistoryRepo(store, log),
		Settings: repos.NewSettingsRepo(store, log),
	}
}
