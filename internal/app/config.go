package app

import (
	"github.com/yungbote/aletheia-backend/internal/platform/envutil"
	"github.com/yungbote/aletheia-backend/internal/platform/supabase"
)

type Config struct {
	HTTPAddr string
	Store    supabase.Config
}

func LoadConfig() Config {
	return Config{
		HTTPAddr: envutil.Str("HTTP_ADDR", ":8080"),
		Store:    supabase.ConfigFromEnv(),
	}
}
