package supabase

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/yungbote/aletheia-backend/internal/platform/envutil"
)

type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("SUPABASE_TIMEOUT_SECONDS", 30)
	return Config{
		URL:     strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		AnonKey: strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		Timeout: time.Duration(timeoutSec) * time.Second,
	}
}

// Configured reports whether both required values are present. When either is
// missing the app runs in anonymous, non-persistent mode instead of failing.
func (c Config) Configured() bool {
	return c.URL != "" && c.AnonKey != ""
}

func ValidateConfig(cfg Config) error {
	if cfg.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	parsed, err := url.Parse(cfg.URL)
	if err != nil || strings.TrimSpace(parsed.Scheme) == "" || strings.TrimSpace(parsed.Host) == "" {
		return fmt.Errorf("invalid SUPABASE_URL=%q; expected absolute URL like https://xyz.supabase.co", cfg.URL)
	}
	if cfg.AnonKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	return nil
}
