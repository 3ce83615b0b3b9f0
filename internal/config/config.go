package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	ThemeStatePath string
	DemoDuration   time.Duration
	LogLevel       slog.Level
}

func FromEnv() Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	dur := 120 * time.Second
	if v := os.Getenv("DEMO_DURATION_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dur = time.Duration(n) * time.Second
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:           envOr("PORT", "8080"),
		ThemeStatePath: envOr("THEME_STATE_PATH", "theme.json"),
		DemoDuration:   dur,
		LogLevel:       lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
