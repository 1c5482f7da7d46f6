package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DataRoot string
	DBPath   string
	LogLevel string
	DryRun   bool

	ScrapeOut      string
	SeriesURLsFile string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DataRoot:       getEnv("DATA_ROOT", "./data"),
		DBPath:         getEnv("DB_PATH", "valorant.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DryRun:         getEnvBool("DRY_RUN", false),
		ScrapeOut:      getEnv("SCRAPE_OUT", "./data"),
		SeriesURLsFile: getEnv("SERIES_URLS_FILE", "tourney_urls.txt"),
	}

	if cfg.DataRoot == "" {
		return nil, fmt.Errorf("DATA_ROOT is required")
	}

	logger.Info().
		Str("data_root", cfg.DataRoot).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Bool("dry_run", cfg.DryRun).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

var Module = fx.Provide(Load)
