package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const DefaultLadderURL = "http://www/~tlr/tntfl-test/"

type Config struct {
	// LadderURL is the root of the ladder backend, always ending in "/".
	LadderURL  string
	DBPath     string
	ServerPort string
	LogLevel   string
	// RedisURL is optional; empty disables the stats response cache.
	RedisURL string
	CacheTTL time.Duration
	// BasePath prefixes player and game links in rendered pages.
	BasePath string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		LadderURL:  getEnv("LADDER_URL", DefaultLadderURL),
		DBPath:     getEnv("DB_PATH", "tntfl.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		RedisURL:   getEnv("REDIS_URL", ""),
		CacheTTL:   cacheTTL,
		BasePath:   getEnv("BASE_PATH", "/"),
	}

	cfg.LadderURL, err = NormalizeLadderURL(cfg.LadderURL)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(cfg.BasePath, "/") {
		cfg.BasePath += "/"
	}

	logger.Info().
		Str("ladder_url", cfg.LadderURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("redis_cache", cfg.RedisURL != "").
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

// NormalizeLadderURL checks that raw is an absolute http(s) URL and
// appends the trailing slash the endpoint paths are joined onto.
func NormalizeLadderURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("LADDER_URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid LADDER_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid LADDER_URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid LADDER_URL %q: missing host", raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
