package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies KVOTIZZA_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known KVOTIZZA_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject secrets at deploy time without touching the TOML
// file.
func applyEnvOverrides(cfg *Config) {
	// Server
	setInt(&cfg.Server.Port, "KVOTIZZA_SERVER_PORT")
	setStringSlice(&cfg.Server.CORSOrigins, "KVOTIZZA_SERVER_CORS_ORIGINS")
	setInt(&cfg.Server.RateLimit, "KVOTIZZA_SERVER_RATE_LIMIT")

	// Feed
	setStr(&cfg.Feed.BaseURL, "KVOTIZZA_FEED_BASE_URL")
	setStr(&cfg.Feed.APIKey, "KVOTIZZA_FEED_API_KEY")
	setDuration(&cfg.Feed.Timeout, "KVOTIZZA_FEED_TIMEOUT")

	// Redis
	setBool(&cfg.Redis.Enabled, "KVOTIZZA_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "KVOTIZZA_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "KVOTIZZA_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "KVOTIZZA_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "KVOTIZZA_REDIS_POOL_SIZE")

	// Postgres
	setStr(&cfg.Postgres.DSN, "KVOTIZZA_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "KVOTIZZA_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "KVOTIZZA_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "KVOTIZZA_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "KVOTIZZA_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "KVOTIZZA_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "KVOTIZZA_POSTGRES_SSL_MODE")
	setInt(&cfg.Postgres.MaxConns, "KVOTIZZA_POSTGRES_MAX_CONNS")

	// Bonus
	setStr(&cfg.Bonus.Source, "KVOTIZZA_BONUS_SOURCE")
	setStr(&cfg.Bonus.Path, "KVOTIZZA_BONUS_PATH")

	// Analysis
	setInt(&cfg.Analysis.FetchConcurrency, "KVOTIZZA_ANALYSIS_FETCH_CONCURRENCY")

	// Top-level
	setStr(&cfg.Mode, "KVOTIZZA_MODE")
	setStr(&cfg.LogLevel, "KVOTIZZA_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
