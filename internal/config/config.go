package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment
// (optionally seeded from a .env file).
type Config struct {
	Port        string
	DBDriver    string
	DBPath      string
	DatabaseURL string
	CitiesPath  string
	RedisAddr   string
	CacheTTL    time.Duration
	LogLevel    string
	DefaultLang string
}

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

// LoadDotEnv loads .env if present. It reports whether a file was found.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load reads the configuration and validates it.
func Load() (Config, error) {
	ttl, err := time.ParseDuration(Get("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: CACHE_TTL: %w", err)
	}

	cfg := Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    strings.ToLower(Get("DB_DRIVER", DriverSqlite)),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CitiesPath:  os.Getenv("CITIES_PATH"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CacheTTL:    ttl,
		LogLevel:    Get("LOG_LEVEL", "info"),
		DefaultLang: Get("DEFAULT_LANG", "ru"),
	}

	switch cfg.DBDriver {
	case DriverSqlite:
	case DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required for DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("load config: CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}

	return cfg, nil
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
