package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Visitor analytics. An empty DATABASE_PATH falls back to the default.
	AnalyticsEnabled   bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	DatabasePath       string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	AnalyticsRetention time.Duration `env:"ANALYTICS_RETENTION" envDefault:"8760h"`

	// Empty means a random token is generated at startup
	AdminToken string `env:"ADMIN_TOKEN"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// Only effective locally; a missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of debug, release, test; got %q", cfg.GinMode)
	}
	if cfg.AnalyticsRetention <= 0 {
		return nil, fmt.Errorf("ANALYTICS_RETENTION must be positive, got %s", cfg.AnalyticsRetention)
	}

	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
