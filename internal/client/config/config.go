package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the CarbonTrail client.
type Config struct {
	// ServerBaseURL is the root of the marketplace REST API.
	ServerBaseURL string `env:"CARBONTRAIL_SERVER_URL"`
	// RequestTimeout bounds a single API request.
	RequestTimeout time.Duration `env:"CARBONTRAIL_REQUEST_TIMEOUT"`
	// LocalDBPath is the sqlite file holding the persisted session.
	LocalDBPath string `env:"CARBONTRAIL_DB_PATH"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CARBONTRAIL_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.LocalDBPath = "carbontrail.db"
	c.LogLevel = "info"
}

// Load constructs a Config, applies defaults, then overlays values from
// an optional .env file, a JSON file, the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
