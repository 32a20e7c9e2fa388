package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with CARBONTRAIL_* environment variables.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
