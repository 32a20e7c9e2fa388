package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/carbontrail/carbontrail/internal/flagx"
)

// jsonConfig is the DTO for the JSON config file. Durations are strings
// accepted by time.ParseDuration ("15s", "1m").
type jsonConfig struct {
	ServerBaseURL  string `json:"server_base_url"`
	RequestTimeout string `json:"request_timeout"`
	LocalDBPath    string `json:"local_db_path"`
	LogLevel       string `json:"log_level"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag, no file, no overlay. Only fields present in the file override.
func parseJSON(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout in %s: %w", path, err)
		}
		cfg.RequestTimeout = d
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
