// Package config loads timetrack settings from a YAML file in the XDG
// config directory, with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string `yaml:"db_path"`
	// User scopes every store operation. A single-machine install keeps
	// the default; shared databases give each person their own value.
	User string `yaml:"user"`
	// LogUseCases enables slog telemetry for timer operations.
	LogUseCases bool `yaml:"log_use_cases"`
}

// DefaultConfig returns a Config with XDG-based defaults.
func DefaultConfig() Config {
	return Config{
		DBPath: filepath.Join(xdg.DataHome, "timetrack", "timetrack.db"),
		User:   "local",
	}
}

// Load reads the config file and applies environment overrides.
// A missing file is not an error; defaults apply.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := configPath()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fine, first run
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultConfig().DBPath
	}
	if cfg.User == "" {
		cfg.User = DefaultConfig().User
	}
	return cfg, nil
}

func configPath() string {
	if v := os.Getenv("TIMETRACK_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, "timetrack", "config.yaml")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TIMETRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TIMETRACK_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("TIMETRACK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
}
