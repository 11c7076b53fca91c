// Package cliconfig loads the CLI's schemasync.toml configuration file and
// merges it with environment variables and a .env file, the way the
// upstream CLI layers lockplane.toml under environment overrides.
package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the config file searched for from the working
// directory upward.
const ConfigFileName = "schemasync.toml"

// Config is the schemasync.toml document.
type Config struct {
	DatabaseURL string `toml:"database_url"`
	SchemaPath  string `toml:"schema_path"`
}

// Load walks up from the current directory looking for schemasync.toml.
// A missing file is not an error: an empty Config is returned.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			var cfg Config
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return &Config{}, nil
}

// DatabaseURL resolves the connection string with priority: explicit flag
// > environment variable > config file > fallback default.
func DatabaseURL(explicit string, cfg *Config, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	if cfg != nil && cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fallback
}

// SchemaPath resolves the desired-schema document path with priority:
// explicit flag > config file > fallback default.
func SchemaPath(explicit string, cfg *Config, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if cfg != nil && cfg.SchemaPath != "" {
		return cfg.SchemaPath
	}
	return fallback
}
