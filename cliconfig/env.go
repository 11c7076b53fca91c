package cliconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenv reads a ".env" file (or ".env.<name>" when name is non-empty)
// from dir and returns its key/value pairs. A missing file is not an
// error: a nil map is returned.
func LoadDotenv(dir, name string) (map[string]string, error) {
	fileName := ".env"
	if name != "" {
		fileName = ".env." + name
	}
	path := fileName
	if dir != "" {
		path = dir + string(os.PathSeparator) + fileName
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cliconfig: access %s: %w", path, err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("cliconfig: read %s: %w", path, err)
	}
	return values, nil
}

// MergeDotenv overlays dotenv values onto cfg for any field the config
// file left blank, mirroring the database_url/schema_path precedence
// DatabaseURL/SchemaPath apply for flags and the process environment.
func MergeDotenv(cfg *Config, values map[string]string) {
	if cfg == nil || values == nil {
		return
	}
	if cfg.DatabaseURL == "" {
		if v := values["DATABASE_URL"]; v != "" {
			cfg.DatabaseURL = v
		}
	}
	if cfg.SchemaPath == "" {
		if v := values["SCHEMA_PATH"]; v != "" {
			cfg.SchemaPath = v
		}
	}
}
