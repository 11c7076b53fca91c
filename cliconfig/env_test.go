package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotenvMissingFileIsNotAnError(t *testing.T) {
	values, err := LoadDotenv(t.TempDir(), "")
	if err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if values != nil {
		t.Fatalf("expected a nil map for a missing .env file, got %+v", values)
	}
}

func TestLoadDotenvReadsNamedFile(t *testing.T) {
	dir := t.TempDir()
	contents := "DATABASE_URL=mem://dotenv\n"
	if err := os.WriteFile(filepath.Join(dir, ".env.test"), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	values, err := LoadDotenv(dir, "test")
	if err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if values["DATABASE_URL"] != "mem://dotenv" {
		t.Fatalf("got %+v", values)
	}
}

func TestMergeDotenvOnlyFillsBlankFields(t *testing.T) {
	cfg := &Config{DatabaseURL: "mem://already-set"}
	MergeDotenv(cfg, map[string]string{
		"DATABASE_URL": "mem://dotenv",
		"SCHEMA_PATH":  "schema.json",
	})
	if cfg.DatabaseURL != "mem://already-set" {
		t.Errorf("dotenv must not override an already-set DatabaseURL, got %q", cfg.DatabaseURL)
	}
	if cfg.SchemaPath != "schema.json" {
		t.Errorf("dotenv should fill a blank SchemaPath, got %q", cfg.SchemaPath)
	}
}

func TestMergeDotenvNilIsNoop(t *testing.T) {
	MergeDotenv(nil, map[string]string{"DATABASE_URL": "x"})
	MergeDotenv(&Config{}, nil)
}
