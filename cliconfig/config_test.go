package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "" || cfg.SchemaPath != "" {
		t.Fatalf("expected an empty config, got %+v", cfg)
	}
}

func TestLoadFindsConfigWalkingUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	contents := "database_url = \"mem://test\"\nschema_path = \"schema.json\"\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Chdir(nested)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "mem://test" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SchemaPath != "schema.json" {
		t.Errorf("SchemaPath = %q", cfg.SchemaPath)
	}
}

func TestDatabaseURLPrecedence(t *testing.T) {
	cfg := &Config{DatabaseURL: "mem://config"}

	if got := DatabaseURL("mem://flag", cfg, "mem://fallback"); got != "mem://flag" {
		t.Errorf("explicit flag should win, got %q", got)
	}

	t.Setenv("DATABASE_URL", "mem://env")
	if got := DatabaseURL("", cfg, "mem://fallback"); got != "mem://env" {
		t.Errorf("env var should win over config file, got %q", got)
	}

	t.Setenv("DATABASE_URL", "")
	if got := DatabaseURL("", cfg, "mem://fallback"); got != "mem://config" {
		t.Errorf("config file should win over fallback, got %q", got)
	}

	if got := DatabaseURL("", &Config{}, "mem://fallback"); got != "mem://fallback" {
		t.Errorf("fallback should apply when nothing else is set, got %q", got)
	}
}

func TestSchemaPathPrecedence(t *testing.T) {
	cfg := &Config{SchemaPath: "config.json"}
	if got := SchemaPath("flag.json", cfg, "fallback.json"); got != "flag.json" {
		t.Errorf("explicit flag should win, got %q", got)
	}
	if got := SchemaPath("", cfg, "fallback.json"); got != "config.json" {
		t.Errorf("config file should win over fallback, got %q", got)
	}
	if got := SchemaPath("", &Config{}, "fallback.json"); got != "fallback.json" {
		t.Errorf("fallback should apply when nothing else is set, got %q", got)
	}
}
