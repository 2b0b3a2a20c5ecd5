package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected default level warn, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Expected default format text, got %s", cfg.LogFormat)
	}
	if cfg.DotEnvLoaded {
		t.Error("Expected no .env file to be loaded")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "json")

	path := filepath.Join(t.TempDir(), "test.env")
	content := EnvLogLevel + "=debug\n" + EnvLogFormat + "=text\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	// godotenv only fills variables that are unset.
	os.Unsetenv(EnvLogLevel)

	cfg := Load(path)

	if !cfg.DotEnvLoaded {
		t.Error("Expected .env file to be loaded")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected level from file, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected environment to override file, got %s", cfg.LogFormat)
	}
}
