package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"DWELLING_SPACE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DWELLING_SPACE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "DWELLING_SPACE_TEST_PORT=456\nDWELLING_SPACE_TEST_DOTENV_ONLY=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("DWELLING_SPACE_TEST_PORT", "789")
	t.Setenv("DWELLING_SPACE_TEST_DOTENV_ONLY", "")
	os.Unsetenv("DWELLING_SPACE_TEST_DOTENV_ONLY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("DWELLING_SPACE_TEST_PORT"); got != "789" {
		t.Fatalf("port = %q, want existing value 789", got)
	}
	if got := os.Getenv("DWELLING_SPACE_TEST_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("dotenv only = %q, want from-file", got)
	}
}
