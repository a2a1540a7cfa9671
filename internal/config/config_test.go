package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wikecd/revhist/internal/config"
)

func TestLoad_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(dir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != (config.Config{}) {
		t.Fatalf("expected zero Config, got %+v", cfg)
	}
}

func TestLoad_MissingExplicitFileIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := config.Load(dir, filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected ErrConfigFileNotFound")
	}
}

func TestLoad_ParsesHuJSONWithComments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	content := `{
		// default solver for this project
		"solver": "exact",
		"strategy": "auto",
		"eps": 0.05,
		"max_states": 50000,
	}`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(dir, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Solver != "exact" || cfg.Strategy != "auto" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if cfg.Eps != 0.05 || cfg.MaxStates != 50000 {
		t.Fatalf("unexpected numeric fields: %+v", cfg)
	}
}

func TestLoad_InvalidJSONIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load(dir, ""); err == nil {
		t.Fatalf("expected ErrConfigInvalid")
	}
}
