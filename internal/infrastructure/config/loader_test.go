package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/chaincalc/internal/domain"
)

func TestLoadBootstrapsDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("first load mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config was not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("display:\n  decimals: 4\nengine:\n  initial_value: 10\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Decimals != 4 {
		t.Errorf("decimals = %d, want 4", cfg.Display.Decimals)
	}
	if cfg.Engine.InitialValue != 10 {
		t.Errorf("initial_value = %v, want 10", cfg.Engine.InitialValue)
	}
	if cfg.REPL.Prompt != domain.DefaultPrompt {
		t.Errorf("prompt = %q, want hydrated default %q", cfg.REPL.Prompt, domain.DefaultPrompt)
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Errorf("config_format_version = %q, want hydrated %q", cfg.ConfigFormatVersion, "1")
	}
}

func TestLoadClampsOutOfRangeDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  decimals: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Decimals != domain.ShortestDecimals {
		t.Errorf("decimals = %d, want clamped %d", cfg.Display.Decimals, domain.ShortestDecimals)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := defaultConfig()
	cfg.Display.Decimals = 3
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, reloaded); diff != "" {
		t.Errorf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePathHonorsEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("CHAINCALC_CONFIG", override)

	if got := NewFileLoader("").Path(); got != override {
		t.Errorf("Path() = %q, want %q", got, override)
	}
}

func TestStaticSettings(t *testing.T) {
	settings := domain.DisplaySettings{Decimals: 2, HumanizeHistory: true}
	src := StaticSettings{Settings: settings}
	if got := src.Display(); got != settings {
		t.Errorf("Display() = %+v, want %+v", got, settings)
	}
}
