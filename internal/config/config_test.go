package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/dynsets/internal/catalog"
	"github.com/san-kum/dynsets/internal/uncertainty"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "chain_of_integrators" {
		t.Errorf("expected system chain_of_integrators, got %s", cfg.System)
	}
	if cfg.Mode != "standard" {
		t.Errorf("expected mode standard, got %s", cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"unknown system", func(c *Config) { c.System = "doesNotExist" }, catalog.ErrUnknownSystem},
		{"unknown mode", func(c *Config) { c.Mode = "uniform" }, uncertainty.ErrUnknownMode},
		{"negative horizon", func(c *Config) { c.Horizon = -1 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lorenz.yaml")

	in := &Config{System: "lorenz", Mode: "diag", Seed: 9, Horizon: 5, Params: []float64{10, 28, 2}}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.System != in.System || out.Mode != in.Mode || out.Seed != in.Seed || out.Horizon != in.Horizon {
		t.Errorf("round trip changed config: %+v", out)
	}
	if len(out.Params) != 3 || out.Params[2] != 2 {
		t.Errorf("params = %v, want [10 28 2]", out.Params)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("system: pedestrian\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Mode != DefaultMode || cfg.Horizon != DefaultHorizon {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("system: pedestrian\nmode: gaussian\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadOptions(t *testing.T) {
	cfg := &Config{System: "lorenz", Mode: "rand", Seed: 3, Params: []float64{10, 0.5, 8.0 / 3.0}}
	a, err := catalog.Load(catalog.Lorenz, cfg.LoadOptions()...)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	b, _ := catalog.Load(catalog.Lorenz, cfg.LoadOptions()...)
	if a.Mode != uncertainty.Rand {
		t.Errorf("mode = %s, want rand", a.Mode)
	}
	if a.PTrue[1] != 0.5 {
		t.Errorf("PTrue = %v, want rho 0.5", a.PTrue)
	}
	if !a.Spec.R0.Equal(b.Spec.R0) {
		t.Error("same seed should give the same R0")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lorenz", "stable")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params[1] != 0.5 {
		t.Errorf("expected rho 0.5, got %f", cfg.Params[1])
	}
	cfg.Params[1] = 99
	if GetPreset("lorenz", "stable").Params[1] != 0.5 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("lorenz", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "classic")
	if cfg != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("lorenz")
	if len(presets) != 3 || presets[0] != "classic" {
		t.Errorf("expected sorted lorenz presets, got %v", presets)
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, system := range Systems() {
		for _, name := range ListPresets(system) {
			cfg := GetPreset(system, name)
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", system, name, err)
			}
			if cfg.System != system {
				t.Errorf("%s/%s: preset targets %s", system, name, cfg.System)
			}
			if _, err := catalog.Load(catalog.ID(cfg.System), cfg.LoadOptions()...); err != nil {
				t.Errorf("%s/%s: %v", system, name, err)
			}
		}
	}
}
