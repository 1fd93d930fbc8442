package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.World.GridSize != 50 {
		t.Errorf("grid_size = %d, want 50", cfg.World.GridSize)
	}
	if cfg.Food.Count != 10 {
		t.Errorf("food.count = %d, want 10", cfg.Food.Count)
	}
	if cfg.Population.Initial != 10 {
		t.Errorf("population.initial = %d, want 10", cfg.Population.Initial)
	}
	if cfg.Day.LengthTicks != 300 {
		t.Errorf("day.length_ticks = %d, want 300", cfg.Day.LengthTicks)
	}
	if cfg.Derived.Cells != 2500 {
		t.Errorf("derived cells = %d, want 2500", cfg.Derived.Cells)
	}
	if cfg.Derived.WindowSize != 500 {
		t.Errorf("derived window size = %d, want 500", cfg.Derived.WindowSize)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("world:\n  grid_size: 5\nfood:\n  count: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.World.GridSize != 5 || cfg.Food.Count != 3 {
		t.Errorf("overrides not applied: grid=%d food=%d", cfg.World.GridSize, cfg.Food.Count)
	}
	// Untouched sections keep their defaults
	if cfg.Day.LengthTicks != 300 {
		t.Errorf("day.length_ticks = %d, want default 300", cfg.Day.LengthTicks)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero food", func(c *Config) { c.World.GridSize = 5; c.Food.Count = 0 }, false},
		{"food fills grid", func(c *Config) { c.World.GridSize = 5; c.Food.Count = 25 }, false},
		{"food exceeds grid", func(c *Config) { c.World.GridSize = 5; c.Food.Count = 26 }, true},
		{"negative food", func(c *Config) { c.Food.Count = -1 }, true},
		{"zero grid", func(c *Config) { c.World.GridSize = 0 }, true},
		{"empty population", func(c *Config) { c.Population.Initial = 0 }, false},
		{"negative population", func(c *Config) { c.Population.Initial = -1 }, true},
		{"zero day length", func(c *Config) { c.Day.LengthTicks = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  grid_size: 2\nfood:\n  count: 5\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v, want ErrInvalid", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	cfg.Food.Count = 4

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Seed != 7 || loaded.Food.Count != 4 {
		t.Errorf("loaded seed=%d food=%d, want 7 and 4", loaded.Seed, loaded.Food.Count)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	defer func() {
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
