package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sim != "orbit" {
		t.Errorf("expected sim orbit, got %s", cfg.Sim)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestFrames(t *testing.T) {
	cfg := &Config{Dt: 0.01, Duration: 10}
	if cfg.Frames() != 1000 {
		t.Errorf("expected 1000 frames, got %d", cfg.Frames())
	}

	cfg.Dt = 0
	if cfg.Frames() != 0 {
		t.Errorf("expected 0 frames for zero dt, got %d", cfg.Frames())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Sim = "gas"
	cfg.Params = map[string]float64{"count": 120}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sim != "gas" {
		t.Errorf("expected sim gas, got %s", loaded.Sim)
	}
	if loaded.Params["count"] != 120 {
		t.Errorf("expected count 120, got %f", loaded.Params["count"])
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("sim: cyclotron\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Sim != "cyclotron" {
		t.Errorf("expected sim cyclotron, got %s", cfg.Sim)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt, got %f", cfg.Dt)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("orbit", "comet")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["eccentricity"] != 0.9 {
		t.Errorf("expected eccentricity 0.9, got %f", cfg.Params["eccentricity"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("orbit", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "comet"); cfg != nil {
		t.Error("expected nil for nonexistent sim")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("gas"); len(presets) == 0 {
		t.Error("expected presets for gas")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent sim")
	}
}
