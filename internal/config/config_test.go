package config

import (
	"path/filepath"
	"testing"

	"github.com/lalithu/Classical-TwoBody/internal/orbit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.G != orbit.GravitationalConstant {
		t.Errorf("expected default G, got %g", cfg.G)
	}
	if cfg.TimeSpan <= 0 {
		t.Error("time span should be positive")
	}
	if cfg.Samples < 2 {
		t.Error("samples should be at least 2")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := GetPreset("two-body")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.G != cfg.G {
		t.Errorf("G: got %g, want %g", loaded.G, cfg.G)
	}
	if loaded.TimeSpan != cfg.TimeSpan {
		t.Errorf("time span: got %g, want %g", loaded.TimeSpan, cfg.TimeSpan)
	}
	if len(loaded.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(loaded.Bodies))
	}
	if loaded.Bodies[0].Name != "a" || loaded.Bodies[0].Mass != 1e9 {
		t.Errorf("body a not preserved: %+v", loaded.Bodies[0])
	}
	if loaded.Bodies[1].Color != "darkred" {
		t.Errorf("presentation metadata not preserved: %+v", loaded.Bodies[1])
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	first := GetPreset("two-body")
	first.TimeSpan = 999

	second := GetPreset("two-body")
	if second.TimeSpan == 999 {
		t.Error("preset table was mutated through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresets_AllBuildValidRegistries(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		reg, err := cfg.Registry()
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if reg.Len() < 2 {
			t.Errorf("preset %s: only %d bodies", name, reg.Len())
		}
		oc := cfg.OrbitConfig()
		if oc.TimeSpan != cfg.TimeSpan || oc.Samples != cfg.Samples {
			t.Errorf("preset %s: orbit config mismatch", name)
		}
	}
}

func TestOrbitConfig_Defaults(t *testing.T) {
	cfg := &Config{G: 1, TimeSpan: 10}

	oc := cfg.OrbitConfig()
	if oc.Samples != orbit.DefaultSamples {
		t.Errorf("samples: got %d, want default %d", oc.Samples, orbit.DefaultSamples)
	}
	if oc.Tol <= 0 {
		t.Error("tolerance should fall back to a positive default")
	}
}
