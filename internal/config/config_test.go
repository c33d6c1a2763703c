package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blink-runner/internal/core"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	s := cfg.Settings()
	if s.Gravity != 0.4 || s.JumpStrength != -10 || s.JumpDistance != 150 {
		t.Errorf("embedded physics = %+v", s)
	}
	if !s.Trees || !s.Bushes {
		t.Error("scenery should default to enabled")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
physics:
  gravity: 0.8
  jump_strength: -12
  jump_distance: 200
canvas:
  width: 1024
  height: 400
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s := cfg.Settings()
	if s.Gravity != 0.8 || s.CanvasWidth != 1024 {
		t.Errorf("custom config not applied: %+v", s)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("explicit missing path should error")
	}
}

func TestSettingsConversionValidates(t *testing.T) {
	var cfg RunnerConfig // All zero values
	s := cfg.Settings()

	if s.Gravity <= 0 {
		t.Errorf("conversion must clamp gravity, got %v", s.Gravity)
	}
	if s.CanvasWidth < 100 {
		t.Errorf("conversion must clamp canvas, got %v", s.CanvasWidth)
	}
}

func TestThemePaletteFallsBack(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Palette.SkyDay = "#112233"
	cfg.Palette.SkyNight = "not-a-color"

	p := cfg.ThemePalette()
	if p.SkyDay.Hex() != "#112233" {
		t.Errorf("SkyDay = %v", p.SkyDay.Hex())
	}
	// Malformed entries keep the built-in color rather than black
	if p.SkyNight == (core.RGB{}) {
		t.Error("malformed color should fall back, not zero out")
	}
}
