package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.Model != "model.stl" {
		t.Errorf("expected model 'model.stl', got %s", cfg.Viewer.Model)
	}
	if cfg.Viewer.Downscale != 8 {
		t.Errorf("expected downscale 8, got %d", cfg.Viewer.Downscale)
	}
	if cfg.Viewer.RotationStep != 0.005 {
		t.Errorf("expected rotation step 0.005, got %f", cfg.Viewer.RotationStep)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	yaml := `
graphics:
  width: 640
  height: 480
viewer:
  model: dragon.stl
  downscale: 4
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Graphics.Width != 640 || cfg.Graphics.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Viewer.Model != "dragon.stl" {
		t.Errorf("expected model 'dragon.stl', got %s", cfg.Viewer.Model)
	}
	if cfg.Viewer.Downscale != 4 {
		t.Errorf("expected downscale 4, got %d", cfg.Viewer.Downscale)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Values not in the file keep their defaults.
	if cfg.Viewer.RotationStep != 0.005 {
		t.Errorf("expected default rotation step, got %f", cfg.Viewer.RotationStep)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive partial file")
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(path, []byte("graphics: ["), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
