package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.BoxThreshold != 140 {
		t.Fatalf("BoxThreshold = %v, want 140", cfg.BoxThreshold)
	}
	if cfg.MinBoxArea != 0.005 || cfg.MaxBoxArea != 0.250 {
		t.Fatalf("box area bounds = [%v, %v), want [0.005, 0.250)", cfg.MinBoxArea, cfg.MaxBoxArea)
	}
	if cfg.SelectedThreshold != 0.5 {
		t.Fatalf("SelectedThreshold = %v, want 0.5", cfg.SelectedThreshold)
	}
	if cfg.OCRThreshold != 160 {
		t.Fatalf("OCRThreshold = %v, want 160", cfg.OCRThreshold)
	}
	if cfg.MinTextLen != 3 {
		t.Fatalf("MinTextLen = %v, want 3", cfg.MinTextLen)
	}
	if cfg.FuzzyCutoff != 0.5 {
		t.Fatalf("FuzzyCutoff = %v, want 0.5", cfg.FuzzyCutoff)
	}
	if cfg.CaptureIntervalMs != 500 {
		t.Fatalf("CaptureIntervalMs = %v, want 500", cfg.CaptureIntervalMs)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing config file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := "capture_interval_ms: 250\nselected_channel: 0\n"
	if err := os.WriteFile(filepath.Join(dir, "retag.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CaptureIntervalMs != 250 {
		t.Fatalf("CaptureIntervalMs = %v, want 250", cfg.CaptureIntervalMs)
	}
	if cfg.SelectedChannel != 0 {
		t.Fatalf("SelectedChannel = %v, want 0", cfg.SelectedChannel)
	}
	// Untouched keys keep their defaults.
	if cfg.BoxThreshold != 140 {
		t.Fatalf("BoxThreshold = %v, want default 140", cfg.BoxThreshold)
	}
}
