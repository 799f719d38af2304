package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sortstep/internal/input"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Separator != "\n" {
		t.Errorf("expected newline separator, got %q", cfg.Separator)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.SVG.Width <= 0 || cfg.SVG.Height <= 0 {
		t.Error("svg size should be positive")
	}
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortstep.yaml")
	data := "theme: ocean\nsvg:\n  width: 1024\nfps: -1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("expected theme ocean, got %s", cfg.Theme)
	}
	if cfg.SVG.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.SVG.Width)
	}
	if cfg.SVG.Height != DefaultSVGHeight {
		t.Errorf("expected default height, got %d", cfg.SVG.Height)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected invalid fps reset to default, got %d", cfg.FPS)
	}
	if cfg.Separator != DefaultSeparator {
		t.Errorf("expected default separator, got %q", cfg.Separator)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Separator = " | "
	cfg.GIF.Delay = 25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Separator != " | " || got.GIF.Delay != 25 {
		t.Errorf("unexpected config after reload: %+v", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		raw, ok := GetPreset(name)
		if !ok {
			t.Fatalf("preset %s listed but not found", name)
		}
		if _, err := input.Parse(raw); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	values, _ := input.Parse(Presets["max"])
	if len(values) != input.MaxElements {
		t.Errorf("max preset has %d elements, want %d", len(values), input.MaxElements)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestListPresets_Sorted(t *testing.T) {
	names := ListPresets()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
