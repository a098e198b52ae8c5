package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kohaku-dev/animbatch/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.FPS != 30 || !settings.NamingEnabled {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	settings := DefaultSettings()
	settings.FPS = 60
	settings.SpriteMode = "atlas"
	settings.DefaultCategory = "locomotion"
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.FPS != 60 || loaded.SpriteMode != "atlas" || loaded.DefaultCategory != "locomotion" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestToExportConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.Format = "video"
	settings.SpriteMode = "atlas"

	cfg, err := settings.ToExportConfig()
	if err != nil {
		t.Fatalf("ToExportConfig: %v", err)
	}
	if cfg.Format != model.FormatVideo {
		t.Errorf("Format = %s, want video", cfg.Format)
	}
	if cfg.SpriteMode != model.SpriteAtlas {
		t.Errorf("SpriteMode = %s, want atlas", cfg.SpriteMode)
	}
	if cfg.Naming.DefaultView != "VIEW_SIDE" {
		t.Errorf("DefaultView = %s", cfg.Naming.DefaultView)
	}
}

func TestLoadManifest_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	content := `version: 2
mappings:
  "characters/hero::Swing Sword":
    canonical: combat/slash_01
    timing: once
  "Jump":
    direction: 8dir
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if manifest.Version != 2 {
		t.Errorf("Version = %d, want 2", manifest.Version)
	}

	mapping, ok := manifest.Lookup("characters/hero::Swing Sword")
	if !ok {
		t.Fatal("mapping not found")
	}
	if mapping.Canonical != "combat/slash_01" || mapping.Timing != "once" {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestLoadManifest_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	content := `{"version": 1, "mappings": {"walk": {"category": "locomotion"}}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if mapping, ok := manifest.Lookup("walk"); !ok || mapping.Category != "locomotion" {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestSaveManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	manifest := &model.NamingManifest{
		Version: 1,
		Mappings: map[string]model.Mapping{
			"hero::Old Walk": {Action: "walk", Variant: "01"},
		},
	}

	if err := SaveManifest(manifest, path); err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}
	loaded, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if mapping, ok := loaded.Lookup("hero::Old Walk"); !ok || mapping.Variant != "01" {
		t.Errorf("round trip lost mapping: %+v", loaded.Mappings)
	}
}
