package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// Settings holds all configuration options for the CLI and TUI.
type Settings struct {
	// Source settings
	FramesRoot string `json:"frames_root"`
	OutputPath string `json:"output_path"`
	Workers    int    `json:"workers"`

	// Render settings
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        int     `json:"fps"`
	Duration   float64 `json:"duration"`
	Background string  `json:"background"`

	// Output settings
	Format     string `json:"format"`      // video, frames
	VideoExt   string `json:"video_ext"`   // mp4, webm
	SpriteMode string `json:"sprite_mode"` // sequence, atlas

	// Atlas settings
	AtlasMaxPageSize int  `json:"atlas_max_page_size"`
	AtlasPadding     int  `json:"atlas_padding"`
	AtlasTrim        bool `json:"atlas_trim"`

	// Naming settings
	NamingEnabled    bool   `json:"naming_enabled"`
	DefaultView      string `json:"default_view"`
	DefaultCategory  string `json:"default_category"`
	DefaultDirection string `json:"default_direction"`
	DefaultTiming    string `json:"default_timing"`
	ManifestPath     string `json:"manifest_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		FramesRoot: ".",
		OutputPath: "export.zip",
		Workers:    0, // 0 = auto

		Width:  1024,
		Height: 1024,
		FPS:    30,

		Format:     "frames",
		VideoExt:   "mp4",
		SpriteMode: "sequence",

		AtlasMaxPageSize: 2048,
		AtlasPadding:     2,
		AtlasTrim:        true,

		NamingEnabled:    true,
		DefaultView:      "VIEW_SIDE",
		DefaultCategory:  "misc",
		DefaultDirection: "LR",
		DefaultTiming:    "loop",
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToExportConfig converts settings to the immutable per-run ExportConfig,
// loading the naming manifest when one is configured.
func (s *Settings) ToExportConfig() (*model.ExportConfig, error) {
	format := model.FormatFrames
	if s.Format == "video" {
		format = model.FormatVideo
	}

	spriteMode := model.SpriteSequence
	if s.SpriteMode == "atlas" {
		spriteMode = model.SpriteAtlas
	}

	cfg := &model.ExportConfig{
		Width:      s.Width,
		Height:     s.Height,
		FPS:        s.FPS,
		Duration:   s.Duration,
		Background: s.Background,
		Format:     format,
		VideoExt:   s.VideoExt,
		SpriteMode: spriteMode,
		Atlas: model.AtlasOptions{
			MaxPageSize: s.AtlasMaxPageSize,
			Padding:     s.AtlasPadding,
			Trim:        s.AtlasTrim,
		},
		Naming: model.NamingConfig{
			Enabled:          s.NamingEnabled,
			DefaultView:      s.DefaultView,
			DefaultCategory:  s.DefaultCategory,
			DefaultDirection: s.DefaultDirection,
			DefaultTiming:    s.DefaultTiming,
		},
	}

	if s.NamingEnabled && s.ManifestPath != "" {
		manifest, err := LoadManifest(s.ManifestPath)
		if err != nil {
			return nil, err
		}
		cfg.Naming.Manifest = manifest
	}

	return cfg, nil
}
