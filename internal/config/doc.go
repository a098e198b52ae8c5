// Package config provides configuration management for animbatch.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the immutable per-run model.ExportConfig
//   - Loading naming manifests from YAML or JSON
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// frame-sequence output, canonical naming on, 2048px atlas pages
//
// # Loading from File
//
//	settings, err := config.Load("animbatch.json")
//	if err != nil {
//	    // Uses defaults if the file doesn't exist
//	}
//
// # Manifests
//
// Naming manifests are small hand-maintained YAML files:
//
//	version: 1
//	mappings:
//	  "characters/hero::Swing Sword":
//	    canonical: combat/slash_01
//	    timing: once
package config
