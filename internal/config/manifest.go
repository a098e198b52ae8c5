package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// LoadManifest reads a naming manifest from a YAML or JSON file, decided
// by extension (".json" is JSON, everything else parses as YAML; YAML is
// a superset, so plain JSON content in a .yaml file also works).
func LoadManifest(path string) (*model.NamingManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading manifest %s: %w", path, err)
	}

	var manifest model.NamingManifest
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &manifest)
	} else {
		err = yaml.Unmarshal(data, &manifest)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parsing manifest %s: %w", path, err)
	}

	if manifest.Version == 0 {
		manifest.Version = 1
	}
	return &manifest, nil
}

// SaveManifest writes a naming manifest as YAML.
func SaveManifest(manifest *model.NamingManifest, path string) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
