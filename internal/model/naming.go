package model

// NamingConfig controls the canonical-naming stage of an export run.
//
// When Enabled is false the executor writes the flat legacy archive layout
// and the canonicalization engine is never invoked.
type NamingConfig struct {
	// Enabled switches canonical naming on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DefaultView is the camera view used when neither the animation name
	// nor the manifest supplies one (e.g. "VIEW_SIDE").
	DefaultView string `json:"default_view" yaml:"default_view"`

	// DefaultCategory is used for animation names that carry no category
	// of their own.
	DefaultCategory string `json:"default_category" yaml:"default_category"`

	// DefaultDirection is the direction-set fallback ("LR", "4dir",
	// "8dir", "none").
	DefaultDirection string `json:"default_direction" yaml:"default_direction"`

	// DefaultTiming is the timing-type fallback ("loop" or "once").
	DefaultTiming string `json:"default_timing" yaml:"default_timing"`

	// Manifest is the optional authoritative override table. Nil means no
	// manifest.
	Manifest *NamingManifest `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// Mapping is one manifest record overriding naming attributes for a single
// animation. Every field is optional; empty fields fall through to the
// name-derived or default values.
type Mapping struct {
	// Canonical is an explicit canonical name ("category/action_variant").
	// When set it wins over everything derived from the raw name.
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`

	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Action    string `json:"action,omitempty" yaml:"action,omitempty"`
	Variant   string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Timing    string `json:"timing,omitempty" yaml:"timing,omitempty"`
	View      string `json:"view,omitempty" yaml:"view,omitempty"`
}

// NamingManifest is a versioned, asset-scoped override table from raw
// animation names to naming attributes.
//
// Keys come in three accepted shapes, newest first:
//
//	"<assetKey>::<animationName>"   current
//	"<assetKey>/<animationName>"    legacy
//	"<animationName>"               bare, applies across assets
//
// The manifest is authoritative when a key matches and is never mutated by
// the export pipeline.
type NamingManifest struct {
	Version  int                `json:"version" yaml:"version"`
	Mappings map[string]Mapping `json:"mappings" yaml:"mappings"`
}

// Lookup returns the first mapping matching one of the candidate keys, in
// the order given, along with whether any matched.
func (m *NamingManifest) Lookup(keys ...string) (Mapping, bool) {
	if m == nil || len(m.Mappings) == 0 {
		return Mapping{}, false
	}
	for _, k := range keys {
		if mp, ok := m.Mappings[k]; ok {
			return mp, true
		}
	}
	return Mapping{}, false
}

// ActionSpec is the resolved identity of one animation: the output of the
// canonicalization engine, consumed by the derived-path builder and the
// metadata sidecar. Ephemeral; never persisted as-is.
type ActionSpec struct {
	// CanonicalName is the stable "category/action_variant" identifier.
	CanonicalName string `json:"canonicalName"`

	Category  string `json:"category"`
	Action    string `json:"action"`
	Variant   string `json:"variant"`
	Direction string `json:"direction"`
	Timing    string `json:"timing"`
	View      string `json:"view"`
}

// DerivedPaths holds every path derived from an ActionSpec for one task.
//
// For sprite deliveries OutputPath is a base path: the caller appends
// per-frame numbering or atlas page suffixes. For preview deliveries it is
// the complete single-file path.
type DerivedPaths struct {
	Delivery      string `json:"delivery"`
	View          string `json:"view"`
	Category      string `json:"category"`
	CanonicalName string `json:"canonicalName"`
	BaseName      string `json:"baseName"`
	OutputPath    string `json:"outputPath"`
	MetadataPath  string `json:"metadataPath"`
}
