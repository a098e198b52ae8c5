package naming

import (
	"testing"

	"github.com/kohaku-dev/animbatch/internal/model"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"locomotion/Run 01", "locomotion/Run_01"},
		{"walk", "misc/walk"},
		{"a/b/c", "a/b_c"},
		{"a/b/c/d", "a/b_c_d"},
		{"", "misc/unnamed"},
		{"   ", "misc/unnamed"},
		{"/combat/slash/", "combat/slash"},
		{"combat//slash", "combat/unnamed_slash"},
		{"cat/act:ion", "cat/act_ion"},
		{"trailing.../dots...", "trailing/dots"},
		{"UPPER/Case Kept", "UPPER/Case_Kept"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Canonicalize(tt.input); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"locomotion/run_01",
		"combat/atk_heavy",
		"misc/walk_00",
		"a/b_c",
		"UPPER/Case_Kept",
	}

	for _, s := range inputs {
		if got := Canonicalize(s); got != s {
			t.Errorf("Canonicalize(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestParseSlug(t *testing.T) {
	tests := []struct {
		slug string
		want SlugParts
	}{
		{
			slug: "atk_heavy_LR_once_30fps_24f",
			want: SlugParts{Action: "atk", Variant: "heavy", Direction: "LR", Timing: "once", Rule: "full-suffix"},
		},
		{
			slug: "idle_00_4dir_loop_60fps_120f",
			want: SlugParts{Action: "idle", Variant: "00", Direction: "4dir", Timing: "loop", Rule: "full-suffix"},
		},
		{
			slug: "slash_02",
			want: SlugParts{Action: "slash", Variant: "02", Rule: "numbered-variant"},
		},
		{
			slug: "walk_fast_01",
			want: SlugParts{Action: "walk_fast", Variant: "01", Rule: "numbered-variant"},
		},
		{
			slug: "run_fast",
			want: SlugParts{Action: "run", Variant: "fast", Rule: "last-token"},
		},
		{
			slug: "idle",
			want: SlugParts{Action: "idle", Variant: "00", Rule: "fallback"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := ParseSlug(tt.slug); got != tt.want {
				t.Errorf("ParseSlug(%q) = %+v, want %+v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestCandidateKeys(t *testing.T) {
	keys := CandidateKeys("characters/hero", "walk")
	want := []string{"characters/hero::walk", "characters/hero/walk", "walk"}
	if len(keys) != len(want) {
		t.Fatalf("CandidateKeys returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func defaultConfig() model.NamingConfig {
	return model.NamingConfig{
		Enabled:          true,
		DefaultView:      "VIEW_SIDE",
		DefaultCategory:  "locomotion",
		DefaultDirection: "LR",
		DefaultTiming:    "loop",
	}
}

func TestResolver_Defaults(t *testing.T) {
	r := NewResolver(defaultConfig())

	spec := r.Resolve("characters/hero", "idle")

	if spec.CanonicalName != "locomotion/idle_00" {
		t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "locomotion/idle_00")
	}
	if spec.Direction != "LR" || spec.Timing != "loop" || spec.View != "VIEW_SIDE" {
		t.Errorf("defaults not applied: %+v", spec)
	}
}

func TestResolver_FullSuffixSlug(t *testing.T) {
	r := NewResolver(defaultConfig())

	spec := r.Resolve("characters/hero", "combat/atk_heavy_LR_once_30fps_24f")

	if spec.Category != "combat" || spec.Action != "atk" || spec.Variant != "heavy" {
		t.Errorf("unexpected spec: %+v", spec)
	}
	// Direction/timing come from the slug, not the config defaults.
	if spec.Direction != "LR" || spec.Timing != "once" {
		t.Errorf("slug-derived direction/timing lost: %+v", spec)
	}
	if spec.CanonicalName != "combat/atk_heavy" {
		t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "combat/atk_heavy")
	}
}

func TestResolver_DeliveryPrefixStripped(t *testing.T) {
	r := NewResolver(defaultConfig())

	spec := r.Resolve("characters/hero", "sprite/VIEW_TOP/combat/slash_02")

	if spec.Category != "combat" {
		t.Errorf("Category = %q, want %q", spec.Category, "combat")
	}
	if spec.CanonicalName != "combat/slash_02" {
		t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "combat/slash_02")
	}
	if spec.View != "VIEW_TOP" {
		t.Errorf("View = %q, want view from the embedded prefix", spec.View)
	}
}

func TestResolver_ShortPrefixNotStripped(t *testing.T) {
	r := NewResolver(defaultConfig())

	// Only three segments: not a delivery/view prefix, kept as a path.
	spec := r.Resolve("characters/hero", "sprite/VIEW_TOP/slash")

	if spec.Category != "sprite" {
		t.Errorf("Category = %q, want %q (no prefix stripping)", spec.Category, "sprite")
	}
}

func TestResolver_ManifestPrecedence(t *testing.T) {
	cfg := defaultConfig()
	cfg.Manifest = &model.NamingManifest{
		Version: 1,
		Mappings: map[string]model.Mapping{
			"characters/hero::Swing Sword": {
				Canonical: "combat/slash_01",
				Timing:    "once",
			},
			"characters/hero/Old Walk": {Category: "locomotion", Action: "walk", Variant: "01"},
			"Jump":                     {Direction: "8dir"},
		},
	}
	r := NewResolver(cfg)

	t.Run("explicit canonical", func(t *testing.T) {
		spec := r.Resolve("characters/hero", "Swing Sword")
		if spec.CanonicalName != "combat/slash_01" {
			t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "combat/slash_01")
		}
		if spec.Timing != "once" {
			t.Errorf("Timing = %q, want manifest override %q", spec.Timing, "once")
		}
	})

	t.Run("legacy slash key", func(t *testing.T) {
		spec := r.Resolve("characters/hero", "Old Walk")
		if spec.CanonicalName != "locomotion/walk_01" {
			t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "locomotion/walk_01")
		}
	})

	t.Run("bare animation key", func(t *testing.T) {
		spec := r.Resolve("characters/hero", "Jump")
		if spec.Direction != "8dir" {
			t.Errorf("Direction = %q, want bare-key override %q", spec.Direction, "8dir")
		}
		if spec.CanonicalName != "locomotion/Jump_00" {
			t.Errorf("CanonicalName = %q, want %q", spec.CanonicalName, "locomotion/Jump_00")
		}
	})
}

func TestDerivePaths_Preview(t *testing.T) {
	r := NewResolver(defaultConfig())
	spec := r.Resolve("characters/hero", "idle")

	paths := DerivePaths(spec, DeliveryPreview, "mp4", 30, 150)

	wantOutput := "preview/VIEW_SIDE/locomotion/idle_00_LR_loop_30fps_150f.mp4"
	if paths.OutputPath != wantOutput {
		t.Errorf("OutputPath = %q, want %q", paths.OutputPath, wantOutput)
	}
	wantMeta := "metadata/derived/preview/VIEW_SIDE/locomotion/idle_00.json"
	if paths.MetadataPath != wantMeta {
		t.Errorf("MetadataPath = %q, want %q", paths.MetadataPath, wantMeta)
	}
	if paths.BaseName != "idle_00_LR_loop_30fps_150f" {
		t.Errorf("BaseName = %q", paths.BaseName)
	}
}

func TestDerivePaths_SpriteBasePath(t *testing.T) {
	spec := model.ActionSpec{
		CanonicalName: "combat/slash_02",
		Category:      "combat",
		Action:        "slash",
		Variant:       "02",
		Direction:     "4dir",
		Timing:        "once",
		View:          "VIEW_ISO45",
	}

	paths := DerivePaths(spec, DeliverySprite, "", 60, 48)

	wantOutput := "sprite/VIEW_ISO45/combat/slash_02_4dir_once_60fps_48f"
	if paths.OutputPath != wantOutput {
		t.Errorf("OutputPath = %q, want %q", paths.OutputPath, wantOutput)
	}
	wantMeta := "metadata/derived/sprite/VIEW_ISO45/combat/slash_02.json"
	if paths.MetadataPath != wantMeta {
		t.Errorf("MetadataPath = %q, want %q", paths.MetadataPath, wantMeta)
	}
}

func TestDerivePaths_SanitizesHostileSegments(t *testing.T) {
	spec := model.ActionSpec{
		Category:  "com:bat",
		Action:    "sla/sh",
		Variant:   "0 1",
		Direction: "LR",
		Timing:    "loop",
		View:      "VIEW_SIDE",
	}

	paths := DerivePaths(spec, DeliveryPreview, "mp4", 30, 10)

	wantOutput := "preview/VIEW_SIDE/com_bat/sla_sh_0_1_LR_loop_30fps_10f.mp4"
	if paths.OutputPath != wantOutput {
		t.Errorf("OutputPath = %q, want %q", paths.OutputPath, wantOutput)
	}
}
