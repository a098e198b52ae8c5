package model

import "testing"

func TestAssetStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from AssetStatus
		to   AssetStatus
		want bool
	}{
		{StatusIdle, StatusWaiting, true},
		{StatusIdle, StatusExporting, false},
		{StatusIdle, StatusCompleted, false},
		{"", StatusWaiting, true}, // zero value behaves as idle
		{"", StatusFailed, false},
		{StatusWaiting, StatusExporting, true},
		{StatusWaiting, StatusFailed, true},
		{StatusWaiting, StatusCompleted, false},
		{StatusWaiting, StatusIdle, false},
		{StatusExporting, StatusCompleted, true},
		{StatusExporting, StatusFailed, true},
		{StatusExporting, StatusWaiting, false},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusWaiting, false},
		{StatusFailed, StatusCompleted, false},
		{StatusFailed, StatusExporting, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAssetStatus_Terminal(t *testing.T) {
	terminal := map[AssetStatus]bool{
		StatusIdle:      false,
		StatusWaiting:   false,
		StatusExporting: false,
		StatusCompleted: true,
		StatusFailed:    true,
	}
	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestExportConfig_Delivery(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatFrames, DeliverySprite},
		{FormatVideo, DeliveryPreview},
		{"", DeliveryPreview},
	}
	for _, tt := range tests {
		cfg := &ExportConfig{Format: tt.format}
		if got := cfg.Delivery(); got != tt.want {
			t.Errorf("Delivery() with format %q = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestExportConfig_OutputExt(t *testing.T) {
	tests := []struct {
		videoExt string
		want     string
	}{
		{"webm", "webm"},
		{"mp4", "mp4"},
		{"", "mp4"},
	}
	for _, tt := range tests {
		cfg := &ExportConfig{VideoExt: tt.videoExt}
		if got := cfg.OutputExt(); got != tt.want {
			t.Errorf("OutputExt() with %q = %q, want %q", tt.videoExt, got, tt.want)
		}
	}
}

func TestAnimationAsset_Label(t *testing.T) {
	named := &AnimationAsset{ID: "a1", Name: "Hero"}
	if named.Label() != "Hero" {
		t.Errorf("Label() = %q, want Hero", named.Label())
	}
	unnamed := &AnimationAsset{ID: "a2"}
	if unnamed.Label() != "a2" {
		t.Errorf("Label() = %q, want a2", unnamed.Label())
	}
}

func TestNamingManifest_Lookup(t *testing.T) {
	manifest := &NamingManifest{
		Version: 1,
		Mappings: map[string]Mapping{
			"hero::slash": {Canonical: "combat/slash_01"},
			"hero/slash":  {Canonical: "combat/slash_legacy"},
			"slash":       {Canonical: "combat/slash_bare"},
		},
	}

	if m, ok := manifest.Lookup("hero::slash", "hero/slash", "slash"); !ok || m.Canonical != "combat/slash_01" {
		t.Errorf("Lookup chain = %+v, %v; want scoped mapping", m, ok)
	}
	if m, ok := manifest.Lookup("other::slash", "hero/slash", "slash"); !ok || m.Canonical != "combat/slash_legacy" {
		t.Errorf("legacy fallback = %+v, %v", m, ok)
	}
	if _, ok := manifest.Lookup("nothing"); ok {
		t.Error("Lookup of unknown key should miss")
	}

	var nilManifest *NamingManifest
	if _, ok := nilManifest.Lookup("slash"); ok {
		t.Error("nil manifest should never match")
	}
}
