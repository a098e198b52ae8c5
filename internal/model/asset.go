package model

import "fmt"

// AssetStatus is the lifecycle state of an animation asset within one
// batch export run.
//
// Valid transitions are strictly forward:
//
//	idle -> waiting -> exporting -> completed
//	idle -> waiting -> exporting -> failed
//	idle -> waiting -> failed          (scan failure, asset never exports)
//
// Status is asset-granular, not animation-granular: an asset with ten
// animations has one status, and once completed or failed is reached the
// status is final for that run.
type AssetStatus string

const (
	StatusIdle      AssetStatus = "idle"
	StatusWaiting   AssetStatus = "waiting"
	StatusExporting AssetStatus = "exporting"
	StatusCompleted AssetStatus = "completed"
	StatusFailed    AssetStatus = "failed"
)

// CanTransition reports whether moving from s to next is a legal status
// transition. The zero value behaves as StatusIdle.
func (s AssetStatus) CanTransition(next AssetStatus) bool {
	switch s {
	case StatusIdle, "":
		return next == StatusWaiting
	case StatusWaiting:
		return next == StatusExporting || next == StatusFailed
	case StatusExporting:
		return next == StatusCompleted || next == StatusFailed
	default:
		// completed and failed are terminal.
		return false
	}
}

// Terminal reports whether the status is final for the current batch run.
func (s AssetStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// AnimationAsset represents one imported skeletal-animation asset selected
// for export.
//
// The asset is owned by the caller (typically the import/preview layer).
// The export pipeline reads ID, Name, AssetKey and Animations, and writes
// Status through the executor's status callback path; it never mutates the
// identity fields.
//
// AssetKey is a stable base path (for example "characters/hero") used as
// the lookup prefix into a naming manifest; see naming.Resolver.
type AnimationAsset struct {
	// ID uniquely identifies the asset within the caller's session.
	ID string

	// Name is the display name, also used in legacy archive entry names.
	Name string

	// AssetKey is the manifest lookup prefix for this asset.
	AssetKey string

	// Animations lists the raw animation names discovered by the render
	// engine's scan. May be empty until the scan phase has run.
	Animations []string

	// Status is the asset's state within the current batch run.
	Status AssetStatus
}

// Label returns a short human-readable identifier for progress messages.
func (a *AnimationAsset) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// String implements fmt.Stringer for log output.
func (a *AnimationAsset) String() string {
	return fmt.Sprintf("%s (%d animations, %s)", a.Label(), len(a.Animations), a.Status)
}
