// Package model defines the core data structures shared across the
// animbatch export pipeline.
//
// # AnimationAsset
//
// AnimationAsset represents one skeletal-animation asset selected for
// export, with an asset-granular status that only ever moves forward:
//
//	idle -> waiting -> exporting -> {completed|failed}
//
// # ExportConfig
//
// ExportConfig carries every parameter of one batch run (resolution, frame
// rate, output format, sprite packaging mode, atlas options) plus the
// embedded NamingConfig. It is immutable for the duration of a run.
//
// # Naming types
//
// NamingConfig, NamingManifest and Mapping describe the canonical-naming
// inputs; ActionSpec and DerivedPaths are the ephemeral outputs of the
// canonicalization engine in package naming:
//
//	spec := resolver.Resolve(asset.AssetKey, "atk_heavy_LR_once_30fps_24f")
//	fmt.Println(spec.CanonicalName) // "misc/atk_heavy"
package model
