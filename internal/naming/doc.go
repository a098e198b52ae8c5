// Package naming implements the action-canonicalization engine: the
// deterministic mapping from arbitrary, inconsistently-named animations to
// a stable "category/action_variant" identifier and a matching archive
// layout.
//
// # Canonicalization
//
// Canonicalize normalizes any raw animation name:
//
//	naming.Canonicalize("locomotion/Run 01") // "locomotion/Run_01"
//	naming.Canonicalize("walk")              // "misc/walk"
//	naming.Canonicalize("a/b/c")             // "a/b_c"
//
// Canonicalization is idempotent: an already-canonical string maps to
// itself.
//
// # Resolution
//
// Resolver applies the full precedence chain (manifest mapping, embedded
// delivery/view prefix, raw slash path, default category) and parses the
// final segment through an ordered list of slug rules (full suffix
// pattern, numbered variant, last token, fallback):
//
//	r := naming.NewResolver(cfg)
//	spec := r.Resolve("characters/hero", "atk_heavy_LR_once_30fps_24f")
//	// spec.Action == "atk", spec.Variant == "heavy"
//
// # Derived paths
//
// DerivePaths turns a resolved ActionSpec into the archive layout for one
// task: output path (file for preview video, base path for sprite frame
// sequences) plus the metadata sidecar path.
//
// Everything in this package is pure and safe for concurrent use.
package naming
