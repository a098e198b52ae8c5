package naming

import "strings"

// FallbackCategory is assigned to animation names that carry no category
// of their own and have no configured default.
const FallbackCategory = "misc"

// Canonicalize normalizes a raw animation name into the stable
// "category/action..." shape.
//
// The name is trimmed, stripped of surrounding slashes and split on "/";
// every segment is sanitized independently. Zero segments yield
// "misc/unnamed", a single segment is filed under "misc", and when there
// are more than two segments the extras are merged into the action token
// with underscores rather than dropped:
//
//	Canonicalize("locomotion/Run 01") // "locomotion/Run_01"
//	Canonicalize("walk")              // "misc/walk"
//	Canonicalize("a/b/c")             // "a/b_c"
//
// Canonicalize is idempotent: feeding an already-canonical string back in
// reproduces it unchanged.
func Canonicalize(raw string) string {
	return CanonicalizeWithCategory(raw, FallbackCategory)
}

// CanonicalizeWithCategory is Canonicalize with a configurable category
// for names that have none. An empty defaultCategory falls back to "misc".
func CanonicalizeWithCategory(raw, defaultCategory string) string {
	if defaultCategory == "" {
		defaultCategory = FallbackCategory
	}
	segments := splitName(raw)
	switch len(segments) {
	case 0:
		return SanitizeSegment(defaultCategory) + "/unnamed"
	case 1:
		return SanitizeSegment(defaultCategory) + "/" + segments[0]
	default:
		return segments[0] + "/" + strings.Join(segments[1:], "_")
	}
}
