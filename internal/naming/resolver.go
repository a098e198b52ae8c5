package naming

import (
	"strings"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// Recognized delivery prefixes and views for names that embed their own
// delivery/view path (e.g. "sprite/VIEW_SIDE/combat/slash_01").
var (
	deliveryPrefixes = map[string]bool{
		"sprite":  true,
		"spine":   true,
		"preview": true,
		"pose":    true,
	}

	knownViews = map[string]bool{
		"VIEW_SIDE":  true,
		"VIEW_TOP":   true,
		"VIEW_ISO45": true,
	}
)

// CandidateKeys returns the ordered manifest lookup keys for one
// asset/animation pair: the current "::" form, the legacy "/" form, then
// the bare animation name.
func CandidateKeys(assetKey, animationName string) []string {
	if assetKey == "" {
		return []string{animationName}
	}
	return []string{
		assetKey + "::" + animationName,
		assetKey + "/" + animationName,
		animationName,
	}
}

// Resolver maps raw animation names to stable ActionSpecs using one
// NamingConfig. A Resolver is pure and safe for concurrent use.
type Resolver struct {
	cfg model.NamingConfig
}

// NewResolver creates a Resolver for the given naming configuration.
func NewResolver(cfg model.NamingConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve computes the ActionSpec for one animation.
//
// Precedence for the name itself:
//
//  1. An explicit manifest mapping for the asset/animation pair.
//  2. A delivery/view prefix embedded in the animation name, which is
//     stripped; the remainder is treated as "category/action...".
//  3. The raw name as-is, when it already contains a slash.
//  4. "<defaultCategory>/<rawName>" otherwise.
//
// Direction, timing and view each resolve manifest value first, then any
// value encoded in the name, then the config defaults.
func (r *Resolver) Resolve(assetKey, rawName string) model.ActionSpec {
	mapping, hasMapping := r.cfg.Manifest.Lookup(CandidateKeys(assetKey, rawName)...)

	name := rawName
	prefixView := ""
	if hasMapping && mapping.Canonical != "" {
		name = mapping.Canonical
	} else if stripped, view, ok := stripDeliveryPrefix(rawName); ok {
		name = stripped
		prefixView = view
	}

	canonical := CanonicalizeWithCategory(name, r.defaultCategory())
	category, slug, _ := strings.Cut(canonical, "/")

	spec := model.ActionSpec{Category: category}
	if hasMapping && mapping.Category != "" {
		spec.Category = SanitizeSegment(mapping.Category)
	}

	var parsed SlugParts
	if hasMapping && mapping.Action != "" && mapping.Variant != "" {
		spec.Action = SanitizeSegment(mapping.Action)
		spec.Variant = SanitizeSegment(mapping.Variant)
	} else {
		parsed = ParseSlug(slug)
		spec.Action = parsed.Action
		spec.Variant = parsed.Variant
		if hasMapping && mapping.Action != "" {
			spec.Action = SanitizeSegment(mapping.Action)
		}
		if hasMapping && mapping.Variant != "" {
			spec.Variant = SanitizeSegment(mapping.Variant)
		}
	}

	spec.Direction = firstNonEmpty(mapping.Direction, parsed.Direction, r.cfg.DefaultDirection, "none")
	spec.Timing = firstNonEmpty(mapping.Timing, parsed.Timing, r.cfg.DefaultTiming, "loop")
	spec.View = firstNonEmpty(mapping.View, prefixView, r.cfg.DefaultView, "VIEW_SIDE")
	spec.CanonicalName = spec.Category + "/" + spec.Action + "_" + spec.Variant
	return spec
}

func (r *Resolver) defaultCategory() string {
	if r.cfg.DefaultCategory != "" {
		return r.cfg.DefaultCategory
	}
	return FallbackCategory
}

// stripDeliveryPrefix detects an embedded "delivery/view/category/..." path
// in an animation name. The pattern requires at least four slash-separated
// segments with a recognized delivery and view; the delivery and view
// segments are stripped and the view is reported so it can feed the
// resolved ActionSpec.
func stripDeliveryPrefix(rawName string) (remainder, view string, ok bool) {
	s := strings.Trim(strings.TrimSpace(rawName), "/")
	parts := strings.Split(s, "/")
	if len(parts) < 4 {
		return "", "", false
	}
	if !deliveryPrefixes[parts[0]] || !knownViews[parts[1]] {
		return "", "", false
	}
	return strings.Join(parts[2:], "/"), parts[1], true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
