package naming

import "regexp"

// SlugParts is the outcome of parsing the final segment of a canonical
// name. Action and Variant are always set; Direction and Timing are only
// set when the slug itself encodes them (the full suffix pattern).
type SlugParts struct {
	Action    string
	Variant   string
	Direction string
	Timing    string

	// Rule names the matcher that produced this result, for debugging.
	Rule string
}

// slugRule pairs a matcher with its extractor. Rules are evaluated in
// priority order; the first match wins.
type slugRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) SlugParts
}

var slugRules = []slugRule{
	{
		// Full suffix pattern: action_variant_<dir>_<timing>_<N>fps_<M>f.
		// Direction and timing are re-derived from the slug itself, so an
		// already-derived base name round-trips through parsing.
		name:    "full-suffix",
		pattern: regexp.MustCompile(`^(.+?)_(.+?)_(LR|4dir|8dir|none)_(loop|once)_(\d+)fps_(\d+)f$`),
		extract: func(m []string) SlugParts {
			return SlugParts{Action: m[1], Variant: m[2], Direction: m[3], Timing: m[4]}
		},
	},
	{
		// Numbered variant: two or more trailing digits ("slash_02").
		name:    "numbered-variant",
		pattern: regexp.MustCompile(`^(.+)_(\d{2,})$`),
		extract: func(m []string) SlugParts {
			return SlugParts{Action: m[1], Variant: m[2]}
		},
	},
	{
		// Generic: last underscore token is the variant.
		name:    "last-token",
		pattern: regexp.MustCompile(`^(.+)_([^_]+)$`),
		extract: func(m []string) SlugParts {
			return SlugParts{Action: m[1], Variant: m[2]}
		},
	},
}

// ParseSlug resolves the action/variant (and, for fully-suffixed slugs,
// direction/timing) of a canonical name's final segment.
//
//	ParseSlug("atk_heavy_LR_once_30fps_24f")
//	// SlugParts{Action:"atk", Variant:"heavy", Direction:"LR", Timing:"once"}
//
// A slug with no underscore structure falls back to the whole slug as the
// action with variant "00".
func ParseSlug(slug string) SlugParts {
	for _, rule := range slugRules {
		if m := rule.pattern.FindStringSubmatch(slug); m != nil {
			parts := rule.extract(m)
			parts.Rule = rule.name
			return parts
		}
	}
	return SlugParts{Action: slug, Variant: "00", Rule: "fallback"}
}
