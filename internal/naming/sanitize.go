package naming

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in file/folder names across platforms:
	// < > : " / \ | ? * and control characters (0x00-0x1f).
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

	whitespace   = regexp.MustCompile(`\s+`)
	leadingDots  = regexp.MustCompile(`^\.+`)
	trailingDots = regexp.MustCompile(`\.+$`)
)

// SanitizeSegment makes one path segment safe for any filesystem.
//
// Invalid characters and whitespace runs become underscores, leading and
// trailing dots are stripped (Windows rejects them), and an empty result
// degrades to "unnamed" so derived paths never contain empty segments.
// Letter case is preserved.
func SanitizeSegment(segment string) string {
	s := strings.TrimSpace(segment)
	s = invalidChars.ReplaceAllString(s, "_")
	s = whitespace.ReplaceAllString(s, "_")
	s = leadingDots.ReplaceAllString(s, "")
	s = trailingDots.ReplaceAllString(s, "")
	if s == "" {
		return "unnamed"
	}
	return s
}

// splitName trims a raw animation name, strips leading/trailing slashes and
// splits it into sanitized segments. A blank name yields no segments.
func splitName(raw string) []string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "/")
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = SanitizeSegment(p)
	}
	return segments
}
