package naming

import (
	"fmt"
	"strings"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// Delivery kinds recognized by the derived-path builder.
const (
	DeliverySprite  = model.DeliverySprite
	DeliveryPreview = model.DeliveryPreview
)

// DerivePaths builds the archive layout for one resolved animation.
//
// The base name encodes the full render identity:
//
//	<action>_<variant>_<direction>_<timing>_<fps>fps_<frames>f
//
// Sprite deliveries produce a base output path ("sprite/<view>/<category>/
// <baseName>") that the caller extends with per-frame numbering or atlas
// page suffixes; preview deliveries produce a complete single-file path
// ("preview/<view>/<category>/<baseName>.<ext>"). Both get a metadata
// sidecar at "metadata/derived/<delivery>/<view>/<canonicalName>.json".
// Every segment is re-sanitized independently so a hostile manifest value
// can never escape the archive root.
func DerivePaths(spec model.ActionSpec, delivery, ext string, fps, frames int) model.DerivedPaths {
	baseName := fmt.Sprintf("%s_%s_%s_%s_%dfps_%df",
		SanitizeSegment(spec.Action),
		SanitizeSegment(spec.Variant),
		SanitizeSegment(spec.Direction),
		SanitizeSegment(spec.Timing),
		fps, frames)

	view := SanitizeSegment(spec.View)
	category := SanitizeSegment(spec.Category)
	canonical := category + "/" + SanitizeSegment(spec.Action) + "_" + SanitizeSegment(spec.Variant)

	outputPath := joinSegments(delivery, view, category, baseName)
	if delivery == DeliveryPreview {
		outputPath += "." + strings.TrimPrefix(ext, ".")
	}

	return model.DerivedPaths{
		Delivery:      delivery,
		View:          view,
		Category:      category,
		CanonicalName: canonical,
		BaseName:      baseName,
		OutputPath:    outputPath,
		MetadataPath:  joinSegments("metadata", "derived", delivery, view, canonical) + ".json",
	}
}

// joinSegments joins pre-sanitized path segments with forward slashes.
// Segments that themselves contain slashes (the canonical name) are kept
// as-is; their parts were sanitized when the name was built.
func joinSegments(segments ...string) string {
	return strings.Join(segments, "/")
}
