package model

// OutputFormat selects the deliverable kind produced by one export run.
type OutputFormat string

const (
	// FormatVideo produces one single-file video per animation (a
	// "preview" delivery).
	FormatVideo OutputFormat = "video"

	// FormatFrames produces an ordered frame sequence per animation (a
	// "sprite" delivery).
	FormatFrames OutputFormat = "frames"
)

// SpriteMode selects how frame-sequence output is packaged.
type SpriteMode string

const (
	// SpriteSequence keeps individual numbered frame files.
	SpriteSequence SpriteMode = "sequence"

	// SpriteAtlas bin-packs the frames into fixed-size texture pages.
	SpriteAtlas SpriteMode = "atlas"
)

// AtlasOptions configures the sprite atlas packer.
type AtlasOptions struct {
	// MaxPageSize is the width/height limit of one texture page in pixels.
	MaxPageSize int `json:"max_page_size"`

	// Padding is the margin in pixels kept around every placed frame.
	Padding int `json:"padding"`

	// Trim enables tight-bounding-box trimming of transparent borders.
	Trim bool `json:"trim"`
}

// ExportConfig holds every parameter of one batch export run.
//
// The config is immutable for the duration of the run: the executor and
// both pure engines only read it.
type ExportConfig struct {
	// Width and Height are the render resolution in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// FPS is the render frame rate.
	FPS int `json:"fps"`

	// Duration is the per-animation render length in seconds. Zero means
	// the animation's own duration.
	Duration float64 `json:"duration"`

	// Background is the canvas background (CSS-style color string, empty
	// means transparent).
	Background string `json:"background"`

	// Format chooses video or frame-sequence output.
	Format OutputFormat `json:"format"`

	// VideoExt is the container extension for video output ("mp4", "webm").
	VideoExt string `json:"video_ext"`

	// SpriteMode chooses sequence or atlas packaging for frame output.
	SpriteMode SpriteMode `json:"sprite_mode"`

	// Atlas holds packer options, used when SpriteMode is SpriteAtlas.
	Atlas AtlasOptions `json:"atlas"`

	// Naming configures canonical naming. When disabled the archive falls
	// back to the flat legacy layout.
	Naming NamingConfig `json:"naming"`
}

// Delivery kinds of the archive layout.
const (
	DeliverySprite  = "sprite"
	DeliveryPreview = "preview"
)

// Delivery returns the delivery kind for this config's output format:
// DeliverySprite for frame sequences, DeliveryPreview for single-file
// video.
func (c *ExportConfig) Delivery() string {
	if c.Format == FormatFrames {
		return DeliverySprite
	}
	return DeliveryPreview
}

// OutputExt returns the file extension (without dot) of a single-file
// deliverable under this config.
func (c *ExportConfig) OutputExt() string {
	if c.VideoExt != "" {
		return c.VideoExt
	}
	return "mp4"
}
