package atlas

import "fmt"

// Rect is a rectangle in page or source coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Size is a width/height pair.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// FrameEntry describes one packed frame in the texture-packer-compatible
// shape: Frame is the rectangle on the page, SpriteSourceSize repositions
// the trimmed sprite within its original full-frame bounds, and SourceSize
// is the full frame size.
type FrameEntry struct {
	Frame            Rect `json:"frame"`
	Rotated          bool `json:"rotated"`
	Trimmed          bool `json:"trimmed"`
	SpriteSourceSize Rect `json:"spriteSourceSize"`
	SourceSize       Size `json:"sourceSize"`
}

// IndexMeta describes the page the frames live on.
type IndexMeta struct {
	Image  string `json:"image"`
	Format string `json:"format"`
	Size   Size   `json:"size"`
	Scale  string `json:"scale"`
}

// IndexDoc is the frame-index sidecar document emitted next to every page
// image. Keys are "<baseName>_<zero-padded original frame index>", so a
// consumer can recover playback order regardless of pack order.
type IndexDoc struct {
	Frames map[string]FrameEntry `json:"frames"`
	Meta   IndexMeta             `json:"meta"`
}

// FrameKey builds the index key for one original frame index.
func FrameKey(baseName string, index int) string {
	return fmt.Sprintf("%s_%05d", baseName, index)
}

func buildIndex(placements []Placed, baseName, imageName string, width, height int) IndexDoc {
	frames := make(map[string]FrameEntry, len(placements))
	for _, p := range placements {
		src := p.Image.Bounds()
		frames[FrameKey(baseName, p.Index)] = FrameEntry{
			Frame: Rect{
				X: p.X,
				Y: p.Y,
				W: p.Rect.Dx(),
				H: p.Rect.Dy(),
			},
			Trimmed: p.Trimmed,
			SpriteSourceSize: Rect{
				X: p.Rect.Min.X - src.Min.X,
				Y: p.Rect.Min.Y - src.Min.Y,
				W: p.Rect.Dx(),
				H: p.Rect.Dy(),
			},
			SourceSize: Size{W: src.Dx(), H: src.Dy()},
		}
	}
	return IndexDoc{
		Frames: frames,
		Meta: IndexMeta{
			Image:  imageName,
			Format: "RGBA8888",
			Size:   Size{W: width, H: height},
			Scale:  "1",
		},
	}
}
