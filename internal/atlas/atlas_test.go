package atlas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// solidFrame returns a fully opaque frame of the given size.
func solidFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// paddedFrame returns a w×h frame with an opaque inner rectangle and
// transparent borders.
func paddedFrame(w, h int, inner image.Rectangle) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	return img
}

func TestTrimFrame(t *testing.T) {
	t.Run("opaque content", func(t *testing.T) {
		inner := image.Rect(10, 20, 40, 50)
		f := trimFrame(0, paddedFrame(100, 100, inner), true)
		if f.Rect != inner {
			t.Errorf("trim rect = %v, want %v", f.Rect, inner)
		}
		if !f.Trimmed {
			t.Error("Trimmed = false, want true")
		}
	})

	t.Run("fully transparent degenerates to 1x1", func(t *testing.T) {
		f := trimFrame(0, image.NewRGBA(image.Rect(0, 0, 64, 64)), true)
		if f.Rect.Dx() != 1 || f.Rect.Dy() != 1 {
			t.Errorf("trim rect = %v, want 1x1", f.Rect)
		}
	})

	t.Run("trim disabled keeps full bounds", func(t *testing.T) {
		f := trimFrame(0, paddedFrame(100, 100, image.Rect(10, 10, 20, 20)), false)
		if f.Rect != image.Rect(0, 0, 100, 100) {
			t.Errorf("trim rect = %v, want full bounds", f.Rect)
		}
		if f.Trimmed {
			t.Error("Trimmed = true, want false when trimming is disabled")
		}
	})
}

func TestPack_SinglePage(t *testing.T) {
	frames := []image.Image{solidFrame(100, 100), solidFrame(100, 100), solidFrame(100, 100)}

	pages, err := Pack(frames, "walk_00_LR_loop_30fps_3f", Options{
		MaxPageSize: 256,
		Padding:     2,
		Trim:        false,
	})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}

	page := pages[0]
	if page.ImageName != "walk_00_LR_loop_30fps_3f.png" {
		t.Errorf("ImageName = %q", page.ImageName)
	}
	if len(page.Index.Frames) != 3 {
		t.Fatalf("index has %d frames, want 3", len(page.Index.Frames))
	}

	// All placements inside the page, no overlap even with padding.
	entries := make([]FrameEntry, 0, 3)
	for i := 0; i < 3; i++ {
		entry, ok := page.Index.Frames[FrameKey("walk_00_LR_loop_30fps_3f", i)]
		if !ok {
			t.Fatalf("index missing frame %d", i)
		}
		if entry.Frame.X < 0 || entry.Frame.Y < 0 ||
			entry.Frame.X+entry.Frame.W > page.Width ||
			entry.Frame.Y+entry.Frame.H > page.Height {
			t.Errorf("frame %d placed outside page: %+v", i, entry.Frame)
		}
		entries = append(entries, entry)
	}
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			a := inflate(entries[i].Frame, 2)
			b := entries[j].Frame
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Errorf("frames %d and %d overlap (padding included)", i, j)
			}
		}
	}

	// Page image decodes to the reported extent.
	img, err := png.Decode(bytes.NewReader(page.PNG))
	if err != nil {
		t.Fatalf("decoding page image: %v", err)
	}
	if img.Bounds().Dx() != page.Width || img.Bounds().Dy() != page.Height {
		t.Errorf("page image %v, want %dx%d", img.Bounds(), page.Width, page.Height)
	}
}

func inflate(r Rect, pad int) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W + pad, H: r.H + pad}
}

func TestPack_MultiPage(t *testing.T) {
	// Four 100x100 frames never fit one 128-wide page together.
	frames := []image.Image{
		solidFrame(100, 100), solidFrame(100, 100),
		solidFrame(100, 100), solidFrame(100, 100),
	}

	pages, err := Pack(frames, "run_00", Options{MaxPageSize: 128, Padding: 0, Trim: false})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 4 {
		t.Fatalf("got %d pages, want 4", len(pages))
	}

	if pages[0].ImageName != "run_00_p0.png" || pages[1].ImageName != "run_00_p1.png" {
		t.Errorf("multi-page names not suffixed: %q, %q", pages[0].ImageName, pages[1].ImageName)
	}

	// Every input frame appears exactly once across pages.
	seen := map[string]int{}
	for _, p := range pages {
		for key := range p.Index.Frames {
			seen[key]++
		}
	}
	if len(seen) != 4 {
		t.Errorf("index covers %d frames, want 4", len(seen))
	}
	for key, n := range seen {
		if n != 1 {
			t.Errorf("frame %s appears %d times", key, n)
		}
	}
}

func TestPack_Overflow(t *testing.T) {
	frames := []image.Image{solidFrame(300, 300)}

	_, err := Pack(frames, "big", Options{MaxPageSize: 256, Padding: 2, Trim: false})

	var overflow *PackingOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("err = %v, want *PackingOverflowError", err)
	}
	if overflow.FrameIndex != 0 || overflow.MaxSize != 256 {
		t.Errorf("unexpected overflow details: %+v", overflow)
	}
}

func TestPack_TrimRecordsSourceOffset(t *testing.T) {
	inner := image.Rect(30, 40, 60, 80)
	frames := []image.Image{paddedFrame(128, 128, inner)}

	pages, err := Pack(frames, "jump_00", Options{MaxPageSize: 256, Padding: 2, Trim: true})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	entry := pages[0].Index.Frames[FrameKey("jump_00", 0)]
	if !entry.Trimmed {
		t.Error("Trimmed = false, want true")
	}
	if entry.SpriteSourceSize.X != 30 || entry.SpriteSourceSize.Y != 40 {
		t.Errorf("spriteSourceSize offset = (%d,%d), want (30,40)",
			entry.SpriteSourceSize.X, entry.SpriteSourceSize.Y)
	}
	if entry.SourceSize.W != 128 || entry.SourceSize.H != 128 {
		t.Errorf("sourceSize = %+v, want 128x128", entry.SourceSize)
	}
	if entry.Frame.W != inner.Dx() || entry.Frame.H != inner.Dy() {
		t.Errorf("frame size = %dx%d, want %dx%d", entry.Frame.W, entry.Frame.H, inner.Dx(), inner.Dy())
	}
}

func TestPack_HeightSortedStable(t *testing.T) {
	// Taller frames place first; equal heights keep sequence order.
	frames := []image.Image{solidFrame(10, 20), solidFrame(10, 50), solidFrame(12, 50)}

	pages, err := Pack(frames, "mix", Options{MaxPageSize: 256, Padding: 0, Trim: false})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	idx := pages[0].Index.Frames
	f1 := idx[FrameKey("mix", 1)]
	f2 := idx[FrameKey("mix", 2)]
	f0 := idx[FrameKey("mix", 0)]
	if f1.Frame.X != 0 {
		t.Errorf("frame 1 (tall, first in sequence) at x=%d, want 0", f1.Frame.X)
	}
	if f2.Frame.X != 10 {
		t.Errorf("frame 2 (tall, second) at x=%d, want 10", f2.Frame.X)
	}
	if f0.Frame.X != 22 {
		t.Errorf("frame 0 (short) at x=%d, want 22", f0.Frame.X)
	}
}

func TestPack_Empty(t *testing.T) {
	pages, err := Pack(nil, "none", Options{MaxPageSize: 256})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if pages != nil {
		t.Errorf("got %d pages, want none", len(pages))
	}
}
