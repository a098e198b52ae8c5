package atlas

import "image"

// TrimmedFrame is one input frame together with its trim rectangle: the
// tight bounding box of non-transparent pixels within the source image.
// The original frame index is carried through packing so playback order is
// always recoverable from the emitted index.
type TrimmedFrame struct {
	// Index is the frame's position in the original sequence.
	Index int

	// Image is the full source frame.
	Image image.Image

	// Rect is the trim rectangle in the source image's coordinates.
	Rect image.Rectangle

	// Trimmed reports whether Rect is smaller than the full frame bounds.
	Trimmed bool
}

// trimFrame computes the tight bounding box of pixels with non-zero alpha.
// When trimming is disabled the full frame rectangle is used. A fully
// transparent frame degenerates to a 1×1 box so it still occupies a slot
// on the page.
func trimFrame(index int, img image.Image, trim bool) TrimmedFrame {
	bounds := img.Bounds()
	if !trim {
		return TrimmedFrame{Index: index, Image: img, Rect: bounds}
	}

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !opaqueAt(img, x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		// Fully transparent frame.
		rect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+1, bounds.Min.Y+1)
		return TrimmedFrame{Index: index, Image: img, Rect: rect, Trimmed: true}
	}

	rect := image.Rect(minX, minY, maxX+1, maxY+1)
	return TrimmedFrame{
		Index:   index,
		Image:   img,
		Rect:    rect,
		Trimmed: rect != bounds,
	}
}

// opaqueAt reports whether the pixel at (x, y) has non-zero alpha, with
// fast paths for the common raster formats so trimming large frame
// sequences does not go through the color interface per pixel.
func opaqueAt(img image.Image, x, y int) bool {
	switch im := img.(type) {
	case *image.RGBA:
		return im.Pix[im.PixOffset(x, y)+3] != 0
	case *image.NRGBA:
		return im.Pix[im.PixOffset(x, y)+3] != 0
	default:
		_, _, _, a := img.At(x, y).RGBA()
		return a != 0
	}
}
