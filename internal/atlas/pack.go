package atlas

import (
	"image"
	"sort"
)

// Options configures one atlas pack invocation.
type Options struct {
	// MaxPageSize is the width/height limit of one page in pixels.
	MaxPageSize int

	// Padding is the margin in pixels kept around every placed frame.
	Padding int

	// Trim enables transparent-border trimming before placement.
	Trim bool
}

// Placed is one frame assigned a position on a page.
type Placed struct {
	TrimmedFrame

	// X, Y is the frame's top-left corner on the page.
	X, Y int
}

// Page is one emitted texture page: the encoded image, its frame index
// document and the placements that produced it.
type Page struct {
	// ImageName and IndexName are the archive entry names for the page
	// image and its sidecar document.
	ImageName string
	IndexName string

	// PNG is the encoded page image.
	PNG []byte

	// Index is the texture-packer-compatible frame index.
	Index IndexDoc

	// Width and Height are the page's actual used extent.
	Width, Height int

	placements []Placed
}

// Pack bin-packs an ordered frame sequence into one or more texture pages.
//
// Frames are trimmed (unless disabled), sorted by trimmed height
// descending (stable, so equal-height frames keep sequence order) and
// placed greedily on shelves. When a frame would overflow the page width
// the cursor wraps to a new shelf; when it would also overflow the page
// height the current page is flushed and a new one started. Every input
// frame appears on exactly one page and no two placed rectangles overlap,
// padding included.
//
// Page canvases are sized to the actual used extent rather than rounded up
// to a power of two, trading GPU-friendliness for lower memory pressure.
//
// A single frame that cannot fit any page returns *PackingOverflowError;
// a page image that cannot be encoded even through the fallback path
// returns *EncodeExhaustedError.
func Pack(frames []image.Image, baseName string, opts Options) ([]Page, error) {
	if len(frames) == 0 {
		return nil, nil
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 2048
	}

	trimmed := make([]TrimmedFrame, len(frames))
	for i, img := range frames {
		trimmed[i] = trimFrame(i, img, opts.Trim)
	}

	sort.SliceStable(trimmed, func(a, b int) bool {
		return trimmed[a].Rect.Dy() > trimmed[b].Rect.Dy()
	})

	placements, err := placeShelves(trimmed, opts)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, len(placements))
	multi := len(placements) > 1
	for i, placed := range placements {
		page, err := renderPage(placed, baseName, i, multi)
		if err != nil {
			return nil, err
		}
		pages[i] = page
	}
	return pages, nil
}

// placeShelves runs the greedy shelf placement, returning one placement
// list per page.
func placeShelves(frames []TrimmedFrame, opts Options) ([][]Placed, error) {
	maxSize := opts.MaxPageSize
	pad := opts.Padding

	var pages [][]Placed
	var current []Placed
	cursorX, cursorY, shelfH := 0, 0, 0

	for _, f := range frames {
		w, h := f.Rect.Dx(), f.Rect.Dy()
		if w+pad > maxSize || h+pad > maxSize {
			return nil, &PackingOverflowError{
				FrameIndex: f.Index,
				Width:      w,
				Height:     h,
				MaxSize:    maxSize,
				Padding:    pad,
			}
		}

		if cursorX+w > maxSize {
			// Wrap to a new shelf.
			cursorY += shelfH + pad
			cursorX = 0
			shelfH = 0
		}
		if cursorY+h > maxSize {
			// Flush the page and start an empty one.
			pages = append(pages, current)
			current = nil
			cursorX, cursorY, shelfH = 0, 0, 0
		}

		current = append(current, Placed{TrimmedFrame: f, X: cursorX, Y: cursorY})
		cursorX += w + pad
		if h > shelfH {
			shelfH = h
		}
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages, nil
}
