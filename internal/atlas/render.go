package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// renderPage composites one page's placements onto a canvas sized to the
// used extent, encodes it and builds the frame index document.
func renderPage(placements []Placed, baseName string, pageIndex int, multi bool) (Page, error) {
	width, height := 0, 0
	for _, p := range placements {
		if right := p.X + p.Rect.Dx(); right > width {
			width = right
		}
		if bottom := p.Y + p.Rect.Dy(); bottom > height {
			height = bottom
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, p := range placements {
		draw.Copy(canvas, image.Pt(p.X, p.Y), p.Image, p.Rect, draw.Src, nil)
	}

	data, err := encodePage(canvas, pageIndex)
	if err != nil {
		return Page{}, err
	}

	suffix := ""
	if multi {
		suffix = fmt.Sprintf("_p%d", pageIndex)
	}
	imageName := baseName + suffix + ".png"

	page := Page{
		ImageName:  imageName,
		IndexName:  baseName + suffix + ".json",
		PNG:        data,
		Index:      buildIndex(placements, baseName, imageName, width, height),
		Width:      width,
		Height:     height,
		placements: placements,
	}
	return page, nil
}

// encodePage encodes a page canvas to PNG. A failed or empty direct
// encode is retried once against a fresh copy of the pixel buffer; only a
// second failure is unrecoverable.
func encodePage(canvas *image.RGBA, pageIndex int) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, canvas)
	if err == nil && buf.Len() > 0 {
		return buf.Bytes(), nil
	}
	if err == nil {
		err = errors.New("png encoder produced no data")
	}

	clone := image.NewRGBA(canvas.Rect)
	copy(clone.Pix, canvas.Pix)

	var retry bytes.Buffer
	if err2 := png.Encode(&retry, clone); err2 == nil && retry.Len() > 0 {
		return retry.Bytes(), nil
	}
	return nil, &EncodeExhaustedError{Page: pageIndex, Err: err}
}
