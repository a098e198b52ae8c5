package atlas

import "fmt"

// PackingOverflowError reports a single frame whose trimmed size plus
// padding cannot fit on any page under the configured maximum page size.
// This is a fatal input error for the whole pack invocation: the packer
// never silently skips a frame.
type PackingOverflowError struct {
	FrameIndex int
	Width      int
	Height     int
	MaxSize    int
	Padding    int
}

func (e *PackingOverflowError) Error() string {
	return fmt.Sprintf("atlas: frame %d (%dx%d + %dpx padding) exceeds max page size %d",
		e.FrameIndex, e.Width, e.Height, e.Padding, e.MaxSize)
}

// EncodeExhaustedError reports that a page image could not be encoded even
// through the round-trip fallback path.
type EncodeExhaustedError struct {
	Page int
	Err  error
}

func (e *EncodeExhaustedError) Error() string {
	return fmt.Sprintf("atlas: page %d could not be encoded: %v", e.Page, e.Err)
}

func (e *EncodeExhaustedError) Unwrap() error { return e.Err }
