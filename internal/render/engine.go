package render

import (
	"context"
	"fmt"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// Task is one render job: a single animation of a single asset plus the
// render parameters for this batch run. Cancellation travels through the
// context passed to Engine.Render.
type Task struct {
	// AssetID and AssetName identify the owning asset; AssetKey is the
	// asset's stable base path.
	AssetID   string
	AssetName string
	AssetKey  string

	// Animation is the raw animation name to render.
	Animation string

	// Config carries the render parameters (resolution, fps, duration,
	// background, output format).
	Config *model.ExportConfig
}

// Label returns the task's progress label, "<asset> / <animation>".
func (t *Task) Label() string {
	return t.AssetName + " / " + t.Animation
}

// Output is the tagged union of render artifacts: Video for single-file
// output, Frames for an ordered frame sequence.
type Output interface {
	isOutput()
}

// Video is a single binary video artifact.
type Video struct {
	Data []byte
}

// Frames is an ordered list of per-frame binary artifacts plus the image
// extension they are encoded with (without dot, e.g. "png").
type Frames struct {
	Images [][]byte
	Ext    string
}

func (Video) isOutput()  {}
func (Frames) isOutput() {}

// Result is the outcome of one successful render call. Consumed, never
// mutated, by the executor.
type Result struct {
	// TotalFrames is the number of frames the render covered.
	TotalFrames int

	// Output is the produced artifact.
	Output Output
}

// Engine is the external render collaborator. Implementations are treated
// as opaque and possibly slow or fallible; they own their own concurrency
// bound (see Pool).
type Engine interface {
	// Scan returns the animation names carried by an asset. Failures are
	// reported as *ScanError.
	Scan(ctx context.Context, asset *model.AnimationAsset) ([]string, error)

	// Render renders one animation. Failures are reported as
	// *RenderError.
	Render(ctx context.Context, task *Task) (*Result, error)
}

// ScanError reports that an asset yielded no animation list. The asset is
// marked failed and excluded from the batch; the batch continues.
type ScanError struct {
	Asset string
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("render: scanning %s: %v", e.Asset, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// RenderError reports that one task's render call failed. The owning asset
// is marked failed and the task is excluded from the archive; sibling
// tasks continue.
type RenderError struct {
	Asset     string
	Animation string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s/%s: %v", e.Asset, e.Animation, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
