package export

import (
	"time"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// AssetResult is the per-asset outcome of one batch run.
//
// Status follows the historical completion policy: an asset that survived
// the scan phase ends the run completed even when some of its own
// animation tasks failed. PartialFailures is the honest secondary signal
// for callers that want to surface the difference.
type AssetResult struct {
	AssetID    string            `json:"assetId"`
	AssetName  string            `json:"assetName"`
	Status     model.AssetStatus `json:"status"`
	Animations int               `json:"animations"`
	Completed  int               `json:"completed"`
	Failed     int               `json:"failed"`

	// PartialFailures is true when the asset completed but at least one
	// of its animation tasks failed.
	PartialFailures bool `json:"partialFailures"`

	// Error holds the scan failure message for assets excluded from the
	// batch.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of one batch export run, handed back to the
// caller together with the final archive.
type Result struct {
	// RunID uniquely identifies this batch run.
	RunID string `json:"runId"`

	// Archive is the final deliverable; ArchiveSize its byte count.
	Archive     []byte `json:"-"`
	ArchiveSize int    `json:"archiveSize"`

	// TotalTasks and CompletedTasks count animation-level render jobs.
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`

	// Assets holds the per-asset outcomes in selection order.
	Assets []AssetResult `json:"assets"`

	// Elapsed is the wall-clock run duration.
	Elapsed time.Duration `json:"-"`
}

// indexRecord is one task's row in the top-level export_index.json.
type indexRecord struct {
	Asset         string `json:"asset"`
	Animation     string `json:"animation"`
	Delivery      string `json:"delivery"`
	View          string `json:"view"`
	CanonicalName string `json:"canonicalName"`
	OutputPath    string `json:"outputPath"`
	MetadataPath  string `json:"metadataPath"`
	FPS           int    `json:"fps"`
	FrameCount    int    `json:"frameCount"`
}

// exportIndex is the top-level export_index.json document summarizing
// every successful task of the run.
type exportIndex struct {
	RunID       string        `json:"runId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Tasks       []indexRecord `json:"tasks"`
}

// assetIdentity appears inside every metadata sidecar.
type assetIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// metadataDoc is the per-task sidecar written at the derived metadata
// path.
type metadataDoc struct {
	CanonicalName string        `json:"canonicalName"`
	View          string        `json:"view"`
	Timing        string        `json:"timing"`
	Direction     string        `json:"direction"`
	FPS           int           `json:"fps"`
	FrameCount    int           `json:"frameCount"`
	Asset         assetIdentity `json:"asset"`
}
