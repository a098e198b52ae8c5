package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png" // frame decoder registration for atlas packing
	"path"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kohaku-dev/animbatch/internal/archive"
	"github.com/kohaku-dev/animbatch/internal/atlas"
	"github.com/kohaku-dev/animbatch/internal/model"
	"github.com/kohaku-dev/animbatch/internal/naming"
	"github.com/kohaku-dev/animbatch/internal/render"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Callbacks carries the caller-supplied observers for one batch run. Any
// field may be nil.
type Callbacks struct {
	// OnProgress fires after every task settles, successful or not. The
	// count is monotonic but task completion order is not task-index
	// order: treat it as "at least N of total", never a queue position.
	OnProgress func(completed, total int, label string)

	// OnAssetStatus fires on every asset status change.
	OnAssetStatus func(assetID string, status model.AssetStatus)

	// OnEvent receives log-style progress events.
	OnEvent func(ProgressEvent)
}

// Manager plans and executes one batch export run: it expands selected
// assets into animation-level render tasks, runs them concurrently
// against the render engine, isolates failures per task, and assembles
// everything that succeeded into a single archive.
type Manager struct {
	cfg      *model.ExportConfig
	engine   render.Engine
	resolver *naming.Resolver
	cb       Callbacks

	mu      sync.Mutex
	settled int
	total   int
}

// NewManager creates a Manager for one export configuration.
func NewManager(cfg *model.ExportConfig, engine render.Engine, cb Callbacks) *Manager {
	return &Manager{
		cfg:      cfg,
		engine:   engine,
		resolver: naming.NewResolver(cfg.Naming),
		cb:       cb,
	}
}

// assetState is the manager's private per-asset bookkeeping for one run.
type assetState struct {
	asset     *model.AnimationAsset
	scanErr   error
	completed int
	failed    int
}

// outcome is one successfully rendered task awaiting assembly. Seq keeps
// the planner's task order so the archive layout is deterministic even
// though completion order is not.
type outcome struct {
	seq    int
	task   *render.Task
	result *render.Result
}

// Run executes the batch for the selected assets and returns the final
// archive plus per-asset outcomes.
//
// Failure isolation is per task: a failed scan excludes only that asset,
// a failed render excludes only that task, and Run itself only returns an
// error when the final single-threaded archive assembly fails.
// Cancellation via ctx is not an error: no new work starts, in-flight
// tasks exit quietly, and the archive is built from whatever succeeded.
func (m *Manager) Run(ctx context.Context, assets []*model.AnimationAsset) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	states := make([]*assetState, len(assets))
	byID := make(map[string]*assetState, len(assets))
	for i, asset := range assets {
		states[i] = &assetState{asset: asset}
		byID[asset.ID] = states[i]
		m.setStatus(asset, model.StatusWaiting)
	}

	// Scan phase: one bad asset never aborts the batch.
	var tasks []*render.Task
	for _, st := range states {
		names, err := m.engine.Scan(ctx, st.asset)
		if err != nil {
			st.scanErr = err
			m.setStatus(st.asset, model.StatusFailed)
			m.event(LevelWarning, fmt.Sprintf("Skipping %s: %v", st.asset.Label(), err))
			continue
		}
		st.asset.Animations = names
		m.event(LevelVerbose, fmt.Sprintf("Found %d animations in %s", len(names), st.asset.Label()))
		for _, animation := range names {
			tasks = append(tasks, &render.Task{
				AssetID:   st.asset.ID,
				AssetName: st.asset.Name,
				AssetKey:  st.asset.AssetKey,
				Animation: animation,
				Config:    m.cfg,
			})
		}
	}
	m.total = len(tasks)

	// Execute phase: dispatch everything at once, the engine owns its own
	// concurrency bound. Workers never return errors; results funnel into
	// a mutex-guarded collector and the archive is assembled after Wait.
	var outcomes []outcome
	var g errgroup.Group
	for i, task := range tasks {
		seq, task := i, task
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			st := byID[task.AssetID]
			m.markExporting(st.asset)

			result, err := m.engine.Render(ctx, task)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				m.mu.Lock()
				st.failed++
				m.mu.Unlock()
				m.setStatus(st.asset, model.StatusFailed)
				m.event(LevelError, fmt.Sprintf("Render failed: %s: %v", task.Label(), err))
				m.settle(task.Label())
				return nil
			}

			m.mu.Lock()
			st.completed++
			outcomes = append(outcomes, outcome{seq: seq, task: task, result: result})
			m.mu.Unlock()
			m.event(LevelVerbose, fmt.Sprintf("Rendered %s (%d frames)", task.Label(), result.TotalFrames))
			m.settle(task.Label())
			return nil
		})
	}
	g.Wait()

	sort.Slice(outcomes, func(a, b int) bool { return outcomes[a].seq < outcomes[b].seq })

	// Assembly: the only step that can fail the batch as a whole.
	w := archive.NewWriter()
	var err error
	if m.cfg.Naming.Enabled {
		err = m.assembleCanonical(w, runID, outcomes)
	} else {
		err = m.assembleLegacy(w, outcomes)
	}
	if err != nil {
		return nil, fmt.Errorf("export: assembling archive: %w", err)
	}
	data, size, err := w.Build()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	// Historical completion policy: every asset that survived the scan
	// ends the run completed, even with failed animation tasks. The
	// per-asset PartialFailures flag carries the honest signal.
	result := &Result{
		RunID:       runID,
		Archive:     data,
		ArchiveSize: size,
		TotalTasks:  m.total,
		Elapsed:     time.Since(start),
	}
	for _, st := range states {
		ar := AssetResult{
			AssetID:    st.asset.ID,
			AssetName:  st.asset.Name,
			Animations: len(st.asset.Animations),
			Completed:  st.completed,
			Failed:     st.failed,
		}
		if st.scanErr != nil {
			ar.Status = model.StatusFailed
			ar.Error = st.scanErr.Error()
		} else {
			m.completeAsset(st.asset)
			ar.Status = model.StatusCompleted
			ar.PartialFailures = st.failed > 0
		}
		result.CompletedTasks += st.completed
		result.Assets = append(result.Assets, ar)
	}

	m.event(LevelSuccess, fmt.Sprintf("Export finished: %d/%d tasks, %d bytes", result.CompletedTasks, result.TotalTasks, size))
	return result, nil
}

// assembleCanonical writes the hierarchical layout: derived output paths,
// metadata sidecars and the top-level export index.
func (m *Manager) assembleCanonical(w *archive.Writer, runID string, outcomes []outcome) error {
	records := make([]indexRecord, 0, len(outcomes))

	for _, o := range outcomes {
		spec := m.resolver.Resolve(o.task.AssetKey, o.task.Animation)

		var paths model.DerivedPaths
		switch out := o.result.Output.(type) {
		case render.Video:
			paths = naming.DerivePaths(spec, naming.DeliveryPreview, m.cfg.OutputExt(), m.cfg.FPS, o.result.TotalFrames)
			if err := w.Add(paths.OutputPath, out.Data); err != nil {
				return err
			}

		case render.Frames:
			paths = naming.DerivePaths(spec, naming.DeliverySprite, "", m.cfg.FPS, o.result.TotalFrames)
			if m.cfg.SpriteMode == model.SpriteAtlas {
				if err := m.addAtlasPages(w, paths, out); err != nil {
					return err
				}
			} else {
				for i, frame := range out.Images {
					name := fmt.Sprintf("%s_%05d.%s", paths.OutputPath, i, out.Ext)
					if err := w.Add(name, frame); err != nil {
						return err
					}
				}
			}

		default:
			return fmt.Errorf("unknown render output %T for %s", out, o.task.Label())
		}

		meta := metadataDoc{
			CanonicalName: spec.CanonicalName,
			View:          spec.View,
			Timing:        spec.Timing,
			Direction:     spec.Direction,
			FPS:           m.cfg.FPS,
			FrameCount:    o.result.TotalFrames,
			Asset:         assetIdentity{ID: o.task.AssetID, Name: o.task.AssetName},
		}
		metaJSON, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return err
		}
		if err := w.Add(paths.MetadataPath, metaJSON); err != nil {
			return err
		}

		records = append(records, indexRecord{
			Asset:         o.task.AssetName,
			Animation:     o.task.Animation,
			Delivery:      paths.Delivery,
			View:          paths.View,
			CanonicalName: paths.CanonicalName,
			OutputPath:    paths.OutputPath,
			MetadataPath:  paths.MetadataPath,
			FPS:           m.cfg.FPS,
			FrameCount:    o.result.TotalFrames,
		})
	}

	index := exportIndex{RunID: runID, GeneratedAt: time.Now().UTC(), Tasks: records}
	indexJSON, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return w.Add("export_index.json", indexJSON)
}

// addAtlasPages decodes a task's frames, packs them into pages and writes
// page images plus their frame indexes next to the sprite base path.
func (m *Manager) addAtlasPages(w *archive.Writer, paths model.DerivedPaths, out render.Frames) error {
	frames := make([]image.Image, len(out.Images))
	for i, data := range out.Images {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decoding frame %d of %s: %w", i, paths.BaseName, err)
		}
		frames[i] = img
	}

	pages, err := atlas.Pack(frames, paths.BaseName, atlas.Options{
		MaxPageSize: m.cfg.Atlas.MaxPageSize,
		Padding:     m.cfg.Atlas.Padding,
		Trim:        m.cfg.Atlas.Trim,
	})
	if err != nil {
		return err
	}

	dir := path.Dir(paths.OutputPath)
	for _, page := range pages {
		if err := w.Add(dir+"/"+page.ImageName, page.PNG); err != nil {
			return err
		}
		indexJSON, err := json.MarshalIndent(page.Index, "", "  ")
		if err != nil {
			return err
		}
		if err := w.Add(dir+"/"+page.IndexName, indexJSON); err != nil {
			return err
		}
	}
	return nil
}

// assembleLegacy writes the flat layout used when naming is disabled: one
// entry per task, frame sequences nested as inner uncompressed zips.
func (m *Manager) assembleLegacy(w *archive.Writer, outcomes []outcome) error {
	for _, o := range outcomes {
		base := naming.SanitizeSegment(o.task.AssetName) + "_" + naming.SanitizeSegment(o.task.Animation)

		switch out := o.result.Output.(type) {
		case render.Video:
			if err := w.Add(base+"."+m.cfg.OutputExt(), out.Data); err != nil {
				return err
			}

		case render.Frames:
			names := make([]string, len(out.Images))
			for i := range out.Images {
				names[i] = fmt.Sprintf("frame_%05d.%s", i, out.Ext)
			}
			nested, err := archive.BuildNested(names, out.Images)
			if err != nil {
				return err
			}
			if err := w.AddStored(base+".zip", nested); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unknown render output %T for %s", out, o.task.Label())
		}
	}
	return nil
}

// setStatus updates an asset's status and notifies the caller. Illegal
// transitions are dropped, which also dedupes repeated failure marks from
// sibling tasks racing on the same asset.
func (m *Manager) setStatus(asset *model.AnimationAsset, status model.AssetStatus) {
	m.mu.Lock()
	if !asset.Status.CanTransition(status) {
		m.mu.Unlock()
		return
	}
	asset.Status = status
	m.mu.Unlock()
	if m.cb.OnAssetStatus != nil {
		m.cb.OnAssetStatus(asset.ID, status)
	}
}

// completeAsset is the end-of-run completion pass for one scan survivor:
// it overwrites the status to completed regardless of render failures or
// cancellation, bypassing the forward-only transition rules on purpose.
// AssetResult's counts and PartialFailures keep the honest signal.
func (m *Manager) completeAsset(asset *model.AnimationAsset) {
	m.mu.Lock()
	changed := asset.Status != model.StatusCompleted
	asset.Status = model.StatusCompleted
	m.mu.Unlock()
	if changed && m.cb.OnAssetStatus != nil {
		m.cb.OnAssetStatus(asset.ID, model.StatusCompleted)
	}
}

// markExporting moves a waiting asset to exporting on its first task. An
// asset already marked failed by a sibling task keeps that status until
// the completion pass.
func (m *Manager) markExporting(asset *model.AnimationAsset) {
	m.mu.Lock()
	promote := asset.Status == model.StatusWaiting
	if promote {
		asset.Status = model.StatusExporting
	}
	m.mu.Unlock()
	if promote && m.cb.OnAssetStatus != nil {
		m.cb.OnAssetStatus(asset.ID, model.StatusExporting)
	}
}

// settle bumps the monotonic settled counter and reports progress.
func (m *Manager) settle(label string) {
	m.mu.Lock()
	m.settled++
	n := m.settled
	m.mu.Unlock()
	if m.cb.OnProgress != nil {
		m.cb.OnProgress(n, m.total, label)
	}
}

// event forwards a log-style progress event to the caller.
func (m *Manager) event(level ProgressLevel, message string) {
	if m.cb.OnEvent != nil {
		m.cb.OnEvent(ProgressEvent{Message: message, Level: level})
	}
}
