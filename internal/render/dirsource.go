package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// frameExts are the image extensions DirEngine recognizes as frames.
var frameExts = map[string]bool{
	".png":  true,
	".webp": true,
	".jpg":  true,
	".jpeg": true,
}

// DirEngine is a render engine backed by a directory tree of pre-rendered
// frame dumps, so the batch pipeline can run end to end without a live
// rasterizer:
//
//	<root>/<assetKey>/<animation>/<frame files, lexical order>
//
// Scan lists the animation subdirectories of an asset; Render loads the
// animation's frame files in lexical order. Video output is out of its
// reach: rendering a video-format task fails with *RenderError.
type DirEngine struct {
	root string
}

// NewDirEngine creates a DirEngine rooted at dir.
func NewDirEngine(dir string) *DirEngine {
	return &DirEngine{root: dir}
}

// Scan lists the asset's animation subdirectories.
func (e *DirEngine) Scan(ctx context.Context, asset *model.AnimationAsset) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(e.root, filepath.FromSlash(asset.AssetKey))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{Asset: asset.Label(), Err: err}
	}

	var animations []string
	for _, entry := range entries {
		if entry.IsDir() {
			animations = append(animations, entry.Name())
		}
	}
	if len(animations) == 0 {
		return nil, &ScanError{Asset: asset.Label(), Err: fmt.Errorf("no animation directories under %s", dir)}
	}
	sort.Strings(animations)
	return animations, nil
}

// Render loads the animation's frame files.
func (e *DirEngine) Render(ctx context.Context, task *Task) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if task.Config != nil && task.Config.Delivery() != model.DeliverySprite {
		return nil, &RenderError{
			Asset:     task.AssetName,
			Animation: task.Animation,
			Err:       fmt.Errorf("directory source cannot produce %s output", task.Config.Delivery()),
		}
	}

	dir := filepath.Join(e.root, filepath.FromSlash(task.AssetKey), task.Animation)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &RenderError{Asset: task.AssetName, Animation: task.Animation, Err: err}
	}

	var names []string
	ext := ""
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileExt := strings.ToLower(filepath.Ext(entry.Name()))
		if !frameExts[fileExt] {
			continue
		}
		if ext == "" {
			ext = strings.TrimPrefix(fileExt, ".")
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, &RenderError{
			Asset:     task.AssetName,
			Animation: task.Animation,
			Err:       fmt.Errorf("no frame files under %s", dir),
		}
	}
	sort.Strings(names)

	images := make([][]byte, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, &RenderError{Asset: task.AssetName, Animation: task.Animation, Err: err}
		}
		images = append(images, data)
	}

	return &Result{
		TotalFrames: len(images),
		Output:      Frames{Images: images, Ext: ext},
	}, nil
}
