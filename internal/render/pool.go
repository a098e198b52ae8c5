package render

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kohaku-dev/animbatch/internal/model"
)

// perWorkerBytes is the rough memory footprint of one in-flight render
// (frame buffers for a 2048² RGBA sequence plus encoder overhead).
const perWorkerBytes = 512 << 20

// DefaultWorkers picks a concurrency bound for a local render engine from
// the machine's logical CPU count, capped by available memory so a large
// batch cannot push the host into swap. Falls back to 4 when the probes
// fail.
func DefaultWorkers() int {
	workers := 4
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		workers = n
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm.Available > 0 {
		if byMem := int(vm.Available / perWorkerBytes); byMem > 0 && byMem < workers {
			workers = byMem
		}
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Pool wraps an Engine with a concurrency bound. The executor dispatches
// every task at once; the pool is where the engine's own limit lives, so
// the executor never needs to know it.
type Pool struct {
	engine Engine
	slots  chan struct{}
}

// NewPool wraps engine with a bound of workers concurrent renders. A
// non-positive workers uses DefaultWorkers.
func NewPool(engine Engine, workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Pool{
		engine: engine,
		slots:  make(chan struct{}, workers),
	}
}

// Scan passes through to the wrapped engine; scans are cheap and are not
// bounded.
func (p *Pool) Scan(ctx context.Context, asset *model.AnimationAsset) ([]string, error) {
	return p.engine.Scan(ctx, asset)
}

// Render acquires a slot before delegating. Cancellation while waiting for
// a slot returns the context error without starting the render.
func (p *Pool) Render(ctx context.Context, task *Task) (*Result, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-p.slots }()

	return p.engine.Render(ctx, task)
}
