// Package render defines the contract with the external render engine and
// two in-tree implementations of its surroundings.
//
// # Engine
//
// Engine is the narrow collaborator interface the executor depends on:
// Scan(asset) lists animation names, Render(task) produces a Result whose
// Output is either a Video artifact or an ordered Frames sequence. Both
// calls take a context and report typed failures (*ScanError,
// *RenderError) that the executor maps to asset status.
//
// # Pool
//
// The engine owns its own concurrency bound. Pool wraps any Engine with a
// slot-based limit so the executor can dispatch every task at once:
//
//	engine := render.NewPool(render.NewDirEngine(dir), render.DefaultWorkers())
//
// # DirEngine
//
// DirEngine serves pre-rendered frame dumps from a directory tree
// (<root>/<assetKey>/<animation>/NNNN.png), which makes the CLI usable
// without a GPU rasterizer. It only produces frame output.
package render
