// Package export orchestrates one batch export run: planning, concurrent
// execution against the render engine, and archive assembly.
//
// # Manager
//
// The Manager runs the whole pipeline:
//
//  1. Scan every selected asset for its animation names (scan failures
//     exclude only that asset)
//  2. Expand surviving assets × animations into render tasks
//  3. Dispatch all tasks concurrently; the engine owns its concurrency
//     bound, and one task's failure never stops its siblings
//  4. Canonicalize names and pack atlases for the successful tasks
//  5. Assemble one archive and hand it back
//
// # Basic Usage
//
//	manager := export.NewManager(cfg, engine, export.Callbacks{
//	    OnProgress: func(done, total int, label string) {
//	        fmt.Printf("%d/%d %s\n", done, total, label)
//	    },
//	})
//
//	result, err := manager.Run(ctx, assets)
//	if err != nil {
//	    log.Fatal(err) // only archive assembly can fail the batch
//	}
//	os.WriteFile("export.zip", result.Archive, 0644)
//
// # Progress
//
// Completion order is not task order; OnProgress reports a monotonic
// settled count that callers must treat as "at least N of total".
//
// # Cancellation
//
// Cancel the context to stop new work. In-flight tasks exit quietly,
// nothing is rolled back, and the archive is built from whatever
// succeeded.
package export
