// Package archive builds the single deliverable zip handed back to the
// caller after a batch export run.
//
// Writer accepts (path, bytes) entries and picks the compression method
// per entry: image, video and nested-zip content is stored as-is (it is
// already compressed), everything else is deflated. BuildNested produces
// the inner uncompressed zips used by the legacy flat layout for frame
// sequences.
//
//	w := archive.NewWriter()
//	w.Add("preview/VIEW_SIDE/locomotion/idle_00_LR_loop_30fps_150f.mp4", video)
//	w.Add("export_index.json", index)
//	data, size, err := w.Build()
package archive
