package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// storedExts are entry extensions whose content is already compressed;
// deflating them again wastes time for no size win, so they are stored.
var storedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".mp4":  true,
	".webm": true,
	".zip":  true,
}

// Writer accumulates (path, bytes) entries and produces one final binary
// archive. It is not safe for concurrent use; the executor funnels all
// completed tasks through a single assembly step.
type Writer struct {
	buf   bytes.Buffer
	zw    *zip.Writer
	count int
	done  bool
}

// NewWriter creates an empty archive writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.zw = zip.NewWriter(&w.buf)
	return w
}

// Add writes one entry. Already-compressed content, decided by extension
// (images, video, nested zips), is stored without compression; everything
// else is deflated.
func (w *Writer) Add(entryPath string, data []byte) error {
	method := zip.Deflate
	if storedExts[strings.ToLower(path.Ext(entryPath))] {
		method = zip.Store
	}
	return w.add(entryPath, data, method)
}

// AddStored writes one entry without compression regardless of extension.
func (w *Writer) AddStored(entryPath string, data []byte) error {
	return w.add(entryPath, data, zip.Store)
}

func (w *Writer) add(entryPath string, data []byte, method uint16) error {
	if w.done {
		return fmt.Errorf("archive: writer already built")
	}

	fw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   entryPath,
		Method: method,
	})
	if err != nil {
		return fmt.Errorf("archive: creating entry %s: %w", entryPath, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("archive: writing entry %s: %w", entryPath, err)
	}
	w.count++
	return nil
}

// Count returns the number of entries added so far.
func (w *Writer) Count() int {
	return w.count
}

// Build finalizes the archive and returns its bytes plus the byte count.
// The writer cannot be reused afterwards.
func (w *Writer) Build() ([]byte, int, error) {
	if w.done {
		return nil, 0, fmt.Errorf("archive: writer already built")
	}
	w.done = true
	if err := w.zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("archive: finalizing: %w", err)
	}
	data := w.buf.Bytes()
	return data, len(data), nil
}

// BuildNested packs a set of ordered entries into a standalone inner zip,
// stored uncompressed throughout since frame content is already
// compressed. Used for frame sequences nested inside the legacy flat
// layout.
func BuildNested(names []string, contents [][]byte) ([]byte, error) {
	if len(names) != len(contents) {
		return nil, fmt.Errorf("archive: %d names for %d contents", len(names), len(contents))
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, name := range names {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		if err != nil {
			return nil, fmt.Errorf("archive: creating nested entry %s: %w", name, err)
		}
		if _, err := fw.Write(contents[i]); err != nil {
			return nil, fmt.Errorf("archive: writing nested entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive: finalizing nested zip: %w", err)
	}
	return buf.Bytes(), nil
}
