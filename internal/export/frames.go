// Package export writes rendered frames to disk: PNG sequences with run
// metadata, animated GIFs, and SVG dumps of the terminal canvas.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// RunMetadata describes an exported frame sequence. It records what was
// rendered and from which script, never the sphere's state.
type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Frames    int       `json:"frames"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Script    string    `json:"script,omitempty"`
	Preset    string    `json:"preset,omitempty"`
}

// FrameWriter writes numbered PNG frames into a run directory.
type FrameWriter struct {
	dir   string
	id    string
	count int
}

// NewRun creates a timestamped run directory under baseDir.
func NewRun(baseDir, name string) (*FrameWriter, error) {
	id := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	dir := filepath.Join(baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FrameWriter{dir: dir, id: id}, nil
}

func (w *FrameWriter) ID() string  { return w.id }
func (w *FrameWriter) Dir() string { return w.dir }
func (w *FrameWriter) Count() int  { return w.count }

// WriteFrame stores img as the next numbered frame.
func (w *FrameWriter) WriteFrame(img image.Image) error {
	path := filepath.Join(w.dir, fmt.Sprintf("frame_%04d.png", w.count))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	w.count++
	return nil
}

// WriteMetadata stores the run description next to the frames. Frame count
// and ID are filled in from the writer.
func (w *FrameWriter) WriteMetadata(meta RunMetadata) error {
	meta.ID = w.id
	meta.Frames = w.count
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	f, err := os.Create(filepath.Join(w.dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
