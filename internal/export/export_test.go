package export

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orbview/internal/surface"
)

func grayFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 7 % 251), uint8(x * 7 % 251), uint8(x * 7 % 251), 0xff})
		}
	}
	return img
}

func TestFrameWriter(t *testing.T) {
	fw, err := NewRun(t.TempDir(), "test")
	if err != nil {
		t.Fatalf("new run: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := fw.WriteFrame(grayFrame(16, 16)); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if err := fw.WriteMetadata(RunMetadata{Width: 16, Height: 16, Script: "spin.yaml"}); err != nil {
		t.Fatalf("metadata: %v", err)
	}

	if _, err := os.Stat(filepath.Join(fw.Dir(), "frame_0002.png")); err != nil {
		t.Errorf("missing frame file: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(fw.Dir(), "metadata.json"))
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("decode metadata: %v", err)
	}
	if meta.Frames != 3 || meta.ID != fw.ID() || meta.Script != "spin.yaml" {
		t.Errorf("metadata = %+v", meta)
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*image.Paletted{
		Palettize(grayFrame(8, 8)),
		Palettize(grayFrame(8, 8)),
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 2); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("GIF89a")) {
		t.Error("output is not a GIF stream")
	}
}

func TestCanvasToSVG(t *testing.T) {
	term := surface.NewTerm(10, 10, 100, 100)
	term.FillBackground(color.White)
	term.FillCircle(50, 50, 20, color.RGBA{0x40, 0x40, 0x40, 0xff})

	svg := CanvasToSVG(term, 8)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `fill="#404040"`) {
		t.Error("missing dot color")
	}
	if !strings.Contains(svg, "<circle ") {
		t.Error("no dots emitted")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if got := CanvasToSVG(nil, 8); got != "" {
		t.Errorf("expected empty string for nil canvas, got %q", got)
	}
}
