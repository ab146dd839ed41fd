package surface

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestImageFillCircle(t *testing.T) {
	s := NewImage(100, 100)
	s.FillBackground(color.White)
	s.FillCircle(50, 50, 10, color.RGBA{0, 0, 0, 0xff})

	img := s.Image()
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 > 10 || g>>8 > 10 || b>>8 > 10 {
		t.Errorf("circle center pixel not dark: (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = img.At(5, 5).RGBA()
	if r>>8 < 245 {
		t.Errorf("background pixel not white: %d", r>>8)
	}
}

func TestImageGradientDoesNotPanic(t *testing.T) {
	s := NewImage(64, 64)
	s.SaveStyle()
	s.FillBackground(color.White)
	s.FillCircleGradient(32, 32, 16, color.White, color.RGBA{0x40, 0x40, 0x40, 0xff})
	s.RestoreStyle()

	// A later flat fill must still work after the brush restore.
	s.FillCircle(32, 32, 4, color.Black)
}

func TestImageSavePNG(t *testing.T) {
	s := NewImage(32, 32)
	s.FillBackground(color.White)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("png missing or empty: %v", err)
	}
}

func TestImageSize(t *testing.T) {
	s := NewImage(20, 40)
	w, h := s.Size()
	if w != 20 || h != 40 {
		t.Errorf("size = (%d, %d)", w, h)
	}
}
