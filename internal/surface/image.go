package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Image is a raster Surface backed by a gg software canvas. It is used by
// the windowed frontend and by PNG snapshot/frame export.
type Image struct {
	dc      *gg.Context
	width   int
	height  int
	brushes []gg.Brush
}

func NewImage(width, height int) *Image {
	return &Image{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

func (s *Image) Clear() {
	s.dc.Clear()
}

func (s *Image) FillBackground(c color.Color) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *Image) FillCircle(x, y, r float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(x, y, r)
	_ = s.dc.Fill()
}

func (s *Image) FillCircleGradient(x, y, r float64, inner, outer color.Color) {
	grad := gg.NewRadialGradientBrush(x, y, 0, r).
		SetFocus(x-r/5, y-r/5).
		AddColorStop(0, gg.FromColor(inner)).
		AddColorStop(1, gg.FromColor(outer))
	s.dc.SetFillBrush(grad)
	s.dc.DrawCircle(x, y, r)
	_ = s.dc.Fill()
}

// SaveStyle pushes the transform/clip state and remembers the fill brush;
// gg's Pop does not restore paint, so the brush is reinstated by hand.
func (s *Image) SaveStyle() {
	s.brushes = append(s.brushes, s.dc.FillBrush())
	s.dc.Push()
}

func (s *Image) RestoreStyle() {
	s.dc.Pop()
	if n := len(s.brushes); n > 0 {
		b := s.brushes[n-1]
		s.brushes = s.brushes[:n-1]
		if b != nil {
			s.dc.SetFillBrush(b)
		}
	}
}

func (s *Image) Size() (int, int) { return s.width, s.height }

// Image returns the current raster contents.
func (s *Image) Image() image.Image { return s.dc.Image() }

// SavePNG writes the current contents to path.
func (s *Image) SavePNG(path string) error { return s.dc.SavePNG(path) }
