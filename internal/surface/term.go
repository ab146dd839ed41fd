package surface

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Term is a Surface that rasterizes into a grid of colored terminal cells.
// Drawing happens in a virtual pixel space (pxW x pxH) that is mapped onto
// the cell grid, so gesture deltas and circle radii keep the same scale as
// on the raster backends. Later draws overwrite earlier ones, which is what
// the painter's algorithm relies on.
type Term struct {
	cols, rows int
	pxW, pxH   float64
	cells      []cell
	bg         color.Color
	bgStack    []color.Color
	styles     map[string]lipgloss.Style
}

type cell struct {
	set bool
	c   color.Color
}

func NewTerm(cols, rows int, pxW, pxH float64) *Term {
	return &Term{
		cols:   cols,
		rows:   rows,
		pxW:    pxW,
		pxH:    pxH,
		cells:  make([]cell, cols*rows),
		bg:     color.White,
		styles: make(map[string]lipgloss.Style),
	}
}

func (t *Term) Cols() int { return t.cols }
func (t *Term) Rows() int { return t.rows }

// PixelsPerCell reports the virtual pixel extent of one cell, used to turn
// cell-level mouse deltas back into pixel deltas.
func (t *Term) PixelsPerCell() (float64, float64) {
	return t.pxW / float64(t.cols), t.pxH / float64(t.rows)
}

func (t *Term) Clear() {
	for i := range t.cells {
		t.cells[i] = cell{}
	}
}

func (t *Term) FillBackground(c color.Color) {
	t.bg = c
	for i := range t.cells {
		t.cells[i] = cell{}
	}
}

func (t *Term) FillCircle(x, y, r float64, c color.Color) {
	t.rasterize(x, y, r, func(float64) color.Color { return c })
}

func (t *Term) FillCircleGradient(x, y, r float64, inner, outer color.Color) {
	// Distance from an offset focal point approximates the radial gradient
	// at cell resolution.
	t.rasterize(x, y, r, func(d float64) color.Color {
		return lerpColor(inner, outer, d)
	})
}

// rasterize visits every cell covered by the circle and sets it to
// shade(d), where d in [0,1] is the normalized distance from the focal
// point (offset r/5 toward the upper-left). The center cell is always set
// so small radii stay visible.
func (t *Term) rasterize(x, y, r float64, shade func(d float64) color.Color) {
	sx := float64(t.cols) / t.pxW
	sy := float64(t.rows) / t.pxH
	cx, cy := x*sx, y*sy
	rx, ry := r*sx, r*sy
	fx, fy := (x-r/5)*sx, (y-r/5)*sy

	t.setCell(int(cx), int(cy), shade(0))

	for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
		for col := int(math.Floor(cx - rx)); col <= int(math.Ceil(cx+rx)); col++ {
			u := (float64(col) + 0.5 - cx) / rx
			v := (float64(row) + 0.5 - cy) / ry
			if u*u+v*v > 1 {
				continue
			}
			du := (float64(col) + 0.5 - fx) / rx
			dv := (float64(row) + 0.5 - fy) / ry
			d := math.Min(1, math.Hypot(du, dv))
			t.setCell(col, row, shade(d))
		}
	}
}

func (t *Term) setCell(col, row int, c color.Color) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.cells[row*t.cols+col] = cell{set: true, c: c}
}

// CellColor reports the drawn color at (col, row); ok is false for cells
// still showing the background.
func (t *Term) CellColor(col, row int) (color.Color, bool) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return nil, false
	}
	cl := t.cells[row*t.cols+col]
	return cl.c, cl.set
}

func (t *Term) Background() color.Color { return t.bg }

func (t *Term) SaveStyle() {
	t.bgStack = append(t.bgStack, t.bg)
}

func (t *Term) RestoreStyle() {
	if n := len(t.bgStack); n > 0 {
		t.bg = t.bgStack[n-1]
		t.bgStack = t.bgStack[:n-1]
	}
}

// String renders the grid as styled text, one dot rune per drawn cell.
func (t *Term) String() string {
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			cl := t.cells[row*t.cols+col]
			if !cl.set {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(t.style(cl.c).Render("●"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *Term) style(c color.Color) lipgloss.Style {
	hex := HexColor(c)
	st, ok := t.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		t.styles[hex] = st
	}
	return st
}

// HexColor formats c as a #rrggbb string.
func HexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func lerpColor(a, b color.Color, d float64) color.Color {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	lerp := func(x, y uint32) uint8 {
		return uint8((float64(x>>8) + d*(float64(y>>8)-float64(x>>8))))
	}
	return color.RGBA{R: lerp(ar, br), G: lerp(ag, bg), B: lerp(ab, bb), A: 0xff}
}
