package surface

import "image/color"

// Call kinds recorded by Recorder.
const (
	OpClear      = "clear"
	OpBackground = "background"
	OpCircle     = "circle"
	OpGradient   = "gradient"
	OpSave       = "save"
	OpRestore    = "restore"
)

// Call is one recorded drawing operation.
type Call struct {
	Op           string
	X, Y, R      float64
	Color        color.Color
	Inner, Outer color.Color
}

// Recorder is a Surface that logs every call instead of drawing. Tests use
// it to check draw order and call counts.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) FillBackground(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpBackground, Color: c})
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) FillCircleGradient(x, y, rad float64, inner, outer color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpGradient, X: x, Y: y, R: rad, Inner: inner, Outer: outer})
}

func (r *Recorder) SaveStyle() {
	r.Calls = append(r.Calls, Call{Op: OpSave})
}

func (r *Recorder) RestoreStyle() {
	r.Calls = append(r.Calls, Call{Op: OpRestore})
}

// Count reports how many calls of the given kind were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops the recorded log.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }
