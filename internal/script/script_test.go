package script

import (
	"testing"

	"github.com/san-kum/orbview/internal/gesture"
)

type opLog struct {
	ops []string
}

func (l *opLog) Rotate(dx, dy float64)  { l.ops = append(l.ops, "rotate") }
func (l *opLog) Pan(dx, dy float64)     { l.ops = append(l.ops, "pan") }
func (l *opLog) Zoom(dx, dy float64)    { l.ops = append(l.ops, "zoom") }
func (l *opLog) Stretch(dx, dy float64) { l.ops = append(l.ops, "stretch") }
func (l *opLog) Cigar(dx, dy float64)   { l.ops = append(l.ops, "cigar") }

const sample = `
steps:
  - op: rotate
    dx: 10
    dy: 5
    repeat: 3
  - op: zoom
    dx: 40
  - op: pan
    dx: -8
    dy: 2
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(s.Steps))
	}
	if s.FrameCount() != 5 {
		t.Errorf("expected 5 frames, got %d", s.FrameCount())
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse([]byte("steps: []")); err == nil {
		t.Error("expected error for empty script")
	}
}

func TestRunAppliesInOrder(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	log := &opLog{}
	frames := 0
	err = s.Run(gesture.NewDispatcher(log), func(i int, act gesture.Action) error {
		if i != frames {
			t.Errorf("frame index %d, want %d", i, frames)
		}
		frames++
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"rotate", "rotate", "rotate", "zoom", "pan"}
	if len(log.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", log.ops, want)
	}
	for i := range want {
		if log.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", log.ops, want)
		}
	}
	if frames != 5 {
		t.Errorf("frame callback ran %d times, want 5", frames)
	}
}

func TestRunUnknownOp(t *testing.T) {
	s := &Script{Steps: []Step{{Op: "wobble"}}}
	if err := s.Run(gesture.NewDispatcher(&opLog{}), nil); err == nil {
		t.Error("expected error for unknown op")
	}
}
