package gesture

import "testing"

type callRecorder struct {
	calls []string
	dx    float64
	dy    float64
}

func (c *callRecorder) record(name string, dx, dy float64) {
	c.calls = append(c.calls, name)
	c.dx, c.dy = dx, dy
}

func (c *callRecorder) Rotate(dx, dy float64)  { c.record("rotate", dx, dy) }
func (c *callRecorder) Pan(dx, dy float64)     { c.record("pan", dx, dy) }
func (c *callRecorder) Zoom(dx, dy float64)    { c.record("zoom", dx, dy) }
func (c *callRecorder) Stretch(dx, dy float64) { c.record("stretch", dx, dy) }
func (c *callRecorder) Cigar(dx, dy float64)   { c.record("cigar", dx, dy) }

func TestModifierMapping(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want Action
	}{
		{0, Rotate},
		{ModShift, Pan},
		{ModCtrl, Zoom},
		{ModMeta, Zoom},
		{ModShift | ModAlt, Stretch},
		{ModCtrl | ModAlt, Cigar},
		{ModMeta | ModAlt, Cigar},
		{ModAlt, Rotate},
	}

	for _, tt := range tests {
		if got := tt.mods.Action(); got != tt.want {
			t.Errorf("mods %b: got %v, want %v", tt.mods, got, tt.want)
		}
	}
}

func TestDispatcherRoutesOneCall(t *testing.T) {
	rec := &callRecorder{}
	d := NewDispatcher(rec)

	act := d.Handle(Event{DX: 3, DY: -4, Mods: ModShift})

	if act != Pan {
		t.Fatalf("got action %v, want pan", act)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "pan" {
		t.Fatalf("calls = %v, want exactly one pan", rec.calls)
	}
	if rec.dx != 3 || rec.dy != -4 {
		t.Errorf("delta = (%v, %v), want (3, -4)", rec.dx, rec.dy)
	}
}

func TestDispatcherApply(t *testing.T) {
	rec := &callRecorder{}
	d := NewDispatcher(rec)

	d.Apply(Cigar, 1, 2)

	if len(rec.calls) != 1 || rec.calls[0] != "cigar" {
		t.Fatalf("calls = %v, want exactly one cigar", rec.calls)
	}
}

func TestParseAction(t *testing.T) {
	for _, name := range []string{"rotate", "pan", "zoom", "stretch", "cigar"} {
		act, err := ParseAction(name)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", name, err)
		}
		if act.String() != name {
			t.Errorf("round trip %q -> %v", name, act)
		}
	}

	if _, err := ParseAction("twist"); err == nil {
		t.Error("expected error for unknown op")
	}
}
