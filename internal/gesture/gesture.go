// Package gesture defines the pointer-drag input contract: per-step deltas
// with modifier flags, and the dispatch table that routes each event to
// exactly one sphere transform.
package gesture

import "fmt"

// Modifiers is the set of modifier keys held during a drag step.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// Action is one of the five sphere transforms a drag can trigger.
type Action int

const (
	Rotate Action = iota
	Pan
	Zoom
	Stretch
	Cigar
)

var actionNames = map[Action]string{
	Rotate:  "rotate",
	Pan:     "pan",
	Zoom:    "zoom",
	Stretch: "stretch",
	Cigar:   "cigar",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction resolves an action by its script name.
func ParseAction(name string) (Action, error) {
	for a, s := range actionNames {
		if s == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture op %q", name)
}

// Action maps a modifier combination to its transform: plain drags rotate,
// shift pans, ctrl or meta zooms, and the alt combinations trigger the two
// hidden deformations.
func (m Modifiers) Action() Action {
	ctrl := m.Has(ModCtrl) || m.Has(ModMeta)
	switch {
	case m.Has(ModShift) && m.Has(ModAlt):
		return Stretch
	case ctrl && m.Has(ModAlt):
		return Cigar
	case m.Has(ModShift):
		return Pan
	case ctrl:
		return Zoom
	default:
		return Rotate
	}
}

// Event is one discrete pointer movement while a drag is active.
type Event struct {
	DX, DY float64
	Mods   Modifiers
}

// Transformer is the set of gesture operations a model exposes. Each call
// mutates the model and redraws before returning.
type Transformer interface {
	Rotate(dx, dy float64)
	Pan(dx, dy float64)
	Zoom(dx, dy float64)
	Stretch(dx, dy float64)
	Cigar(dx, dy float64)
}

// Dispatcher routes gesture events to a Transformer. Dispatch is
// synchronous; events arrive one at a time from the pointer stream, so no
// locking is involved.
type Dispatcher struct {
	target Transformer
}

func NewDispatcher(t Transformer) *Dispatcher {
	return &Dispatcher{target: t}
}

// Handle applies exactly one transform for the event and reports which one.
func (d *Dispatcher) Handle(ev Event) Action {
	act := ev.Mods.Action()
	d.Apply(act, ev.DX, ev.DY)
	return act
}

// Apply invokes a specific transform, bypassing the modifier mapping.
// Gesture scripts use it to name operations directly.
func (d *Dispatcher) Apply(act Action, dx, dy float64) {
	switch act {
	case Pan:
		d.target.Pan(dx, dy)
	case Zoom:
		d.target.Zoom(dx, dy)
	case Stretch:
		d.target.Stretch(dx, dy)
	case Cigar:
		d.target.Cigar(dx, dy)
	default:
		d.target.Rotate(dx, dy)
	}
}
