// Package script loads yaml gesture scripts and replays them against a
// sphere model, one render per applied step. Scripts drive headless frame
// export; they carry gestures, never model state.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbview/internal/gesture"
)

// Step is one scripted gesture. Repeat below 1 means once.
type Step struct {
	Op     string  `yaml:"op"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Repeat int     `yaml:"repeat"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("script has no steps")
	}
	return &s, nil
}

// FrameCount reports how many renders a full run produces.
func (s *Script) FrameCount() int {
	n := 0
	for _, st := range s.Steps {
		r := st.Repeat
		if r < 1 {
			r = 1
		}
		n += r
	}
	return n
}

// Run applies every step in order. frame, if non-nil, is called after each
// applied gesture (the model has rendered by then); a frame error aborts
// the run.
func (s *Script) Run(d *gesture.Dispatcher, frame func(i int, act gesture.Action) error) error {
	i := 0
	for si, st := range s.Steps {
		act, err := gesture.ParseAction(st.Op)
		if err != nil {
			return fmt.Errorf("step %d: %w", si, err)
		}
		r := st.Repeat
		if r < 1 {
			r = 1
		}
		for k := 0; k < r; k++ {
			d.Apply(act, st.DX, st.DY)
			if frame != nil {
				if err := frame(i, act); err != nil {
					return err
				}
			}
			i++
		}
	}
	return nil
}
