package config

import (
	"math"
	"sort"
)

var presets = map[string]*Config{
	"classic": {
		Center: CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius: DefaultRadius, AngleStep: math.Pi / 10, CircleSize: 10,
	},
	"marble": {
		Center: CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius: DefaultRadius, AngleStep: math.Pi / 10, CircleSize: 10,
		DrawSpheres: true,
	},
	"pebble": {
		Center: CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius: 60, AngleStep: math.Pi / 6, CircleSize: 6,
	},
	"dense": {
		Center: CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius: 180, AngleStep: math.Pi / 20, CircleSize: 5,
	},
	"moon": {
		Center: CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius: 220, AngleStep: math.Pi / 14, CircleSize: 8,
		DrawSpheres: true,
	},
}

// GetPreset returns a copy of the named preset with display settings filled
// from the defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.Canvas.Cols == 0 {
		cfg.Canvas = CanvasConfig{Cols: DefaultCanvasCols, Rows: DefaultCanvasRows}
	}
	if cfg.Output.Width == 0 {
		cfg.Output = OutputConfig{Width: DefaultOutputW, Height: DefaultOutputH}
	}
	return &cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
