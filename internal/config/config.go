package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbview/internal/sphere"
)

const (
	DefaultRadius     = 150.0
	DefaultCenterX    = 320.0
	DefaultCenterY    = 240.0
	DefaultCanvasCols = 72
	DefaultCanvasRows = 30
	DefaultOutputW    = 640
	DefaultOutputH    = 480
	DefaultTheme      = "slate"
)

type Config struct {
	Center      CenterConfig `yaml:"center"`
	Radius      float64      `yaml:"radius"`
	AngleStep   float64      `yaml:"angle_step"`
	CircleSize  float64      `yaml:"circle_size"`
	DrawSpheres bool         `yaml:"draw_spheres"`
	Theme       string       `yaml:"theme"`
	Canvas      CanvasConfig `yaml:"canvas"`
	Output      OutputConfig `yaml:"output"`
}

type CenterConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CanvasConfig sizes the terminal cell grid.
type CanvasConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// OutputConfig sizes the raster surface (window, PNG, GIF frames).
type OutputConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Center:     CenterConfig{X: DefaultCenterX, Y: DefaultCenterY},
		Radius:     DefaultRadius,
		AngleStep:  sphere.DefaultStep,
		CircleSize: sphere.DefaultCircleSize,
		Theme:      DefaultTheme,
		Canvas:     CanvasConfig{Cols: DefaultCanvasCols, Rows: DefaultCanvasRows},
		Output:     OutputConfig{Width: DefaultOutputW, Height: DefaultOutputH},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into sphere construction parameters.
func (c *Config) Params() sphere.Params {
	return sphere.Params{
		X:           c.Center.X,
		Y:           c.Center.Y,
		Z:           c.Center.Z,
		R:           c.Radius,
		Step:        c.AngleStep,
		CircleSize:  c.CircleSize,
		DrawSpheres: c.DrawSpheres,
	}
}

// PointCount reports how many surface points the config generates.
func (c *Config) PointCount() int {
	step := c.AngleStep
	if step <= 0 {
		step = sphere.DefaultStep
	}
	n := int(math.Ceil(2 * math.Pi / step))
	return n * n
}
