package main

import (
	"fmt"
	"image"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/orbview/internal/config"
	"github.com/san-kum/orbview/internal/export"
	"github.com/san-kum/orbview/internal/gesture"
	"github.com/san-kum/orbview/internal/gui"
	"github.com/san-kum/orbview/internal/script"
	"github.com/san-kum/orbview/internal/sphere"
	"github.com/san-kum/orbview/internal/surface"
	"github.com/san-kum/orbview/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	radius     float64
	centerX    float64
	centerY    float64
	centerZ    float64
	angleStep  float64
	circleSize float64
	spheres    bool
	theme      string
	cols       int
	rows       int
	width      int
	height     int
	// animate
	outDir  string
	runName string
	makeGIF bool
	// render
	asSVG bool
	// bench
	benchFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbview",
		Short: "interactive wireframe sphere",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(loadSettings(cmd))
		},
	}
	addModelFlags(rootCmd)

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive terminal viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(loadSettings(cmd))
		},
	}
	addModelFlags(viewCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed viewer with real pointer drags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.Run(loadSettings(cmd))
		},
	}
	addModelFlags(guiCmd)

	renderCmd := &cobra.Command{
		Use:   "render [output]",
		Short: "render a single frame to PNG or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	addModelFlags(renderCmd)
	renderCmd.Flags().BoolVar(&asSVG, "svg", false, "emit SVG from the cell canvas")

	animateCmd := &cobra.Command{
		Use:   "animate [script]",
		Short: "replay a gesture script into PNG frames",
		Args:  cobra.ExactArgs(1),
		RunE:  animateScript,
	}
	addModelFlags(animateCmd)
	animateCmd.Flags().StringVar(&outDir, "out", ".orbview", "output directory")
	animateCmd.Flags().StringVar(&runName, "name", "anim", "run name")
	animateCmd.Flags().BoolVar(&makeGIF, "gif", false, "also assemble a GIF")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark rendering at several densities",
		RunE:  benchRender,
	}
	addModelFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchFrames, "frames", 100, "frames per density")

	rootCmd.AddCommand(viewCmd, guiCmd, renderCmd, animateCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&radius, "radius", 150, "sphere radius")
	cmd.Flags().Float64Var(&centerX, "cx", 320, "center x")
	cmd.Flags().Float64Var(&centerY, "cy", 240, "center y")
	cmd.Flags().Float64Var(&centerZ, "cz", 0, "center z")
	cmd.Flags().Float64Var(&angleStep, "step", math.Pi/10, "angular step (radians)")
	cmd.Flags().Float64Var(&circleSize, "size", 10, "dot radius")
	cmd.Flags().BoolVar(&spheres, "spheres", false, "shade dots as small spheres")
	cmd.Flags().StringVar(&theme, "theme", "slate", "UI theme")
	cmd.Flags().IntVar(&cols, "cols", 72, "canvas columns")
	cmd.Flags().IntVar(&rows, "rows", 30, "canvas rows")
	cmd.Flags().IntVar(&width, "width", 640, "output width (pixels)")
	cmd.Flags().IntVar(&height, "height", 480, "output height (pixels)")
}

// loadSettings resolves the effective config: defaults, then config file,
// then preset, then explicitly set flags.
func loadSettings(cmd *cobra.Command) *config.Config {
	cfg := config.DefaultConfig()
	if configFile != "" {
		if c, err := config.Load(configFile); err == nil {
			cfg = c
		} else {
			fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		}
	}
	if preset != "" {
		if p := config.GetPreset(preset); p != nil {
			cfg = p
		} else {
			fmt.Fprintf(os.Stderr, "unknown preset %q, ignoring\n", preset)
		}
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius = radius
	}
	if cmd.Flags().Changed("cx") {
		cfg.Center.X = centerX
	}
	if cmd.Flags().Changed("cy") {
		cfg.Center.Y = centerY
	}
	if cmd.Flags().Changed("cz") {
		cfg.Center.Z = centerZ
	}
	if cmd.Flags().Changed("step") {
		cfg.AngleStep = angleStep
	}
	if cmd.Flags().Changed("size") {
		cfg.CircleSize = circleSize
	}
	if cmd.Flags().Changed("spheres") {
		cfg.DrawSpheres = spheres
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("cols") {
		cfg.Canvas.Cols = cols
	}
	if cmd.Flags().Changed("rows") {
		cfg.Canvas.Rows = rows
	}
	if cmd.Flags().Changed("width") {
		cfg.Output.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Output.Height = height
	}
	return cfg
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	out := "orbview.png"
	if len(args) == 1 {
		out = args[0]
	}

	if asSVG {
		canvas := surface.NewTerm(cfg.Canvas.Cols, cfg.Canvas.Rows,
			float64(cfg.Output.Width), float64(cfg.Output.Height))
		sph := sphere.New(canvas, cfg.Params())
		sph.Render()
		scaleX := float64(cfg.Output.Width) / float64(cfg.Canvas.Cols)
		svg := export.CanvasToSVG(canvas, scaleX)
		if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d points)\n", out, cfg.PointCount())
		return nil
	}

	surf := surface.NewImage(cfg.Output.Width, cfg.Output.Height)
	sph := sphere.New(surf, cfg.Params())
	sph.Render()
	if err := surf.SavePNG(out); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d points)\n", out, cfg.PointCount())
	return nil
}

func animateScript(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	scr, err := script.Load(args[0])
	if err != nil {
		return err
	}

	surf := surface.NewImage(cfg.Output.Width, cfg.Output.Height)
	sph := sphere.New(surf, cfg.Params())
	disp := gesture.NewDispatcher(sph)
	sph.Render()

	w, err := export.NewRun(outDir, runName)
	if err != nil {
		return err
	}
	var frames []*image.Paletted
	if err := w.WriteFrame(surf.Image()); err != nil {
		return err
	}
	if makeGIF {
		frames = append(frames, export.Palettize(surf.Image()))
	}
	err = scr.Run(disp, func(i int, act gesture.Action) error {
		if err := w.WriteFrame(surf.Image()); err != nil {
			return err
		}
		if makeGIF {
			frames = append(frames, export.Palettize(surf.Image()))
		}
		return nil
	})
	if err != nil {
		return err
	}

	meta := export.RunMetadata{
		Timestamp: time.Now(),
		Width:     cfg.Output.Width,
		Height:    cfg.Output.Height,
		Script:    args[0],
		Preset:    preset,
	}
	if err := w.WriteMetadata(meta); err != nil {
		return err
	}
	if makeGIF {
		f, err := os.Create(w.Dir() + "/orbview.gif")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.EncodeGIF(f, frames, 4); err != nil {
			return err
		}
	}
	fmt.Printf("run %s: %d frames in %s\n", w.ID(), w.Count(), w.Dir())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tSTEP\tPOINTS\tSTYLE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		style := "flat"
		if p.DrawSpheres {
			style = "spheres"
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.4f\t%d\t%s\n",
			name, p.Radius, p.AngleStep, p.PointCount(), style)
	}
	return w.Flush()
}

func benchRender(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	steps := []struct {
		name string
		step float64
	}{
		{"coarse (pi/5)", math.Pi / 5},
		{"default (pi/10)", math.Pi / 10},
		{"dense (pi/20)", math.Pi / 20},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tPOINTS\tCALLS/FRAME\tFRAMES\tTOTAL\tFPS")
	for _, s := range steps {
		p := cfg.Params()
		p.Step = s.step

		rec := &surface.Recorder{}
		sphere.New(rec, p).Render()
		calls := rec.Count(surface.OpCircle) + rec.Count(surface.OpGradient)

		surf := surface.NewImage(cfg.Output.Width, cfg.Output.Height)
		sph := sphere.New(surf, p)
		start := time.Now()
		for i := 0; i < benchFrames; i++ {
			sph.Rotate(3, 2)
		}
		elapsed := time.Since(start)
		fps := float64(benchFrames) / elapsed.Seconds()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%.1f\n",
			s.name, len(sph.Points), calls, benchFrames, elapsed.Round(time.Millisecond), fps)
	}
	return w.Flush()
}
