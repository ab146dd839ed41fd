package viz

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbview/internal/config"
	"github.com/san-kum/orbview/internal/export"
	"github.com/san-kum/orbview/internal/gesture"
	"github.com/san-kum/orbview/internal/sphere"
	"github.com/san-kum/orbview/internal/surface"
)

const (
	historyCapacity = 120
	gifPath         = "orbview.gif"
)

// App drives the interactive terminal view. Pointer drags on the canvas
// feed the gesture dispatcher, which mutates the sphere and re-renders
// onto the cell canvas.
type App struct {
	cfg    *config.Config
	canvas *surface.Term
	sph    *sphere.Model
	disp   *gesture.Dispatcher
	styles styleSet

	dragging     bool
	lastX, lastY int
	lastAction   gesture.Action
	gestureCount int
	frameMS      []float64

	recording bool
	frames    []*image.Paletted
	status    string
	showHelp  bool
}

// NewApp builds the app from a config.
func NewApp(cfg *config.Config) *App {
	canvas := surface.NewTerm(cfg.Canvas.Cols, cfg.Canvas.Rows,
		float64(cfg.Output.Width), float64(cfg.Output.Height))
	sph := sphere.New(canvas, cfg.Params())
	SetTheme(cfg.Theme)
	return &App{
		cfg:     cfg,
		canvas:  canvas,
		sph:     sph,
		disp:    gesture.NewDispatcher(sph),
		styles:  newStyles(CurrentTheme),
		frameMS: make([]float64, 0, historyCapacity),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.reset()
		case "d":
			a.sph.DrawSpheres = !a.sph.DrawSpheres
			a.sph.Render()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
			a.styles = newStyles(CurrentTheme)
		case "s":
			a.snapshot()
		case "g":
			if a.recording {
				a.saveGIF()
				a.recording = false
				a.frames = nil
			} else {
				a.recording = true
				a.frames = make([]*image.Paletted, 0)
				a.status = "recording"
			}
		case "?":
			a.showHelp = !a.showHelp
		}
	case tea.MouseMsg:
		a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			a.dragging = true
			a.lastX, a.lastY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		a.dragging = false
	case tea.MouseActionMotion:
		if !a.dragging {
			return
		}
		cellW, cellH := a.canvas.PixelsPerCell()
		dx := float64(msg.X-a.lastX) * cellW
		dy := float64(msg.Y-a.lastY) * cellH
		a.lastX, a.lastY = msg.X, msg.Y
		if dx == 0 && dy == 0 {
			return
		}
		var mods gesture.Modifiers
		if msg.Shift {
			mods |= gesture.ModShift
		}
		if msg.Ctrl {
			mods |= gesture.ModCtrl
		}
		if msg.Alt {
			mods |= gesture.ModAlt
		}
		start := time.Now()
		a.lastAction = a.disp.Handle(gesture.Event{DX: dx, DY: dy, Mods: mods})
		a.gestureCount++
		a.pushFrameTime(time.Since(start))
		if a.recording {
			a.captureFrame()
		}
	}
}

func (a *App) pushFrameTime(d time.Duration) {
	a.frameMS = append(a.frameMS, float64(d.Microseconds())/1000.0)
	if len(a.frameMS) > historyCapacity {
		a.frameMS = a.frameMS[1:]
	}
}

// reset rebuilds the sphere from the original config.
func (a *App) reset() {
	a.sph = sphere.New(a.canvas, a.cfg.Params())
	a.disp = gesture.NewDispatcher(a.sph)
	a.lastAction = gesture.Rotate
	a.gestureCount = 0
	a.frameMS = a.frameMS[:0]
	a.status = ""
	a.sph.Render()
}

// snapshot renders the current sphere state to a PNG at full output
// resolution, independent of the cell canvas.
func (a *App) snapshot() {
	img := surface.NewImage(a.cfg.Output.Width, a.cfg.Output.Height)
	a.sph.RenderTo(img)
	name := fmt.Sprintf("orbview_%d.png", time.Now().Unix())
	if err := img.SavePNG(name); err != nil {
		a.status = "snapshot failed: " + err.Error()
		return
	}
	a.status = "saved " + name
}

// captureFrame rasterizes the cell canvas into a paletted GIF frame.
func (a *App) captureFrame() {
	cellW, cellH := 8, 16
	imgW, imgH := a.canvas.Cols()*cellW, a.canvas.Rows()*cellH
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(a.canvas.Background()), image.Point{}, draw.Src)
	for row := 0; row < a.canvas.Rows(); row++ {
		for col := 0; col < a.canvas.Cols(); col++ {
			c, ok := a.canvas.CellColor(col, row)
			if !ok {
				continue
			}
			block := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
			draw.Draw(img, block, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	a.frames = append(a.frames, export.Palettize(img))
}

func (a *App) saveGIF() {
	if len(a.frames) == 0 {
		a.status = "nothing recorded"
		return
	}
	f, err := os.Create(gifPath)
	if err != nil {
		a.status = "record failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := export.EncodeGIF(f, a.frames, 4); err != nil {
		a.status = "record failed: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("saved %s (%d frames)", gifPath, len(a.frames))
}

// View renders the canvas panel next to a stats panel.
func (a *App) View() string {
	canvasView := a.styles.canvas.Render(a.canvas.String())

	var s strings.Builder
	s.WriteString(a.styles.header.Render("ORBVIEW") + "\n")
	if a.status != "" {
		s.WriteString(a.styles.status.Render(a.status) + "\n")
	}
	s.WriteString("\n")
	s.WriteString(a.statLine("Center", fmt.Sprintf("(%.0f, %.0f, %.0f)", a.sph.X, a.sph.Y, a.sph.Z)))
	s.WriteString(a.statLine("Radius", fmt.Sprintf("%.1f", a.sph.R)))
	s.WriteString(a.statLine("Dot size", fmt.Sprintf("%.1f", a.sph.CircleSize)))
	s.WriteString(a.statLine("Points", fmt.Sprintf("%d", len(a.sph.Points))))
	style := "flat"
	if a.sph.DrawSpheres {
		style = "spheres"
	}
	s.WriteString(a.statLine("Style", style))
	s.WriteString(a.statLine("Theme", CurrentTheme.Name))
	s.WriteString(a.statLine("Gestures", fmt.Sprintf("%d", a.gestureCount)))
	if a.gestureCount > 0 {
		s.WriteString(a.statLine("Last", a.lastAction.String()))
	}
	if a.recording {
		s.WriteString(a.statLine("Recording", fmt.Sprintf("%d frames", len(a.frames))))
	}
	if len(a.frameMS) > 1 {
		chart := asciigraph.Plot(a.frameMS,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("render ms"))
		s.WriteString("\n" + a.styles.chart.Render(chart) + "\n")
	}
	s.WriteString(a.styles.help.Render("\n" +
		"drag:rotate shift:pan ctrl:zoom\n" +
		"shift+alt:stretch ctrl+alt:cigar\n" +
		"D:style S:snap G:rec T:theme\n" +
		"R:reset ?:help Q:quit"))
	statsView := a.styles.stats.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if a.showHelp {
		return a.styles.box.Render(helpText) + "\n" + mainView
	}
	return mainView
}

func (a *App) statLine(label, value string) string {
	return a.styles.label.Width(10).Render(label) + a.styles.value.Render(value) + "\n"
}

const helpText = `MOUSE GESTURES

  drag              rotate the sphere
  shift + drag      pan
  ctrl + drag       zoom (drag right zooms in)
  shift+alt + drag  stretch along the drag
  ctrl+alt + drag   inflate into a cigar

KEYS

  d  toggle flat / shaded spheres
  s  save a PNG snapshot
  g  toggle GIF recording
  t  cycle themes
  r  reset the sphere
  ?  toggle this help
  q  quit`

// Run starts the interactive terminal viewer.
func Run(cfg *config.Config) error {
	app := NewApp(cfg)
	app.sph.Render()
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
