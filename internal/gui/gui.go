// Package gui runs the windowed viewer. The sphere is rendered to an
// offscreen raster surface and blitted to the window each frame; real
// pointer drags with modifier keys drive the gestures.
package gui

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/orbview/internal/config"
	"github.com/san-kum/orbview/internal/gesture"
	"github.com/san-kum/orbview/internal/sphere"
	"github.com/san-kum/orbview/internal/surface"
)

type game struct {
	cfg  *config.Config
	surf *surface.Image
	sph  *sphere.Model
	disp *gesture.Dispatcher

	dragging     bool
	lastX, lastY int
	dirty        bool

	tex  *ebiten.Image
	rgba *image.RGBA
}

func newGame(cfg *config.Config) *game {
	surf := surface.NewImage(cfg.Output.Width, cfg.Output.Height)
	sph := sphere.New(surf, cfg.Params())
	g := &game{
		cfg:   cfg,
		surf:  surf,
		sph:   sph,
		disp:  gesture.NewDispatcher(sph),
		dirty: true,
	}
	g.sph.Render()
	return g
}

func modifiers() gesture.Modifiers {
	var mods gesture.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= gesture.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= gesture.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= gesture.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= gesture.ModMeta
	}
	return mods
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.sph.DrawSpheres = !g.sph.DrawSpheres
		g.sph.Render()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sph = sphere.New(g.surf, g.cfg.Params())
		g.disp = gesture.NewDispatcher(g.sph)
		g.sph.Render()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		name := fmt.Sprintf("orbview_%d.png", time.Now().Unix())
		if err := g.surf.SavePNG(name); err != nil {
			return err
		}
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && (x != g.lastX || y != g.lastY) {
		dx := float64(x - g.lastX)
		dy := float64(y - g.lastY)
		g.lastX, g.lastY = x, y
		g.disp.Handle(gesture.Event{DX: dx, DY: dy, Mods: modifiers()})
		g.dirty = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.tex == nil {
		w, h := g.surf.Size()
		g.tex = ebiten.NewImage(w, h)
		g.rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		g.dirty = true
	}
	if g.dirty {
		draw.Draw(g.rgba, g.rgba.Bounds(), g.surf.Image(), image.Point{}, draw.Src)
		g.tex.WritePixels(g.rgba.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surf.Size()
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config) error {
	g := newGame(cfg)
	ebiten.SetWindowTitle("orbview")
	ebiten.SetWindowSize(cfg.Output.Width, cfg.Output.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
