// Package surface abstracts the 2D drawing targets the sphere renders onto.
//
// The renderer only ever needs filled circles, a full-surface background
// fill, and save/restore of ambient drawing state. Three backends implement
// the contract:
//
//   - [Image]: software raster canvas, exportable to PNG
//   - [Term]: colored terminal cell canvas for the TUI
//   - [Recorder]: call log for tests and draw-call accounting
package surface

import "image/color"

// Surface is the drawing target contract consumed by the renderer. A
// surface is a shared external resource; callers bracket their drawing with
// SaveStyle/RestoreStyle so the ambient state survives the pass.
type Surface interface {
	// Clear resets the surface to blank.
	Clear()

	// FillBackground floods the whole surface with c.
	FillBackground(c color.Color)

	// FillCircle draws a flat-filled circle of radius r centered at (x, y).
	FillCircle(x, y, r float64, c color.Color)

	// FillCircleGradient draws a circle filled with a radial gradient from
	// inner to outer, the focal point offset toward the upper-left for a
	// lighting effect.
	FillCircleGradient(x, y, r float64, inner, outer color.Color)

	SaveStyle()
	RestoreStyle()
}
