// Package sphere holds the pseudo-3D sphere model: a point cloud over a
// spherical grid, the gesture transforms that mutate it in place, and the
// depth-sorted render pass that fakes depth on a 2D surface.
package sphere

import (
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/orbview/internal/surface"
)

const (
	// DefaultStep is the angular step of the generation sweep.
	DefaultStep = math.Pi / 10
	// DefaultCircleSize is the dot radius, independent of the sphere radius.
	DefaultCircleSize = 10.0

	shadeMax = 250.0
)

var (
	// Background fills the surface before every frame.
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	// Marker is the accent color of the synthetic center point.
	Marker = color.RGBA{0xc8, 0x28, 0x28, 0xff}
)

// Point is one vertex of the sphere's point-cloud representation.
// Foreground is assigned once at generation from the unshifted sweep angle
// and never recomputed; it drifts from geometric truth as the sphere is
// manipulated, and shading does not consult it.
type Point struct {
	X, Y, Z    float64
	Foreground bool
}

// Params configures a new Model. Zero Step and CircleSize fall back to the
// defaults.
type Params struct {
	X, Y, Z     float64
	R           float64
	Step        float64
	CircleSize  float64
	DrawSpheres bool
}

// Model owns a sphere's point cloud along with its center and radius. Every
// gesture mutates it in place and redraws; it is never reconstructed during
// a session. The surface is a non-owning reference.
type Model struct {
	X, Y, Z     float64
	R           float64
	CircleSize  float64
	DrawSpheres bool
	Points      []Point

	surf surface.Surface
}

// New generates the point cloud by sweeping two independent angles over
// [0, 2π) in fixed steps. The iteration count is fixed up front so the
// point total is exactly ceil(2π/step)² regardless of float accumulation.
func New(surf surface.Surface, p Params) *Model {
	step := p.Step
	if step <= 0 {
		step = DefaultStep
	}
	size := p.CircleSize
	if size <= 0 {
		size = DefaultCircleSize
	}

	n := int(math.Ceil(2 * math.Pi / step))
	m := &Model{
		X:           p.X,
		Y:           p.Y,
		Z:           p.Z,
		R:           p.R,
		CircleSize:  size,
		DrawSpheres: p.DrawSpheres,
		Points:      make([]Point, 0, n*n),
		surf:        surf,
	}

	for i := 0; i < n; i++ {
		angxy := float64(i) * step
		for j := 0; j < n; j++ {
			angyz := float64(j) * step
			m.Points = append(m.Points, Point{
				X:          p.R*math.Cos(angxy)*math.Sin(angyz) + p.X,
				Y:          p.R*math.Sin(angxy)*math.Sin(angyz) + p.Y,
				Z:          p.R*math.Cos(angyz) + p.Z,
				Foreground: math.Cos(angyz) > 0,
			})
		}
	}
	return m
}

// Rotate applies a pointer delta as two axis rotations: about the Y axis by
// (π/2/r)·dx, then about the X axis by (π/2/r)·dy.
func (m *Model) Rotate(dx, dy float64) {
	m.RotateXZ(math.Pi / 2 / m.R * dx)
	m.RotateYZ(math.Pi / 2 / m.R * dy)
	m.Render()
}

// RotateXZ rotates every point about the center-relative Y axis.
func (m *Model) RotateXZ(a float64) {
	s, c := math.Sincos(a)
	for i := range m.Points {
		p := &m.Points[i]
		x, z := p.X-m.X, p.Z-m.Z
		p.X = x*c + z*s + m.X
		p.Z = z*c - x*s + m.Z
	}
}

// RotateYZ rotates every point about the center-relative X axis.
func (m *Model) RotateYZ(a float64) {
	s, c := math.Sincos(a)
	for i := range m.Points {
		p := &m.Points[i]
		y, z := p.Y-m.Y, p.Z-m.Z
		p.Y = y*c + z*s + m.Y
		p.Z = z*c - y*s + m.Z
	}
}

// RotateXY rotates every point about the center-relative Z axis. No gesture
// maps to it; it completes the axis set.
func (m *Model) RotateXY(a float64) {
	s, c := math.Sincos(a)
	for i := range m.Points {
		p := &m.Points[i]
		x, y := p.X-m.X, p.Y-m.Y
		p.X = x*c + y*s + m.X
		p.Y = y*c - x*s + m.Y
	}
}

// Pan translates the cloud and the center in the screen plane. Z is
// untouched.
func (m *Model) Pan(dx, dy float64) {
	for i := range m.Points {
		m.Points[i].X += dx
		m.Points[i].Y += dy
	}
	m.X += dx
	m.Y += dy
	m.Render()
}

// Zoom scales radius, dot size, center, and every point by the same factor
// from the coordinate-space origin — not from the sphere's own center, so a
// sphere away from the origin also drifts. That asymmetry is part of the
// operation's contract.
func (m *Model) Zoom(dx, dy float64) {
	length := math.Round(math.Hypot(dx, dy))
	delta := length
	if dx <= 0 {
		delta = -length
	}
	scale := (m.R + delta) / m.R
	m.R *= scale
	m.CircleSize *= scale
	m.X *= scale
	m.Y *= scale
	m.Z *= scale
	for i := range m.Points {
		p := &m.Points[i]
		p.X *= scale
		p.Y *= scale
		p.Z *= scale
	}
	m.Render()
}

// Stretch is the first hidden deformation: it grows the radius by the drag
// length and pushes each point away from the center plane-wise, without a
// matching rescale, which lops the sphere into an egg shape.
func (m *Model) Stretch(dx, dy float64) {
	m.R += math.Round(math.Hypot(dx, dy))
	for i := range m.Points {
		p := &m.Points[i]
		if p.X > m.X {
			p.X += dx
		} else {
			p.X -= dx
		}
		if p.Y > m.Y {
			p.Y += dy
		} else {
			p.Y -= dy
		}
	}
	m.Render()
}

// Cigar is the second hidden deformation: an anisotropic zoom that scales
// only x and y (origin-relative, factor from the pre-gesture radius) while
// the radius still grows, so the sphere elongates along z.
func (m *Model) Cigar(dx, dy float64) {
	length := math.Round(math.Hypot(dx, dy))
	delta := length
	if dx <= 0 {
		delta = -length
	}
	scale := (m.R + delta) / m.R
	m.R += length
	m.X *= scale
	m.Y *= scale
	for i := range m.Points {
		p := &m.Points[i]
		p.X *= scale
		p.Y *= scale
	}
	m.Render()
}

// Render draws one depth-ordered frame: white background, all points plus a
// synthetic center marker, farthest first so nearer dots paint over them.
func (m *Model) Render() {
	m.RenderTo(m.surf)
}

// RenderTo runs the render pass against an arbitrary surface. Snapshots and
// frame export use it to draw the live model onto a raster backend.
func (m *Model) RenderTo(s surface.Surface) {
	s.SaveStyle()
	defer s.RestoreStyle()

	s.Clear()
	s.FillBackground(Background)

	pts := make([]Point, 0, len(m.Points)+1)
	pts = append(pts, m.Points...)
	pts = append(pts, Point{X: m.X, Y: m.Y, Z: m.Z})

	sort.Slice(pts, func(i, j int) bool { return pts[i].Z < pts[j].Z })

	for _, p := range pts {
		var col color.Color
		if p.X == m.X && p.Y == m.Y && p.Z == m.Z {
			col = Marker
		} else {
			col = m.shade(p.Z)
		}
		if m.DrawSpheres {
			s.FillCircleGradient(p.X, p.Y, m.CircleSize, Background, col)
		} else {
			s.FillCircle(p.X, p.Y, m.CircleSize, col)
		}
	}
}

// shade maps z to a gray level: far points dark, near points light. The
// generated z-range keeps n inside [0, 250]; the clamp only guards the byte
// conversion once the center has drifted off z=0.
func (m *Model) shade(z float64) color.Color {
	n := math.Round((z + m.R) / (2 * m.R) * shadeMax)
	v := uint8(math.Max(0, math.Min(255, n)))
	return color.RGBA{v, v, v, 0xff}
}
