package sphere

import (
	"image/color"
	"math"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/orbview/internal/surface"
)

const tol = 1e-9

func newTestModel(drawSpheres bool) (*Model, *surface.Recorder) {
	rec := &surface.Recorder{}
	m := New(rec, Params{R: 100, DrawSpheres: drawSpheres})
	rec.Reset()
	return m, rec
}

func TestConstructionPointCount(t *testing.T) {
	m, _ := newTestModel(false)

	want := int(math.Ceil(2*math.Pi/DefaultStep)) * int(math.Ceil(2*math.Pi/DefaultStep))
	if len(m.Points) != want {
		t.Fatalf("expected %d points, got %d", want, len(m.Points))
	}
	if want != 400 {
		t.Fatalf("default step should generate 400 points, formula gave %d", want)
	}
}

func TestConstructionPointsOnSphere(t *testing.T) {
	g := gomega.NewWithT(t)
	rec := &surface.Recorder{}
	m := New(rec, Params{X: 12, Y: -7, Z: 3, R: 50})

	for i, p := range m.Points {
		d := math.Sqrt((p.X-12)*(p.X-12) + (p.Y+7)*(p.Y+7) + (p.Z-3)*(p.Z-3))
		g.Expect(d).To(gomega.BeNumerically("~", 50, tol), "point %d off the sphere", i)
	}
}

func TestConstructionDefaults(t *testing.T) {
	m, _ := newTestModel(false)
	if m.CircleSize != DefaultCircleSize {
		t.Errorf("circle size should start at %v regardless of r, got %v", DefaultCircleSize, m.CircleSize)
	}
}

func TestForegroundAssignedAtGeneration(t *testing.T) {
	m, _ := newTestModel(false)

	fg := make([]bool, len(m.Points))
	for i, p := range m.Points {
		fg[i] = p.Foreground
	}

	m.Rotate(40, -25)
	m.Pan(5, 5)

	for i, p := range m.Points {
		if p.Foreground != fg[i] {
			t.Fatalf("point %d foreground flag changed after transforms", i)
		}
	}
}

func TestRotatePreservesRadius(t *testing.T) {
	g := gomega.NewWithT(t)
	m, _ := newTestModel(false)

	m.Rotate(37, -18)

	for i, p := range m.Points {
		d := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		g.Expect(d).To(gomega.BeNumerically("~", 100, 1e-6), "point %d radius drifted", i)
	}
}

func TestRotateXZRoundTrip(t *testing.T) {
	g := gomega.NewWithT(t)
	m, _ := newTestModel(false)

	before := make([]Point, len(m.Points))
	copy(before, m.Points)

	m.RotateXZ(0.73)
	m.RotateXZ(-0.73)

	for i, p := range m.Points {
		g.Expect(p.X).To(gomega.BeNumerically("~", before[i].X, 1e-9))
		g.Expect(p.Z).To(gomega.BeNumerically("~", before[i].Z, 1e-9))
	}
}

func TestPanComposition(t *testing.T) {
	g := gomega.NewWithT(t)
	a, _ := newTestModel(false)
	b, _ := newTestModel(false)

	a.Pan(3, 4)
	a.Pan(-10, 2.5)
	b.Pan(-7, 6.5)

	g.Expect(a.X).To(gomega.BeNumerically("~", b.X, tol))
	g.Expect(a.Y).To(gomega.BeNumerically("~", b.Y, tol))
	for i := range a.Points {
		g.Expect(a.Points[i].X).To(gomega.BeNumerically("~", b.Points[i].X, tol))
		g.Expect(a.Points[i].Y).To(gomega.BeNumerically("~", b.Points[i].Y, tol))
		g.Expect(a.Points[i].Z).To(gomega.BeNumerically("~", b.Points[i].Z, tol))
	}
}

func TestPanScenario(t *testing.T) {
	m, _ := newTestModel(false)
	zBefore := m.Points[0].Z

	m.Pan(10, -5)

	if m.X != 10 || m.Y != -5 || m.Z != 0 {
		t.Fatalf("center = (%v, %v, %v), want (10, -5, 0)", m.X, m.Y, m.Z)
	}
	if m.Points[0].Z != zBefore {
		t.Error("pan must not touch z")
	}
}

func TestZoomScenario(t *testing.T) {
	g := gomega.NewWithT(t)
	m, _ := newTestModel(false)
	before := make([]Point, len(m.Points))
	copy(before, m.Points)

	m.Zoom(50, 0)

	g.Expect(m.R).To(gomega.BeNumerically("~", 150, tol))
	g.Expect(m.CircleSize).To(gomega.BeNumerically("~", 15, tol))
	for i := range m.Points {
		g.Expect(m.Points[i].X).To(gomega.BeNumerically("~", before[i].X*1.5, tol))
		g.Expect(m.Points[i].Y).To(gomega.BeNumerically("~", before[i].Y*1.5, tol))
		g.Expect(m.Points[i].Z).To(gomega.BeNumerically("~", before[i].Z*1.5, tol))
	}
}

func TestZoomInverseRestores(t *testing.T) {
	g := gomega.NewWithT(t)
	m, _ := newTestModel(false)
	before := make([]Point, len(m.Points))
	copy(before, m.Points)

	m.Zoom(50, 0) // r: 100 -> 150
	m.Zoom(-50, 0) // r: 150 -> 100

	g.Expect(m.R).To(gomega.BeNumerically("~", 100, 1e-9))
	for i := range m.Points {
		g.Expect(m.Points[i].X).To(gomega.BeNumerically("~", before[i].X, 1e-9))
		g.Expect(m.Points[i].Y).To(gomega.BeNumerically("~", before[i].Y, 1e-9))
		g.Expect(m.Points[i].Z).To(gomega.BeNumerically("~", before[i].Z, 1e-9))
	}
}

func TestZoomScalesFromOrigin(t *testing.T) {
	g := gomega.NewWithT(t)
	rec := &surface.Recorder{}
	m := New(rec, Params{X: 200, Y: 100, R: 100})

	m.Zoom(50, 0)

	// Origin-relative scale moves the off-origin center too.
	g.Expect(m.X).To(gomega.BeNumerically("~", 300, tol))
	g.Expect(m.Y).To(gomega.BeNumerically("~", 150, tol))
}

func TestStretchGrowsRadiusAndPushesPoints(t *testing.T) {
	m, _ := newTestModel(false)

	var right, left Point
	for _, p := range m.Points {
		if p.X > 50 {
			right = p
		}
		if p.X < -50 {
			left = p
		}
	}

	m.Stretch(10, 0)

	if m.R != 110 {
		t.Fatalf("r = %v, want 110", m.R)
	}
	found := 0
	for _, p := range m.Points {
		if p.X == right.X+10 && p.Y == right.Y && p.Z == right.Z {
			found++
		}
		if p.X == left.X-10 && p.Y == left.Y && p.Z == left.Z {
			found++
		}
	}
	if found < 2 {
		t.Error("points were not pushed away from the center plane")
	}
}

func TestCigarLeavesZAlone(t *testing.T) {
	g := gomega.NewWithT(t)
	m, _ := newTestModel(false)
	before := make([]Point, len(m.Points))
	copy(before, m.Points)

	m.Cigar(50, 0) // scale 1.5 in x/y, r: 100 -> 150

	if m.R != 150 {
		t.Fatalf("r = %v, want 150", m.R)
	}
	for i := range m.Points {
		g.Expect(m.Points[i].X).To(gomega.BeNumerically("~", before[i].X*1.5, tol))
		g.Expect(m.Points[i].Y).To(gomega.BeNumerically("~", before[i].Y*1.5, tol))
		g.Expect(m.Points[i].Z).To(gomega.BeNumerically("~", before[i].Z, tol))
	}
}

func TestRenderFlatCallCounts(t *testing.T) {
	m, rec := newTestModel(false)

	m.Render()

	if got := rec.Count(surface.OpCircle); got != len(m.Points)+1 {
		t.Errorf("expected %d flat circle calls, got %d", len(m.Points)+1, got)
	}
	if got := rec.Count(surface.OpGradient); got != 0 {
		t.Errorf("expected 0 gradient calls, got %d", got)
	}
	if got := rec.Count(surface.OpBackground); got != 1 {
		t.Errorf("expected 1 background fill, got %d", got)
	}
}

func TestRenderGradientCallCounts(t *testing.T) {
	m, rec := newTestModel(true)

	m.Render()

	if got := rec.Count(surface.OpGradient); got != len(m.Points)+1 {
		t.Errorf("expected %d gradient calls, got %d", len(m.Points)+1, got)
	}
	if got := rec.Count(surface.OpCircle); got != 0 {
		t.Errorf("expected 0 flat calls, got %d", got)
	}
}

func TestRenderPaintsFarthestFirst(t *testing.T) {
	m, rec := newTestModel(false)

	m.Render()

	// Gray level is monotone in z, so draw order shows up as a
	// non-decreasing gray ramp (the accent marker excepted).
	last := -1
	for _, c := range rec.Calls {
		if c.Op != surface.OpCircle || c.Color == Marker {
			continue
		}
		v := int(c.Color.(color.RGBA).R)
		if v < last {
			t.Fatalf("gray %d drawn after %d: near point painted before far point", v, last)
		}
		last = v
	}
}

func TestRenderMarksCenter(t *testing.T) {
	m, rec := newTestModel(false)

	m.Render()

	found := false
	for _, c := range rec.Calls {
		if c.Op == surface.OpCircle && c.Color == Marker {
			if c.X != m.X || c.Y != m.Y {
				t.Fatalf("marker at (%v, %v), want center (%v, %v)", c.X, c.Y, m.X, m.Y)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("no accent-colored center marker drawn")
	}
}

func TestRenderStyleDiscipline(t *testing.T) {
	m, rec := newTestModel(false)

	m.Render()

	if len(rec.Calls) < 2 {
		t.Fatal("no calls recorded")
	}
	if rec.Calls[0].Op != surface.OpSave {
		t.Errorf("first call %q, want style save", rec.Calls[0].Op)
	}
	if rec.Calls[len(rec.Calls)-1].Op != surface.OpRestore {
		t.Errorf("last call %q, want style restore", rec.Calls[len(rec.Calls)-1].Op)
	}
}

func TestDegenerateInputPropagates(t *testing.T) {
	m, _ := newTestModel(false)

	// No validation anywhere: NaN flows through and the next frame still
	// renders (degenerately) without panicking.
	m.Pan(math.NaN(), 0)
	m.Render()

	if !math.IsNaN(m.X) {
		t.Error("NaN delta should propagate into the center")
	}
}
