package svgpath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func assertBox(t *testing.T, want, got Box, tol float64) {
	t.Helper()
	assert.InDelta(t, want.Min.X, got.Min.X, tol, "min x")
	assert.InDelta(t, want.Min.Y, got.Min.Y, tol, "min y")
	assert.InDelta(t, want.Max.X, got.Max.X, tol, "max x")
	assert.InDelta(t, want.Max.Y, got.Max.Y, tol, "max y")
}

func TestBoundsLines(t *testing.T) {
	p := FromPoints([]Point{{1, 2}, {5, -3}, {-2, 4}})
	assertBox(t, Box{Point{-2, -3}, Point{5, 4}}, p.Bounds(), delta)

	assert.Equal(t, Box{}, Path(nil).Bounds())
}

func TestBoundsCurves(t *testing.T) {
	// the extremum of the quadratic is at t = 0.5, y = 1
	var p Path
	p.Start(Point{0, 0}).QuadBezier(Point{1, 2}, Point{2, 0})
	assertBox(t, Box{Point{0, 0}, Point{2, 1}}, p.Bounds(), delta)

	// symmetric cubic, extremum at t = 0.5, y = 0.75
	p = nil
	p.Start(Point{0, 0}).CubeBezier(Point{0, 1}, Point{1, 1}, Point{1, 0})
	assertBox(t, Box{Point{0, 0}, Point{1, 0.75}}, p.Bounds(), delta)
}

// the box of a curve contains every point of the curve,
// and is reached by some of them
func TestBoundsRandomCubics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rp := func() Point { return Point{rng.Float64() * 100, rng.Float64() * 100} }
	for range [50]int{} {
		a, b, c, d := rp(), rp(), rp(), rp()
		var p Path
		p.Start(a).CubeBezier(b, c, d)
		box := p.Bounds()

		curve := cubicBezier{a, b, c, d}
		sampled := Box{Min: a, Max: a}
		for i := 0; i <= 1000; i++ {
			pt := curve.evaluateCurve(float64(i) / 1000)
			sampled.extend(pt)
			assert.True(t, pt.X >= box.Min.X-delta && pt.X <= box.Max.X+delta)
			assert.True(t, pt.Y >= box.Min.Y-delta && pt.Y <= box.Max.Y+delta)
		}
		assertBox(t, sampled, box, 0.01)
	}
}

func TestBoundsArc(t *testing.T) {
	circle := EllipsePath(Point{10, 10}, 5, 5)
	assertBox(t, Box{Point{5, 5}, Point{15, 15}}, circle.Bounds(), 1e-3)

	ellipse := EllipsePath(Point{0, 0}, 4, 2)
	assertBox(t, Box{Point{-4, -2}, Point{4, 2}}, ellipse.Bounds(), 1e-3)
}

func TestFlattenArc(t *testing.T) {
	// half circle, from the left to the right, passing above (negative y)
	var p Path
	p.Start(Point{0, 0}).Arc(Point{2, 0}, 1, 1, 0, false, true)
	flat := p.Flatten()

	require.IsType(t, MoveTo{}, flat[0])
	for _, op := range flat[1:] {
		cu, ok := op.(CubicTo)
		require.True(t, ok)
		// every end point lies on the circle
		r := math.Hypot(cu[2].X-1, cu[2].Y)
		assert.InDelta(t, 1, r, 1e-9)
		assert.True(t, cu[2].Y <= 1e-9)
	}
	last := flat[len(flat)-1].(CubicTo)
	assert.Equal(t, Point{2, 0}, last[2])

	assertBox(t, Box{Point{0, -1}, Point{2, 0}}, p.Bounds(), 1e-3)

	// other sweep goes below
	p = nil
	p.Start(Point{0, 0}).Arc(Point{2, 0}, 1, 1, 0, false, false)
	assertBox(t, Box{Point{0, 0}, Point{2, 1}}, p.Bounds(), 1e-3)
}

func TestFlattenArcFlags(t *testing.T) {
	// quarter of the unit circle centered at (0, 1), or three quarters of
	// the one centered at (1, 0)
	var small, large Path
	small.Start(Point{0, 0}).Arc(Point{1, 1}, 1, 1, 0, false, true)
	large.Start(Point{0, 0}).Arc(Point{1, 1}, 1, 1, 0, true, true)

	assertBox(t, Box{Point{0, 0}, Point{1, 1}}, small.Bounds(), 1e-3)
	assertBox(t, Box{Point{0, -1}, Point{2, 1}}, large.Bounds(), 1e-3)
}

func TestFlattenDegenerateArc(t *testing.T) {
	var p Path
	p.Start(Point{0, 0}).Arc(Point{3, 4}, 0, 2, 0, false, false).Arc(Point{3, 4}, 1, 1, 0, false, false)
	assert.Equal(t, Path{MoveTo{0, 0}, LineTo{3, 4}}, p.Flatten())

	// radii too small are scaled up
	p = nil
	p.Start(Point{0, 0}).Arc(Point{4, 0}, 1, 1, 0, false, true)
	assertBox(t, Box{Point{0, -2}, Point{4, 0}}, p.Bounds(), 1e-3)
}

func TestRectPath(t *testing.T) {
	p := RectPath(Point{1, 2}, 10, 5, 0, 0)
	assert.Equal(t, "M1.000 2.000 L11.000 2.000 L11.000 7.000 L1.000 7.000 z", p.ToSVGPath())

	rounded := RectPath(Point{0, 0}, 10, 5, 1, 0)
	assert.Len(t, rounded, 10)
	assertBox(t, Box{Point{0, 0}, Point{10, 5}}, rounded.Bounds(), 1e-3)

	clamped := RectPath(Point{0, 0}, 4, 4, 10, 10)
	assertBox(t, Box{Point{0, 0}, Point{4, 4}}, clamped.Bounds(), 1e-3)
}

func TestBoxHelpers(t *testing.T) {
	b := Box{Point{0, 0}, Point{3, 2}}
	assert.Equal(t, 3.0, b.W())
	assert.Equal(t, 2.0, b.H())
	u := b.Union(Box{Point{-1, 1}, Point{2, 5}})
	assert.Equal(t, Box{Point{-1, 0}, Point{3, 5}}, u)
	assert.Equal(t, Point{4, 6}, Point{1, 2}.Add(Point{3, 4}))
	assert.Equal(t, Point{-2, -2}, Point{1, 2}.Sub(Point{3, 4}))
	assert.Equal(t, Point{2, 4}, Point{1, 2}.Scale(2))
}

func TestElements(t *testing.T) {
	assert.Equal(t, `<circle cx="1" cy="2.5" fill="none" r="3" />`, Circle(Point{1, 2.5}, 3).String())
	assert.Equal(t, `<ellipse cx="0" cy="0" fill="none" rx="2" ry="1" />`, Ellipse(Point{}, 2, 1).String())
	assert.Equal(t, `<rect fill="none" height="4" width="3" x="1" y="2" />`, Rect(Point{1, 2}, 3, 4).String())
	assert.Equal(t, `<line x1="0" x2="1" y1="0" y2="1" />`, Line(Point{0, 0}, Point{1, 1}).String())
	assert.Equal(t, `<polyline fill="none" points="0,0 1.5,2 -3,4" />`,
		Polyline([]Point{{0, 0}, {1.5, 2}, {-3, 4}}).String())

	g := ManyCircles([]Point{{0, 0}, {1, 1}}, 2)
	assert.Equal(t, "g", g.Name)
	assert.Len(t, g.Elements(), 2)
}
