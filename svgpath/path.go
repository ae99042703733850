// Package svgpath implements an abstract representation of
// SVG paths: a builder producing the `d` attribute of path elements,
// a parser for the same syntax, and the geometry needed
// to render or measure them.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/esvg/svgdoc"
)

// Operation groups the different path commands
type Operation interface {
	isOperation()
}

type MoveTo Point

type LineTo Point

// QuadTo stores the control point and the end point.
type QuadTo [2]Point

// CubicTo stores the two control points and the end point.
type CubicTo [3]Point

// ArcTo is an elliptical arc from the current point to `To`.
// Rotation is in degrees.
type ArcTo struct {
	Rx, Ry       float64
	Rotation     float64
	Large, Sweep bool
	To           Point
}

type Close struct{}

func (MoveTo) isOperation()  {}
func (LineTo) isOperation()  {}
func (QuadTo) isOperation()  {}
func (CubicTo) isOperation() {}
func (ArcTo) isOperation()   {}
func (Close) isOperation()   {}

// Path describes a sequence of basic path operations.
// The zero value is an empty path, ready to use.
type Path []Operation

// FromPoints returns a path going through all the points.
// Less than two points give an empty path.
func FromPoints(points []Point) Path {
	var p Path
	if len(points) < 2 {
		return p
	}
	p.Start(points[0])
	for _, pt := range points[1:] {
		p.Line(pt)
	}
	return p
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) *Path {
	*p = append(*p, MoveTo(a))
	return p
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) *Path {
	*p = append(*p, LineTo(b))
	return p
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) *Path {
	*p = append(*p, QuadTo{b, c})
	return p
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) *Path {
	*p = append(*p, CubicTo{b, c, d})
	return p
}

// Arc adds an elliptical arc ending at `to`, with radii rx and ry,
// and x axis rotated by `rotation` degrees.
func (p *Path) Arc(to Point, rx, ry, rotation float64, large, sweep bool) *Path {
	*p = append(*p, ArcTo{Rx: rx, Ry: ry, Rotation: rotation, Large: large, Sweep: sweep, To: to})
	return p
}

// Stop joins the ends of the path if `closeLoop` is true.
func (p *Path) Stop(closeLoop bool) *Path {
	if closeLoop {
		*p = append(*p, Close{})
	}
	return p
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ToSVGPath returns the path data, as used in the `d` attribute.
// Coordinates are written with 3 decimals.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%.3f %.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%.3f %.3f", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%.3f %.3f %.3f %.3f", op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%.3f %.3f %.3f %.3f %.3f %.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case ArcTo:
			chunks[i] = fmt.Sprintf("A%s %s %.3f %c %c %.3f %.3f",
				strconv.FormatFloat(op.Rx, 'f', -1, 64), strconv.FormatFloat(op.Ry, 'f', -1, 64),
				op.Rotation, flag(op.Large), flag(op.Sweep), op.To.X, op.To.Y)
		case Close:
			chunks[i] = "z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Element returns a `path` element, not filled, drawing `p`.
func (p Path) Element() *svgdoc.Element {
	return svgdoc.NewElement("path").Set("fill", "none").Set("d", p.ToSVGPath())
}

// Create returns a path element going through all the points.
func Create(points []Point) *svgdoc.Element {
	return FromPoints(points).Element()
}

// CreateClosed returns a path element going through all the points,
// and back to the first one.
func CreateClosed(points []Point) *svgdoc.Element {
	p := FromPoints(points)
	if len(p) != 0 {
		p.Stop(true)
	}
	return p.Element()
}

// CreatePolygon returns a closed path element following the polygon.
func CreatePolygon(poly Polygon) *svgdoc.Element {
	return CreateClosed(poly.Points)
}
