package svgpath

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/esvg/svgdoc"
)

// Circle returns an unfilled circle element.
func Circle(p Point, radius float64) *svgdoc.Element {
	return svgdoc.NewElement("circle").
		Set("cx", p.X).Set("cy", p.Y).
		Set("r", radius).
		Set("fill", "none")
}

// ManyCircles returns a group with one circle per point.
func ManyCircles(points []Point, radius float64) *svgdoc.Element {
	g := svgdoc.Group()
	for _, p := range points {
		g.AddChild(Circle(p, radius))
	}
	return g
}

// Ellipse returns an unfilled ellipse element.
func Ellipse(c Point, rx, ry float64) *svgdoc.Element {
	return svgdoc.NewElement("ellipse").
		Set("cx", c.X).Set("cy", c.Y).
		Set("rx", rx).Set("ry", ry).
		Set("fill", "none")
}

// Rect returns an unfilled rectangle element with top left corner `min`.
func Rect(min Point, width, height float64) *svgdoc.Element {
	return svgdoc.NewElement("rect").
		Set("x", min.X).Set("y", min.Y).
		Set("width", width).Set("height", height).
		Set("fill", "none")
}

// Line returns a line element from a to b.
func Line(a, b Point) *svgdoc.Element {
	return svgdoc.NewElement("line").
		Set("x1", a.X).Set("y1", a.Y).
		Set("x2", b.X).Set("y2", b.Y)
}

// Polyline returns an unfilled polyline element.
func Polyline(points []Point) *svgdoc.Element {
	return svgdoc.NewElement("polyline").
		Set("points", formatPoints(points)).
		Set("fill", "none")
}

// formatPoints writes "x1,y1 x2,y2 ...", as expected by
// the `points` attribute.
func formatPoints(points []Point) string {
	chunks := make([]string, len(points))
	for i, p := range points {
		chunks[i] = strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
	}
	return strings.Join(chunks, " ")
}
