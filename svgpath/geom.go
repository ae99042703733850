package svgpath

import "math"

// Point is a location in user space.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Box is an axis aligned rectangle. Min is the top left corner.
type Box struct{ Min, Max Point }

// W returns the width of the box.
func (b Box) W() float64 { return b.Max.X - b.Min.X }

// H returns the height of the box.
func (b Box) H() float64 { return b.Max.Y - b.Min.Y }

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// extend grows the box to include p.
func (b *Box) extend(p Point) {
	b.Min.X, b.Min.Y = math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)
	b.Max.X, b.Max.Y = math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)
}

// Polygon is a closed sequence of points.
type Polygon struct {
	Points []Point
}
