package svgraster

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpath"
)

// svgFunc builds the outline of a shape element.
// Containers return an empty path.
type svgFunc func(c *cursor, el *svgdoc.Element) (svgpath.Path, error)

var drawFuncs = map[string]svgFunc{
	"svg":      gF, // nested viewports are drawn as groups
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
}

// elements without rendering, skipped with their content
var metadataElements = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
	"defs":     true,
}

// readFloats parses the given attributes, missing ones
// being read as 0.
func readFloats(el *svgdoc.Element, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, key := range keys {
		v, ok := el.Get(key)
		if !ok {
			continue
		}
		f, err := parseLength(v)
		if err != nil {
			return nil, fmt.Errorf("<%s> attribute %s: %w", el.Name, key, err)
		}
		out[i] = f
	}
	return out, nil
}

func gF(*cursor, *svgdoc.Element) (svgpath.Path, error) { return nil, nil } // g does nothing but push the style

func rectF(_ *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	vals, err := readFloats(el, "x", "y", "width", "height", "rx", "ry")
	if err != nil {
		return nil, err
	}
	x, y, w, h, rx, ry := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if w <= 0 || h <= 0 { // not drawn, but not an error
		return nil, nil
	}
	return svgpath.RectPath(svgpath.Point{X: x, Y: y}, w, h, rx, ry), nil
}

func circleF(_ *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	vals, err := readFloats(el, "cx", "cy", "r", "rx", "ry")
	if err != nil {
		return nil, err
	}
	cx, cy, rx, ry := vals[0], vals[1], vals[3], vals[4]
	if el.Has("r") {
		rx, ry = vals[2], vals[2]
	}
	if rx <= 0 || ry <= 0 { // not drawn, but not an error
		return nil, nil
	}
	return svgpath.EllipsePath(svgpath.Point{X: cx, Y: cy}, rx, ry), nil
}

func lineF(_ *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	vals, err := readFloats(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	var p svgpath.Path
	p.Start(svgpath.Point{X: vals[0], Y: vals[1]}).Line(svgpath.Point{X: vals[2], Y: vals[3]})
	return p, nil
}

func readPoints(el *svgdoc.Element) ([]svgpath.Point, error) {
	v, _ := el.Get("points")
	nums, err := svgpath.ParseNumbers(v)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, errors.New("polygon has odd number of points")
	}
	points := make([]svgpath.Point, len(nums)/2)
	for i := range points {
		points[i] = svgpath.Point{X: nums[2*i], Y: nums[2*i+1]}
	}
	return points, nil
}

func polylineF(_ *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	points, err := readPoints(el)
	if err != nil {
		return nil, err
	}
	return svgpath.FromPoints(points), nil
}

func polygonF(c *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	p, err := polylineF(c, el)
	if len(p) > 0 {
		p.Stop(true)
	}
	return p, err
}

func pathF(_ *cursor, el *svgdoc.Element) (svgpath.Path, error) {
	d, _ := el.Get("d")
	return svgpath.ParsePath(d)
}
