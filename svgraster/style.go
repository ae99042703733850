package svgraster

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpath"
	"github.com/benoitkugler/esvg/svgunit"
)

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join.
// ArcClip mode is like MiterClip applied to arcs, and is not part of the SVG2.0
// standard.
const (
	Arc JoinMode = iota // New in SVG2
	Round
	Bevel
	Miter
	MiterClip // New in SVG2
	ArcClip
)

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
	CubicCap     // Not part of the SVG2.0 standard.
	QuadraticCap // Not part of the SVG2.0 standard.
)

// PathStyle holds the state of the style stack, applied to
// every shape drawn.
type PathStyle struct {
	// Fill and Stroke are nil for "none".
	Fill, Stroke               *color.NRGBA
	FillOpacity, StrokeOpacity float64
	LineWidth                  float64
	MiterLimit                 float64
	LineJoin                   JoinMode
	LineCap                    CapMode
	Dash                       []float64 // nil or empty for solid lines
	DashOffset                 float64

	transform rasterx.Matrix2D // current transform
}

// DefaultStyle sets the default PathStyle to fill black,
// full opacity, no stroke, ButtCap line end and Miter line connect.
var DefaultStyle = PathStyle{
	Fill:              &color.NRGBA{A: 0xff},
	FillOpacity:       1,
	StrokeOpacity:     1,
	LineWidth:         1,
	MiterLimit:        4,
	LineJoin:          Miter,
	LineCap:           ButtCap,
	transform:         rasterx.Identity,
}

// parsePaint reads a paint value, returning nil for "none".
// Supported forms are #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b)
// and the named colours.
func parsePaint(v string) (*color.NRGBA, error) {
	v = strings.TrimSpace(v)
	lower := strings.ToLower(v)
	switch {
	case lower == "none" || lower == "transparent":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		if len(hex) == 3 { // shorthand
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		r, g, b, a, err := svgunit.ParseColour(hex)
		if err != nil {
			return nil, err
		}
		return &color.NRGBA{to8(r), to8(g), to8(b), to8(a)}, nil
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		vals, err := svgpath.ParseNumbers(v[4 : len(v)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUnsupportedPaint, err)
		}
		if len(vals) != 3 {
			return nil, fmt.Errorf("%w: %s", errUnsupportedPaint, v)
		}
		return &color.NRGBA{clamp8(vals[0]), clamp8(vals[1]), clamp8(vals[2]), 0xff}, nil
	}
	c, ok := colornames.Map[lower]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnsupportedPaint, v)
	}
	out := color.NRGBA{c.R, c.G, c.B, c.A}
	return &out, nil
}

func to8(f float64) uint8 { return clamp8(f * 255) }

func clamp8(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, f))))
}

// withOpacity returns `c` with its alpha scaled by `opacity`.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = clamp8(float64(c.A) * opacity)
	return c
}

// parseLength reads a coordinate, with an optional px suffix.
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// readStyleAttr applies one style property to `curStyle`.
// Unknown properties are ignored.
func (c *cursor) readStyleAttr(curStyle *PathStyle, k, v string) error {
	switch k {
	case "fill":
		paint, err := parsePaint(v)
		if err != nil {
			return c.unsupported(err)
		}
		curStyle.Fill = paint
	case "stroke":
		paint, err := parsePaint(v)
		if err != nil {
			return c.unsupported(err)
		}
		curStyle.Stroke = paint
	case "stroke-linecap":
		switch v {
		case "butt":
			curStyle.LineCap = ButtCap
		case "round":
			curStyle.LineCap = RoundCap
		case "square":
			curStyle.LineCap = SquareCap
		case "cubic":
			curStyle.LineCap = CubicCap
		case "quadratic":
			curStyle.LineCap = QuadraticCap
		}
	case "stroke-linejoin":
		switch v {
		case "miter":
			curStyle.LineJoin = Miter
		case "miter-clip":
			curStyle.LineJoin = MiterClip
		case "arc-clip":
			curStyle.LineJoin = ArcClip
		case "round":
			curStyle.LineJoin = Round
		case "arc":
			curStyle.LineJoin = Arc
		case "bevel":
			curStyle.LineJoin = Bevel
		}
	case "stroke-miterlimit":
		mLimit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		curStyle.MiterLimit = mLimit
	case "stroke-width":
		width, err := parseLength(v)
		if err != nil {
			return err
		}
		curStyle.LineWidth = width
	case "stroke-dashoffset":
		dashOffset, err := parseLength(v)
		if err != nil {
			return err
		}
		curStyle.DashOffset = dashOffset
	case "stroke-dasharray":
		if v == "none" {
			curStyle.Dash = nil
			break
		}
		dashes, err := svgpath.ParseNumbers(v)
		if err != nil {
			return err
		}
		curStyle.Dash = dashes
	case "fill-rule":
		// rasterx.ScannerGV only implements the non-zero rule
		if v == "evenodd" {
			return c.unsupported(errEvenOdd)
		}
	case "opacity", "stroke-opacity", "fill-opacity":
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		if k != "stroke-opacity" {
			curStyle.FillOpacity *= op
		}
		if k != "fill-opacity" {
			curStyle.StrokeOpacity *= op
		}
	case "transform":
		m, err := parseTransform(curStyle.transform, v)
		if err != nil {
			return err
		}
		curStyle.transform = m
	}
	return nil
}

// pushStyle reads the presentation attributes and the style attribute
// of `el`, and pushes the resulting style on the stack.
// Properties in the style attribute take precedence.
func (c *cursor) pushStyle(el *svgdoc.Element) error {
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, key := range el.Keys() {
		if key == "style" {
			continue
		}
		v, _ := el.Get(key)
		if err := c.readStyleAttr(&curStyle, strings.ToLower(key), strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("<%s> attribute %s: %w", el.Name, key, err)
		}
	}
	props, err := el.StyleMap()
	if err != nil {
		return err
	}
	for k, v := range props {
		if k == "transform" {
			continue
		}
		if err := c.readStyleAttr(&curStyle, strings.ToLower(k), v); err != nil {
			return fmt.Errorf("<%s> style %s: %w", el.Name, k, err)
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

func (c *cursor) popStyle() {
	c.styleStack = c.styleStack[:len(c.styleStack)-1]
}

func (c *cursor) currentStyle() PathStyle {
	return c.styleStack[len(c.styleStack)-1]
}
