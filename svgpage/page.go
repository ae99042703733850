// Package svgpage describes the physical page a document is drawn on:
// its size in pixels, the borders to keep clear, and handy anchor points.
package svgpage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpath"
	"github.com/benoitkugler/esvg/svgunit"
)

// ErrUnknownPaper is returned by BuildPage for names which are
// neither a preset nor a WxH size.
var ErrUnknownPaper = errors.New("svgpage: unknown paper")

// Borders describe the margins around the edge of a page, in pixels.
// Nothing prevents drawing over them.
type Borders struct {
	Top, Bottom, Left, Right int
}

// DefaultBorders returns half an inch on every side.
func DefaultBorders(dpi int) Borders { return EvenBorders(0.5, dpi) }

// EvenBorders returns borders of `size` inches on every side.
func EvenBorders(size float64, dpi int) Borders {
	px := svgunit.InchesToPixels(size, dpi)
	return Borders{Top: px, Bottom: px, Left: px, Right: px}
}

// Rotate returns the borders turned through 90 degrees,
// matching Page.Rotate.
func (b Borders) Rotate() Borders {
	return Borders{Top: b.Left, Bottom: b.Right, Left: b.Bottom, Right: b.Top}
}

// Page defines the size of a document.
type Page struct {
	// DPI is the number of pixels per inch, used for conversions.
	DPI int
	// Width and Height are in pixels.
	Width, Height int
	Borders       Borders
}

type paperSize struct {
	name          string
	width, height float64 // inches
}

var presets = [...]paperSize{
	{"a5", 5.8, 8.27},
	{"a4", 8.27, 11.7},
	{"a3", 11.7, 16.5},
	{"letter", 8.5, 11.0},
}

func (ps paperSize) page(dpi int, borders Borders) Page {
	return Page{
		DPI:     dpi,
		Width:   svgunit.InchesToPixels(ps.width, dpi),
		Height:  svgunit.InchesToPixels(ps.height, dpi),
		Borders: borders,
	}
}

// A5 returns a portrait A5 page with the default borders.
func A5(dpi int) Page { return A5WithBorder(dpi, DefaultBorders(dpi)) }

func A5WithBorder(dpi int, borders Borders) Page { return presets[0].page(dpi, borders) }

// A4 returns a portrait A4 page with the default borders.
func A4(dpi int) Page { return A4WithBorder(dpi, DefaultBorders(dpi)) }

func A4WithBorder(dpi int, borders Borders) Page { return presets[1].page(dpi, borders) }

// A3 returns a portrait A3 page with the default borders.
func A3(dpi int) Page { return A3WithBorder(dpi, DefaultBorders(dpi)) }

func A3WithBorder(dpi int, borders Borders) Page { return presets[2].page(dpi, borders) }

// Letter returns a portrait US letter page with the default borders.
func Letter(dpi int) Page { return LetterWithBorder(dpi, DefaultBorders(dpi)) }

func LetterWithBorder(dpi int, borders Borders) Page { return presets[3].page(dpi, borders) }

// BuildPage returns the page called `name`, with even borders of `margin` inches.
//
// The name is either a preset (A5, A4, A3 or Letter, case insensitive) or
// two lengths separated by 'x', as in "200mmx8in" (see svgunit.ParseLength).
func BuildPage(name string, dpi int, margin float64) (Page, error) {
	borders := EvenBorders(margin, dpi)

	if strings.Contains(name, "x") {
		parts := strings.Split(name, "x")
		if len(parts) != 2 {
			return Page{}, fmt.Errorf("%w: %q", ErrUnknownPaper, name)
		}
		width, err := svgunit.ParseLength(parts[0], dpi)
		if err != nil {
			return Page{}, fmt.Errorf("page width: %w", err)
		}
		height, err := svgunit.ParseLength(parts[1], dpi)
		if err != nil {
			return Page{}, fmt.Errorf("page height: %w", err)
		}
		return Page{DPI: dpi, Width: width, Height: height, Borders: borders}, nil
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	for _, ps := range presets {
		if ps.name == lower {
			return ps.page(dpi, borders), nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrUnknownPaper, name)
}

// Rotate turns the page through 90 degrees, from portrait to
// landscape and back.
func (p Page) Rotate() Page {
	return Page{DPI: p.DPI, Width: p.Height, Height: p.Width, Borders: p.Borders.Rotate()}
}

// IsPortrait is false for square pages.
func (p Page) IsPortrait() bool { return p.Height > p.Width }

// IsLandscape is false for square pages.
func (p Page) IsLandscape() bool { return p.Width > p.Height }

// DisplayWidth returns the width inside the borders, in pixels.
func (p Page) DisplayWidth() int { return p.Width - p.Borders.Right - p.Borders.Left }

// DisplayHeight returns the height inside the borders, in pixels.
func (p Page) DisplayHeight() int { return p.Height - p.Borders.Top - p.Borders.Bottom }

func (p Page) left() int    { return p.Borders.Left }
func (p Page) right() int   { return p.Width - p.Borders.Right }
func (p Page) top() int     { return p.Borders.Top }
func (p Page) bottom() int  { return p.Height - p.Borders.Bottom }
func (p Page) middleX() int { return p.Borders.Left + p.DisplayWidth()/2 }
func (p Page) middleY() int { return p.Borders.Top + p.DisplayHeight()/2 }

func pt(x, y int) svgpath.Point { return svgpath.Point{X: float64(x), Y: float64(y)} }

// The anchors below are corners and midpoints of the area inside the borders.

func (p Page) TopLeft() svgpath.Point      { return pt(p.left(), p.top()) }
func (p Page) TopRight() svgpath.Point     { return pt(p.right(), p.top()) }
func (p Page) BottomLeft() svgpath.Point   { return pt(p.left(), p.bottom()) }
func (p Page) BottomRight() svgpath.Point  { return pt(p.right(), p.bottom()) }
func (p Page) Center() svgpath.Point       { return pt(p.middleX(), p.middleY()) }
func (p Page) CenterLeft() svgpath.Point   { return pt(p.left(), p.middleY()) }
func (p Page) CenterRight() svgpath.Point  { return pt(p.right(), p.middleY()) }
func (p Page) CenterTop() svgpath.Point    { return pt(p.middleX(), p.top()) }
func (p Page) CenterBottom() svgpath.Point { return pt(p.middleX(), p.bottom()) }

// Namespaces set on document roots.
const (
	NamespaceSVG   = "http://www.w3.org/2000/svg"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
)

// NewDocument returns an empty `svg` root sized for the page:
// the view box is in pixels, the width and height in millimetres.
func NewDocument(p Page) *svgdoc.Element {
	return svgdoc.NewElement("svg").
		Set("xmlns", NamespaceSVG).
		Set("xmlns:xlink", NamespaceXLink).
		Set("viewBox", fmt.Sprintf("0, 0, %d, %d", p.Width, p.Height)).
		Set("width", mm(p.Width, p.DPI)).
		Set("height", mm(p.Height, p.DPI))
}

func mm(px, dpi int) string {
	return strconv.FormatFloat(svgunit.PixelsToMm(px, dpi), 'f', -1, 64) + "mm"
}
