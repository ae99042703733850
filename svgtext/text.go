// Package svgtext creates text elements and measures the space
// they take once rendered with a given font.
package svgtext

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpath"
	"github.com/benoitkugler/esvg/svgstyle"
)

var (
	// ErrFontNotFound is returned when no font file matches a family name.
	ErrFontNotFound = errors.New("svgtext: font not found")
	// ErrFontLoading is returned for unreadable font files.
	ErrFontLoading = errors.New("svgtext: invalid font file")
)

// TextStyle groups the style properties of a text element.
type TextStyle struct {
	FontFamily    string
	FontSize      int
	FontWeight    string
	StrokeWidth   float64
	Fill          svgstyle.Colour
	Stroke        svgstyle.Colour
	StrokeOpacity float64
}

// String renders the style as a style attribute value.
func (ts TextStyle) String() string {
	var sb strings.Builder
	for _, c := range [...]struct {
		key   string
		value any
	}{
		{"font-family", ts.FontFamily},
		{"font-size", ts.FontSize},
		{"font-weight", ts.FontWeight},
		{"stroke-width", ts.StrokeWidth},
		{"fill", string(ts.Fill)},
		{"stroke", string(ts.Stroke)},
		{"stroke-opacity", ts.StrokeOpacity},
	} {
		sb.WriteString(c.key)
		sb.WriteByte(':')
		sb.WriteString(svgdoc.NewValue(c.value).Bare())
		sb.WriteByte(';')
	}
	return sb.String()
}

// CreateText returns a text element positioned at `loc`.
func CreateText(text string, loc svgpath.Point, style string) *svgdoc.Element {
	return svgdoc.NewElement("text").
		AddNode(svgdoc.Text(text)).
		Set("x", loc.X).
		Set("y", loc.Y).
		Set("style", style)
}

// FindFont returns the path of the font file matching `name`.
// `name` is either a path or a font file name, with or without
// extension, searched in the user and system font directories.
func FindFont(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty name", ErrFontNotFound)
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFontNotFound, err)
	}
	return path, nil
}

// ParseFace builds a face from the content of a TrueType or OpenType file.
// `size` is in points.
func ParseFace(data []byte, size, dpi float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoading, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoading, err)
	}
	return face, nil
}

// LoadFace reads the font file at `path` and returns a face of `size` points.
func LoadFace(path string, size, dpi float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	return ParseFace(data, size, dpi)
}

// MeasureFace returns the box taken by `text` drawn with `face`.
// The box starts at the origin: its width spans the ink of the glyphs,
// its height the ascent and descent of the face.
func MeasureFace(face font.Face, text string) svgpath.Box {
	bounds, _ := font.BoundString(face, text)
	metrics := face.Metrics()
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	return svgpath.Box{Max: svgpath.Point{X: float64(width), Y: float64(height)}}
}

// MeasureText finds the font of `style`, and measures `text` with it,
// the font size being read as pixels.
// Font files are loaded on each call, and the weight is ignored.
func MeasureText(text string, style TextStyle) (svgpath.Box, error) {
	path, err := FindFont(style.FontFamily)
	if err != nil {
		return svgpath.Box{}, err
	}
	// at 72 dpi, points and pixels match
	face, err := LoadFace(path, float64(style.FontSize), 72)
	if err != nil {
		return svgpath.Box{}, err
	}
	defer face.Close()
	return MeasureFace(face, text), nil
}
