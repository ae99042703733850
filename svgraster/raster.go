// Package svgraster renders document trees to images,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpath"
	"github.com/benoitkugler/esvg/svgunit"
)

// ErrorMode determines how elements and paints which
// can't be rendered are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips them silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips them, logging a warning.
	WarnErrorMode
	// StrictErrorMode aborts the rendering.
	StrictErrorMode
)

var (
	// ErrUnsupported is returned in StrictErrorMode.
	ErrUnsupported = errors.New("svgraster: unsupported content")
	// ErrNoSize is returned when the image size can't be deduced
	// from the document.
	ErrNoSize = errors.New("svgraster: unknown image size")

	// ErrImageTooLarge is returned when the image would have more
	// pixels than allowed by MaxPixels.
	ErrImageTooLarge = errors.New("svgraster: image too large")

	errUnsupportedPaint = errors.New("unsupported paint")
	errEvenOdd          = errors.New("unsupported fill-rule evenodd")
)

// dpi used to convert physical lengths of the root element.
const defaultDPI = 96

// DefaultMaxPixels bounds the image area when MaxPixels is not used.
const DefaultMaxPixels = 1 << 26

type options struct {
	width, height int
	errorMode     ErrorMode
	logger        *log.Logger
	background    color.Color
	maxPixels     int
}

// Option customizes Rasterize.
type Option func(*options)

// Size forces the size of the output image. The document is
// scaled to fit.
func Size(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithErrorMode sets how unsupported content is handled.
// The default is IgnoreErrorMode.
func WithErrorMode(mode ErrorMode) Option {
	return func(o *options) { o.errorMode = mode }
}

// WithLogger sets the logger used in WarnErrorMode.
// The default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// MaxPixels sets the largest accepted image area, in pixels.
// The default is DefaultMaxPixels.
func MaxPixels(n int) Option {
	return func(o *options) { o.maxPixels = n }
}

// Background paints the whole image before drawing.
// The default is transparent.
func Background(c color.Color) Option {
	return func(o *options) { o.background = c }
}

// Renderer draws paths by forwarding them to
// a rasterx filler and dasher.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing on `img`,
// through a rasterx.ScannerGV.
func NewRenderer(img draw.Image) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{dasher: rasterx.NewDasher(w, h, scanner), filler: rasterx.NewFiller(w, h, scanner)}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		Round:     rasterx.Round,
		Bevel:     rasterx.Bevel,
		Miter:     rasterx.Miter,
		MiterClip: rasterx.MiterClip,
		Arc:       rasterx.Arc,
		ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		ButtCap:      rasterx.ButtCap,
		SquareCap:    rasterx.SquareCap,
		RoundCap:     rasterx.RoundCap,
		CubicCap:     rasterx.CubicCap,
		QuadraticCap: rasterx.QuadraticCap,
	}
)

func toFixed(f float64) fixed.Int26_6 { return fixed.Int26_6(f * 64) }

// addPath sends the path to `adder`, arcs being flattened
// and points transformed by `m`.
func addPath(adder rasterx.Adder, p svgpath.Path, m rasterx.Matrix2D) {
	tr := func(pt svgpath.Point) fixed.Point26_6 {
		return rasterx.ToFixedP(m.Transform(pt.X, pt.Y))
	}
	var (
		start   svgpath.Point
		started bool
	)
	for _, op := range p.Flatten() {
		if _, isMove := op.(svgpath.MoveTo); !isMove && !started {
			// drawing after a close restarts from the subpath start
			adder.Start(tr(start))
			started = true
		}
		switch op := op.(type) {
		case svgpath.MoveTo:
			if started {
				adder.Stop(false)
			}
			start = svgpath.Point(op)
			adder.Start(tr(start))
			started = true
		case svgpath.LineTo:
			adder.Line(tr(svgpath.Point(op)))
		case svgpath.QuadTo:
			adder.QuadBezier(tr(op[0]), tr(op[1]))
		case svgpath.CubicTo:
			adder.CubeBezier(tr(op[0]), tr(op[1]), tr(op[2]))
		case svgpath.Close:
			adder.Stop(true)
			started = false
		}
	}
	if started {
		adder.Stop(false)
	}
}

// scaleFactor returns the mean scaling of `m`, used for line widths.
func scaleFactor(m rasterx.Matrix2D) float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Draw fills then strokes the path with the given style.
func (rd *Renderer) Draw(p svgpath.Path, style PathStyle) {
	if len(p) == 0 {
		return
	}
	m := style.transform
	if style.Fill != nil { // nil color disable filling
		rd.filler.Clear()
		addPath(rd.filler, p, m)
		rd.filler.SetColor(withOpacity(*style.Fill, style.FillOpacity))
		rd.filler.Draw()
	}

	if style.Stroke != nil && style.LineWidth > 0 { // nil color disable lining
		rd.dasher.Clear()
		scale := scaleFactor(m)
		dashes := make([]float64, len(style.Dash))
		for i, d := range style.Dash {
			dashes[i] = d * scale
		}
		rd.dasher.SetStroke(
			toFixed(style.LineWidth*scale), toFixed(style.MiterLimit),
			capToFunc[style.LineCap], capToFunc[style.LineCap], rasterx.FlatGap,
			joinToJoin[style.LineJoin], dashes, style.DashOffset*scale,
		)
		addPath(rd.dasher, p, m)
		rd.dasher.SetColor(withOpacity(*style.Stroke, style.StrokeOpacity))
		rd.dasher.Draw()
	}
}

// cursor walks a document tree
type cursor struct {
	options
	renderer   *Renderer
	styleStack []PathStyle
}

// unsupported applies the error mode to `err`.
func (c *cursor) unsupported(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%w: %w", ErrUnsupported, err)
	case WarnErrorMode:
		c.logger.Warn("skipping unsupported content", "err", err)
	}
	return nil
}

func (c *cursor) walk(el *svgdoc.Element) error {
	if metadataElements[el.Name] {
		return nil
	}
	df, ok := drawFuncs[el.Name]
	if !ok {
		return c.unsupported(fmt.Errorf("cannot process svg element %s", el.Name))
	}
	// Reads all recognized style attributes from the element
	// and places it on top of the styleStack
	if err := c.pushStyle(el); err != nil {
		return err
	}
	defer c.popStyle()

	path, err := df(c, el)
	if err != nil {
		return fmt.Errorf("<%s>: %w", el.Name, err)
	}
	c.renderer.Draw(path, c.currentStyle())

	for _, child := range el.Elements() {
		if err := c.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// viewBox returns the user space rectangle of the root element,
// and whether it is defined.
func viewBox(root *svgdoc.Element) (svgpath.Box, bool, error) {
	v, ok := root.Get("viewBox")
	if !ok {
		return svgpath.Box{}, false, nil
	}
	nums, err := svgpath.ParseNumbers(v)
	if err != nil {
		return svgpath.Box{}, false, fmt.Errorf("viewBox: %w", err)
	}
	if len(nums) != 4 || nums[2] <= 0 || nums[3] <= 0 {
		return svgpath.Box{}, false, fmt.Errorf("viewBox: %w", errParamMismatch)
	}
	return svgpath.Box{
		Min: svgpath.Point{X: nums[0], Y: nums[1]},
		Max: svgpath.Point{X: nums[0] + nums[2], Y: nums[1] + nums[3]},
	}, true, nil
}

// rootDimension reads the width or height of the root element,
// in pixels.
func rootDimension(root *svgdoc.Element, key string) (float64, error) {
	v, ok := root.Get(key)
	if !ok {
		return 0, nil
	}
	v = strings.TrimSpace(v)
	if f, err := parseLength(v); err == nil {
		return f, nil
	}
	px, err := svgunit.ParseLength(v, defaultDPI)
	if err != nil {
		return 0, fmt.Errorf("root %s: %w", key, err)
	}
	return float64(px), nil
}

// Rasterize draws the document `doc` on a new image.
//
// The size of the image is given by the Size option, or else by the view box of
// the root element, or else by its width and height attributes.
func Rasterize(doc *svgdoc.Element, opts ...Option) (*image.RGBA, error) {
	o := options{logger: log.Default(), maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	vb, hasViewBox, err := viewBox(doc)
	if err != nil {
		return nil, err
	}
	width, err := rootDimension(doc, "width")
	if err != nil {
		return nil, err
	}
	height, err := rootDimension(doc, "height")
	if err != nil {
		return nil, err
	}
	if !hasViewBox { // user space is in pixels
		vb.Max = svgpath.Point{X: width, Y: height}
		if width <= 0 || height <= 0 {
			vb.Max = svgpath.Point{X: float64(o.width), Y: float64(o.height)}
		}
	}
	if vb.W() <= 0 || vb.H() <= 0 {
		return nil, ErrNoSize
	}

	fw, fh := float64(o.width), float64(o.height)
	if o.width <= 0 || o.height <= 0 {
		fw, fh = math.Ceil(vb.W()), math.Ceil(vb.H())
	}
	// checked in float to avoid overflows, NaN failing the test
	if !(fw*fh <= float64(o.maxPixels)) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrImageTooLarge, fw, fh)
	}
	w, h := int(fw), int(fh)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if o.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)
	}

	root := DefaultStyle
	root.transform = rasterx.Identity.
		Scale(float64(w)/vb.W(), float64(h)/vb.H()).
		Translate(-vb.Min.X, -vb.Min.Y)
	c := &cursor{
		options:    o,
		renderer:   NewRenderer(img),
		styleStack: []PathStyle{root},
	}
	if err := c.walk(doc); err != nil {
		return nil, err
	}
	return img, nil
}

// RasterizeReader parses the document read from `r` and rasterizes it.
func RasterizeReader(r io.Reader, opts ...Option) (*image.RGBA, error) {
	doc, err := svgdoc.ParseReader(r)
	if err != nil {
		return nil, err
	}
	return Rasterize(doc, opts...)
}

// EncodePNG writes `img` in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
