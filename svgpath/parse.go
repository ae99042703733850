package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrPathSyntax is returned for malformed path data.
var ErrPathSyntax = errors.New("svgpath: invalid path data")

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
)

// ParsePath parses path data, as found in the `d` attribute.
// Relative commands are resolved, so that the returned path only
// uses absolute coordinates. Arcs are kept as ArcTo: see Flatten
// to approximate them by cubic curves.
func ParsePath(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// ParseNumbers reads a list of numbers separated by spaces or commas,
// as found in the `points` or `viewBox` attributes.
func ParseNumbers(s string) ([]float64, error) {
	var c pathCursor
	if err := c.getPoints(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathSyntax, err)
	}
	return c.points, nil
}

// pathCursor is used to parse path data
type pathCursor struct {
	path                   Path
	placeX, placeY         float64
	cntlPtX, cntlPtY       float64
	pathStartX, pathStartY float64
	points                 []float64
	lastKey                byte
	inPath                 bool
}

// readFloat reads a floating point value and adds it to the cursor's points slice.
// A second '.' starts a new number, so that "0.5.5" is read as 0.5 and 0.5.
func (c *pathCursor) readFloat(numStr string) error {
	last := 0
	isFirst := true
	for i, n := range numStr {
		if n == '.' {
			if isFirst {
				isFirst = false
				continue
			}
			f, err := strconv.ParseFloat(numStr[last:i], 64)
			if err != nil {
				return err
			}
			c.points = append(c.points, f)
			last = i
		}
	}
	f, err := strconv.ParseFloat(numStr[last:], 64)
	if err != nil {
		return err
	}
	c.points = append(c.points, f)
	return nil
}

// getPoints reads the numbers of a segment into the cursor's points slice.
// Numbers are separated by spaces, commas or a leading minus sign.
func (c *pathCursor) getPoints(dataPoints string) error {
	lastIndex := -1
	c.points = c.points[:0]
	lr := ' '
	for i, r := range dataPoints {
		isNumeric := unicode.IsDigit(r) || r == '.' || r == 'e' || r == 'E' ||
			(r == '-' || r == '+') && (lr == 'e' || lr == 'E')
		if !isNumeric {
			if r != '-' && r != '+' && r != ',' && !unicode.IsSpace(r) {
				return fmt.Errorf("unexpected character %q", r)
			}
			if lastIndex != -1 {
				if err := c.readFloat(dataPoints[lastIndex:i]); err != nil {
					return err
				}
			}
			if r == '-' || r == '+' {
				lastIndex = i
			} else {
				lastIndex = -1
			}
		} else if lastIndex == -1 {
			lastIndex = i
		}
		lr = r
	}
	if lastIndex != -1 && lastIndex != len(dataPoints) {
		if err := c.readFloat(dataPoints[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

// compilePath splits the data on command letters and
// adds each segment to the path.
func (c *pathCursor) compilePath(svgPath string) error {
	c.init()
	lastIndex := -1
	for i, v := range svgPath {
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex == -1 {
				if strings.TrimSpace(svgPath[:i]) != "" {
					return fmt.Errorf("%w: data before the first command", ErrPathSyntax)
				}
			} else if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
				return err
			}
			lastIndex = i
		}
	}
	if lastIndex == -1 {
		if strings.TrimSpace(svgPath) != "" {
			return fmt.Errorf("%w: missing command", ErrPathSyntax)
		}
		return nil
	}
	return c.addSeg(svgPath[lastIndex:])
}

func reflect(px, py, rx, ry float64) (x, y float64) {
	return px*2 - rx, py*2 - ry
}

func (c *pathCursor) valsToAbs(last float64) {
	for i := 0; i < len(c.points); i++ {
		last += c.points[i]
		c.points[i] = last
	}
}

func (c *pathCursor) pointsToAbs(sz int) {
	lastX := c.placeX
	lastY := c.placeY
	for j := 0; j < len(c.points); j += sz {
		for i := 0; i < sz; i += 2 {
			c.points[i+j] += lastX
			c.points[i+1+j] += lastY
		}
		lastX = c.points[(j+sz)-2]
		lastY = c.points[(j+sz)-1]
	}
}

func (c *pathCursor) hasSetsOrMore(sz int, rel bool) bool {
	if !(len(c.points) >= sz && len(c.points)%sz == 0) {
		return false
	}
	if rel {
		c.pointsToAbs(sz)
	}
	return true
}

func (c *pathCursor) reflectControlQuad() {
	switch c.lastKey {
	case 'q', 'Q', 'T', 't':
		c.cntlPtX, c.cntlPtY = reflect(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

func (c *pathCursor) reflectControlCube() {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		c.cntlPtX, c.cntlPtY = reflect(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

func (c *pathCursor) pt(i int) Point { return Point{c.points[i], c.points[i+1]} }

// addSeg decodes a segment (one command and its numbers)
// into path operations.
func (c *pathCursor) addSeg(segString string) error {
	k := segString[0]
	if err := c.getPoints(segString[1:]); err != nil {
		return fmt.Errorf("%w: command %c: %w", ErrPathSyntax, k, err)
	}
	if !c.inPath && len(c.path) == 0 && k != 'M' && k != 'm' {
		return fmt.Errorf("%w: path must start with a move, got %c", ErrPathSyntax, k)
	}
	if err := c.apply(k); err != nil {
		return fmt.Errorf("%w: command %c: %w", ErrPathSyntax, k, err)
	}
	// So we know how to extend some segment types
	c.lastKey = k
	return nil
}

func (c *pathCursor) apply(k byte) error {
	l := len(c.points)
	rel := false
	switch k {
	case 'z', 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX = c.pathStartX
			c.placeY = c.pathStartY
			c.inPath = false
		}
	case 'm':
		rel = true
		fallthrough
	case 'M':
		if !c.hasSetsOrMore(2, rel) {
			return errParamMismatch
		}
		c.pathStartX, c.pathStartY = c.points[0], c.points[1]
		c.inPath = true
		c.path.Start(c.pt(0))
		// extra pairs are implicit lines
		for i := 2; i < l-1; i += 2 {
			c.path.Line(c.pt(i))
		}
		c.placeX = c.points[l-2]
		c.placeY = c.points[l-1]
	case 'l':
		rel = true
		fallthrough
	case 'L':
		if !c.hasSetsOrMore(2, rel) {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			c.path.Line(c.pt(i))
		}
		c.placeX = c.points[l-2]
		c.placeY = c.points[l-1]
	case 'v':
		c.valsToAbs(c.placeY)
		fallthrough
	case 'V':
		if !c.hasSetsOrMore(1, false) {
			return errParamMismatch
		}
		for _, p := range c.points {
			c.path.Line(Point{c.placeX, p})
		}
		c.placeY = c.points[l-1]
	case 'h':
		c.valsToAbs(c.placeX)
		fallthrough
	case 'H':
		if !c.hasSetsOrMore(1, false) {
			return errParamMismatch
		}
		for _, p := range c.points {
			c.path.Line(Point{p, c.placeY})
		}
		c.placeX = c.points[l-1]
	case 'q':
		rel = true
		fallthrough
	case 'Q':
		if !c.hasSetsOrMore(4, rel) {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			c.path.QuadBezier(c.pt(i), c.pt(i+2))
		}
		c.cntlPtX, c.cntlPtY = c.points[l-4], c.points[l-3]
		c.placeX = c.points[l-2]
		c.placeY = c.points[l-1]
	case 't':
		rel = true
		fallthrough
	case 'T':
		if !c.hasSetsOrMore(2, rel) {
			return errParamMismatch
		}
		for i := 0; i < l-1; i += 2 {
			c.reflectControlQuad()
			c.path.QuadBezier(Point{c.cntlPtX, c.cntlPtY}, c.pt(i))
			c.lastKey = k
			c.placeX = c.points[i]
			c.placeY = c.points[i+1]
		}
	case 'c':
		rel = true
		fallthrough
	case 'C':
		if !c.hasSetsOrMore(6, rel) {
			return errParamMismatch
		}
		for i := 0; i < l-5; i += 6 {
			c.path.CubeBezier(c.pt(i), c.pt(i+2), c.pt(i+4))
		}
		c.cntlPtX, c.cntlPtY = c.points[l-4], c.points[l-3]
		c.placeX = c.points[l-2]
		c.placeY = c.points[l-1]
	case 's':
		rel = true
		fallthrough
	case 'S':
		if !c.hasSetsOrMore(4, rel) {
			return errParamMismatch
		}
		for i := 0; i < l-3; i += 4 {
			c.reflectControlCube()
			c.path.CubeBezier(Point{c.cntlPtX, c.cntlPtY}, c.pt(i), c.pt(i+2))
			c.lastKey = k
			c.cntlPtX, c.cntlPtY = c.points[i], c.points[i+1]
			c.placeX = c.points[i+2]
			c.placeY = c.points[i+3]
		}
	case 'a', 'A':
		if !c.hasSetsOrMore(7, false) {
			return errParamMismatch
		}
		for i := 0; i < l-6; i += 7 {
			if k == 'a' {
				c.points[i+5] += c.placeX
				c.points[i+6] += c.placeY
			}
			c.path.Arc(c.pt(i+5), c.points[i], c.points[i+1], c.points[i+2], c.points[i+3] != 0, c.points[i+4] != 0)
			c.placeX = c.points[i+5]
			c.placeY = c.points[i+6]
		}
	default:
		return errCommandUnknown
	}
	return nil
}

func (c *pathCursor) init() {
	c.placeX = 0.0
	c.placeY = 0.0
	c.points = c.points[:0]
	c.lastKey = ' '
	c.path.Clear()
	c.inPath = false
}
