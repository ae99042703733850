package svgpath

import (
	"math"
)

// This file implements the transformation from
// high level shapes and arcs to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// Flatten returns a copy of the path where arcs are replaced
// by cubic bezier approximations. Other operations are kept as is.
func (p Path) Flatten() Path {
	out := make(Path, 0, len(p))
	var current, start Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = Point(op), Point(op)
			out = append(out, op)
		case LineTo:
			current = Point(op)
			out = append(out, op)
		case QuadTo:
			current = op[1]
			out = append(out, op)
		case CubicTo:
			current = op[2]
			out = append(out, op)
		case ArcTo:
			out.addArc(op, current)
			current = op.To
		case Close:
			current = start
			out = append(out, op)
		}
	}
	return out
}

// addArc approximates the arc starting at `from` with cubic curves.
// Degenerate arcs are drawn as lines.
func (p *Path) addArc(arc ArcTo, from Point) {
	if from == arc.To {
		return
	}
	rx, ry := math.Abs(arc.Rx), math.Abs(arc.Ry)
	if rx == 0 || ry == 0 {
		p.Line(arc.To)
		return
	}
	rotX := arc.Rotation * math.Pi / 180 // Convert degress to radians
	cx, cy := findEllipseCenter(&rx, &ry, rotX, from.X, from.Y, arc.To.X, arc.To.Y, !arc.Sweep, !arc.Large)

	// angles are measured in the frame of the ellipse
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	etaStart := ellipseParam(rx, ry, sinTheta, cosTheta, from.X-cx, from.Y-cy)
	etaEnd := ellipseParam(rx, ry, sinTheta, cosTheta, arc.To.X-cx, arc.To.Y-cy)
	deltaEta := etaEnd - etaStart
	if deltaEta < 0 && arc.Sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta > 0 && !arc.Sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := from.X, from.Y
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = arc.To.X, arc.To.Y // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		p.CubeBezier(Point{lx + alpha*ldx, ly + alpha*ldy},
			Point{px - alpha*dx, py - alpha*dy}, Point{px, py})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipseParam returns the parameter eta of the point (dx, dy),
// relative to the center of the ellipse.
func ellipseParam(a, b, sinTheta, cosTheta, dx, dy float64) float64 {
	// rotate back to the axis of the ellipse
	x := dx*cosTheta + dy*sinTheta
	y := -dx*sinTheta + dy*cosTheta
	return math.Atan2(y/b, x/a)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}

// EllipsePath returns a closed path drawing the ellipse
// centered at `c`, made of two half arcs.
func EllipsePath(c Point, rx, ry float64) Path {
	var p Path
	right, left := Point{c.X + rx, c.Y}, Point{c.X - rx, c.Y}
	p.Start(right)
	p.Arc(left, rx, ry, 0, false, true)
	p.Arc(right, rx, ry, 0, false, true)
	p.Stop(true)
	return p
}

// RectPath returns a closed path drawing the rectangle with top left corner
// `min`, with corners rounded by the radii rx and ry.
// A zero radius takes the value of the other one, and radii are clamped
// to half the sides.
func RectPath(min Point, w, h, rx, ry float64) Path {
	if rx == 0 {
		rx = ry
	} else if ry == 0 {
		ry = rx
	}
	rx, ry = math.Min(math.Abs(rx), w/2), math.Min(math.Abs(ry), h/2)

	var p Path
	maxX, maxY := min.X+w, min.Y+h
	if rx == 0 || ry == 0 {
		p.Start(min)
		p.Line(Point{maxX, min.Y})
		p.Line(Point{maxX, maxY})
		p.Line(Point{min.X, maxY})
		p.Stop(true)
		return p
	}
	p.Start(Point{min.X + rx, min.Y})
	p.Line(Point{maxX - rx, min.Y})
	p.Arc(Point{maxX, min.Y + ry}, rx, ry, 0, false, true)
	p.Line(Point{maxX, maxY - ry})
	p.Arc(Point{maxX - rx, maxY}, rx, ry, 0, false, true)
	p.Line(Point{min.X + rx, maxY})
	p.Arc(Point{min.X, maxY - ry}, rx, ry, 0, false, true)
	p.Line(Point{min.X, min.Y + ry})
	p.Arc(Point{min.X + rx, min.Y}, rx, ry, 0, false, true)
	p.Stop(true)
	return p
}
