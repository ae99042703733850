package svgunit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common angles, in radians.
const (
	Deg30  = 30 * math.Pi / 180
	Deg45  = 45 * math.Pi / 180
	Deg60  = 60 * math.Pi / 180
	Deg90  = 90 * math.Pi / 180
	Deg120 = 120 * math.Pi / 180
	Deg180 = 180 * math.Pi / 180
	Deg270 = 270 * math.Pi / 180
	Deg360 = 360 * math.Pi / 180
)

// ErrAngleOutOfRange is returned for angles outside of [0, 360] degrees.
var ErrAngleOutOfRange = errors.New("svgunit: angle out of range")

// ParseAngle parses an angle in degrees and returns it in radians.
func ParseAngle(s string) (float64, error) {
	deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("svgunit: invalid angle %q: %w", s, err)
	}
	if deg < 0 || deg > 360 {
		return 0, fmt.Errorf("%w: %g", ErrAngleOutOfRange, deg)
	}
	return deg * math.Pi / 180, nil
}
