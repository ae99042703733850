package svgunit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrColour is returned for strings which are not hex colours.
var ErrColour = errors.New("svgunit: invalid colour")

// ParseColour parses a `#rrggbb` or `#rrggbbaa` colour (the `#` is optional)
// and returns its channels in [0, 1]. Alpha defaults to 1.
// Three digit colours are not supported.
func ParseColour(s string) (r, g, b, a float64, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) < 6 {
		return 0, 0, 0, 0, fmt.Errorf("%w %q: too short", ErrColour, s)
	}
	var channels [4]float64
	channels[3] = 1
	parts := []string{hex[0:2], hex[2:4], hex[4:6]}
	if len(hex) > 6 {
		parts = append(parts, hex[6:])
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w %q: %w", ErrColour, s, err)
		}
		channels[i] = float64(v) / 255
	}
	return channels[0], channels[1], channels[2], channels[3], nil
}
