// Package svgstyle builds the `key:value;` clauses used in style attributes.
package svgstyle

import (
	"strings"

	"github.com/benoitkugler/esvg/svgdoc"
)

// Colour is any paint accepted by renderers: a name ("black"),
// a hex code ("#ff0000") or "none".
type Colour string

func clause(key string, value any) string {
	return key + ":" + svgdoc.NewValue(value).Bare() + ";"
}

// StrokeColour returns "stroke:<c>;".
func StrokeColour(c Colour) string { return clause("stroke", string(c)) }

// Fill returns "fill:<c>;".
func Fill(c Colour) string { return clause("fill", string(c)) }

// Stroke returns the stroke colour, width and opacity clauses.
func Stroke(c Colour, width, opacity float64) string {
	return StrokeColour(c) + clause("stroke-width", width) + clause("stroke-opacity", opacity)
}

// Join concatenates style strings, adding the missing separators.
func Join(styles ...string) string {
	var sb strings.Builder
	for _, s := range styles {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sb.WriteString(s)
		if !strings.HasSuffix(s, ";") {
			sb.WriteByte(';')
		}
	}
	return sb.String()
}
