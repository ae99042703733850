package svgdoc

import (
	"fmt"
	"strings"
)

const styleAttr = "style"

// AddStyle appends a `key:value` clause to the style attribute,
// creating it if needed.
func (e *Element) AddStyle(key string, value any) *Element {
	clause := key + ":" + NewValue(value).Bare()
	if existing, ok := e.Get(styleAttr); ok {
		clause = existing + ";" + clause
	}
	return e.Set(styleAttr, clause)
}

// StyleMap decodes the style attribute into a map.
// A missing style attribute gives an empty map. A clause without
// a ':' separator is reported as ErrMalformedStyle.
func (e *Element) StyleMap() (map[string]string, error) {
	out := make(map[string]string)
	style, ok := e.Get(styleAttr)
	if !ok {
		return out, nil
	}
	for _, clause := range strings.Split(style, ";") {
		if strings.TrimSpace(clause) == "" { // trailing or doubled separator
			continue
		}
		key, value, found := strings.Cut(clause, ":")
		if !found {
			return nil, fmt.Errorf("%w: clause %q in %q", ErrMalformedStyle, clause, style)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}
