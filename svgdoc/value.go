package svgdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the text payload of an attribute.
// It may be built from any scalar, so that numeric attributes
// can be set without formatting them by hand.
type Value struct {
	text string
}

// NewValue converts `v` to its textual form.
// Integers and unsigned integers use base 10, floats use the shortest
// representation without exponent, booleans are `true` or `false`.
// Other types fall back to fmt.Sprint.
func NewValue(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case string:
		return Value{v}
	case bool:
		return Value{strconv.FormatBool(v)}
	case int:
		return Value{strconv.FormatInt(int64(v), 10)}
	case int8:
		return Value{strconv.FormatInt(int64(v), 10)}
	case int16:
		return Value{strconv.FormatInt(int64(v), 10)}
	case int32:
		return Value{strconv.FormatInt(int64(v), 10)}
	case int64:
		return Value{strconv.FormatInt(v, 10)}
	case uint:
		return Value{strconv.FormatUint(uint64(v), 10)}
	case uint8:
		return Value{strconv.FormatUint(uint64(v), 10)}
	case uint16:
		return Value{strconv.FormatUint(uint64(v), 10)}
	case uint32:
		return Value{strconv.FormatUint(uint64(v), 10)}
	case uint64:
		return Value{strconv.FormatUint(v, 10)}
	case uintptr:
		return Value{strconv.FormatUint(uint64(v), 10)}
	case float32:
		return Value{strconv.FormatFloat(float64(v), 'f', -1, 32)}
	case float64:
		return Value{strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return Value{fmt.Sprint(v)}
	}
}

// Bare returns the raw, unquoted text.
func (v Value) Bare() string { return v.text }

// String returns a readable representation of a Value.
func (v Value) String() string { return v.text }

// Quoted returns the text as it is written in an attribute:
// in double quotes, or in single quotes if the text contains a double quote.
// No other escaping is done, so a value containing both kinds of quotes
// is not supported.
func (v Value) Quoted() string {
	if strings.ContainsRune(v.text, '"') {
		return "'" + v.text + "'"
	}
	return `"` + v.text + `"`
}
