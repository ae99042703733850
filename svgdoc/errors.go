package svgdoc

import (
	"errors"
	"fmt"
)

// Kinds of decoding failures. Use errors.Is to test for them.
var (
	// ErrEncoding is returned for invalid text bytes or an unusable declared charset.
	ErrEncoding = errors.New("svgdoc: invalid text encoding")
	// ErrAttributeSyntax is returned for a malformed attribute list.
	ErrAttributeSyntax = errors.New("svgdoc: malformed attributes")
	// ErrMarkupSyntax is returned for a malformed tag.
	ErrMarkupSyntax = errors.New("svgdoc: malformed markup")
	// ErrMalformedDocument is returned when the tags are not properly nested,
	// for instance for a closing tag without matching opening tag.
	ErrMalformedDocument = errors.New("svgdoc: malformed document")
	// ErrEmptyDocument is returned when the input has no complete root element.
	ErrEmptyDocument = errors.New("svgdoc: no root element")
	// ErrMalformedStyle is returned by StyleMap for a clause without ':'.
	ErrMalformedStyle = errors.New("svgdoc: malformed style attribute")
)

// ParseError describes a failure while parsing a document.
// Kind is one of the Err* values above.
type ParseError struct {
	Kind error
	Line int   // 1-based line of the input where the error was detected, 0 if unknown
	Err  error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrXXX) match on the error kind.
func (e *ParseError) Is(target error) bool { return target == e.Kind }

func (e *ParseError) Unwrap() error { return e.Err }
