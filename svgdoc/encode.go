package svgdoc

import (
	"io"
	"strings"
)

// DocumentTag is the root tag triggering the preamble in pretty mode.
const DocumentTag = "svg"

// Preamble is written before a pretty printed `svg` root.
const Preamble = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
	`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.0//EN" "http://www.w3.org/TR/2001/REC-SVG-20010904/DTD/svg10.dtd">` + "\n"

const defaultIndent = "\t"

// EncodeOption customizes Encode.
type EncodeOption func(*encoder)

// Indent sets the string written once per nesting level in pretty mode.
// The default is a tab.
func Indent(unit string) EncodeOption {
	return func(e *encoder) { e.indent = unit }
}

// Compact selects the compact output of Element.String.
func Compact() EncodeOption {
	return func(e *encoder) { e.compact = true }
}

// WithPreamble forces the preamble on or off. By default, it is written
// in pretty mode only, when the root tag is `svg`.
func WithPreamble(enabled bool) EncodeOption {
	return func(e *encoder) { e.preamble = &enabled }
}

type encoder struct {
	sb       strings.Builder
	indent   string
	compact  bool
	preamble *bool
}

// Encode writes the text form of `root` to `w`. Only errors from
// `w` are reported: serialization itself never fails.
func Encode(w io.Writer, root *Element, opts ...EncodeOption) error {
	enc := encoder{indent: defaultIndent}
	for _, opt := range opts {
		opt(&enc)
	}
	enc.encode(root)
	_, err := io.WriteString(w, enc.sb.String())
	return err
}

func (enc *encoder) encode(root *Element) {
	withPreamble := !enc.compact && root.Name == DocumentTag
	if enc.preamble != nil {
		withPreamble = *enc.preamble
	}
	if withPreamble {
		enc.sb.WriteString(Preamble)
	}
	if enc.compact {
		enc.writeCompact(root)
	} else {
		enc.writePretty(root, 0)
	}
}

// String returns the compact text form of the element.
func (e *Element) String() string {
	var enc encoder
	enc.writeCompact(e)
	return enc.sb.String()
}

// PrettyString returns the indented text form of the element,
// preceded by the preamble for an `svg` root.
func (e *Element) PrettyString() string {
	enc := encoder{indent: defaultIndent}
	enc.encode(e)
	return enc.sb.String()
}

// writeOpen writes `<name k="v" ...`, with attributes sorted by key.
func (enc *encoder) writeOpen(e *Element) {
	enc.sb.WriteByte('<')
	enc.sb.WriteString(e.Name)
	for _, k := range e.Keys() {
		enc.sb.WriteByte(' ')
		enc.sb.WriteString(k)
		enc.sb.WriteByte('=')
		enc.sb.WriteString(e.attributes[k].Quoted())
	}
}

func (enc *encoder) writeCompact(e *Element) {
	enc.writeOpen(e)
	if len(e.Children) == 0 {
		enc.sb.WriteString(" />")
		return
	}
	enc.sb.WriteString(">\n")
	for _, child := range e.Children {
		switch child := child.(type) {
		case Text:
			enc.sb.WriteString(string(child))
		case Comment:
			enc.writeComment(child)
		case *Element:
			enc.writeCompact(child)
		}
		enc.sb.WriteByte('\n')
	}
	enc.sb.WriteString("</")
	enc.sb.WriteString(e.Name)
	enc.sb.WriteByte('>')
}

func (enc *encoder) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		enc.sb.WriteString(enc.indent)
	}
}

func (enc *encoder) writePretty(e *Element, depth int) {
	enc.writeIndent(depth)
	enc.writeOpen(e)
	if len(e.Children) == 0 {
		enc.sb.WriteString(" />\n")
		return
	}
	enc.sb.WriteString(">\n")
	for _, child := range e.Children {
		switch child := child.(type) {
		case Text:
			enc.writeIndent(depth + 1)
			enc.sb.WriteString(string(child))
			enc.sb.WriteByte('\n')
		case Comment:
			enc.writeIndent(depth + 1)
			enc.writeComment(child)
			enc.sb.WriteByte('\n')
		case *Element:
			enc.writePretty(child, depth+1)
		}
	}
	enc.writeIndent(depth)
	enc.sb.WriteString("</")
	enc.sb.WriteString(e.Name)
	enc.sb.WriteString(">\n")
}

func (enc *encoder) writeComment(c Comment) {
	enc.sb.WriteString("<!-- ")
	enc.sb.WriteString(string(c))
	enc.sb.WriteString(" -->")
}
