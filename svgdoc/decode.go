package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseOption customizes the parser.
type ParseOption func(*parser) error

// WithComments keeps the comments found inside the root element
// as Comment nodes. By default they are dropped.
func WithComments() ParseOption {
	return func(p *parser) error {
		p.keepComments = true
		return nil
	}
}

// MaxDepth limits the nesting of elements. Deeper documents
// are rejected with ErrMalformedDocument.
//
// The depth n must be a positive integer.
func MaxDepth(n int) ParseOption {
	return func(p *parser) error {
		if n <= 0 {
			return fmt.Errorf("svgdoc: max depth must be a positive integer")
		}
		p.maxDepth = n
		return nil
	}
}

// Parse builds the element tree described by `input`.
func Parse(input string, opts ...ParseOption) (*Element, error) {
	return ParseReader(strings.NewReader(input), opts...)
}

// ParseBytes is the same as Parse, for a byte slice.
func ParseBytes(input []byte, opts ...ParseOption) (*Element, error) {
	return ParseReader(bytes.NewReader(input), opts...)
}

// ParseReader reads the whole stream and builds the element tree.
// Documents declaring a non UTF-8 encoding are converted on the fly.
func ParseReader(r io.Reader, opts ...ParseOption) (*Element, error) {
	p := &parser{}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return p.run(decoder)
}

// parser is a stack machine: open elements are pushed on start tags
// and popped on end tags. The outermost element is stored in `root`
// once closed.
type parser struct {
	stack []*Element
	root  *Element

	keepComments bool
	maxDepth     int

	decoder *xml.Decoder
}

func (p *parser) run(decoder *xml.Decoder) (*Element, error) {
	p.decoder = decoder
	for {
		// RawToken does not check the nesting of tags: this is done below
		t, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, p.decodeError(err)
		}
		switch t := t.(type) {
		case xml.StartElement:
			err = p.startElement(t)
		case xml.EndElement:
			err = p.endElement(t)
		case xml.CharData:
			err = p.charData(t)
		case xml.Comment:
			p.comment(t)
		case xml.ProcInst, xml.Directive:
			// preamble, ignored
		}
		if err != nil {
			return nil, err
		}
	}
	// unclosed elements are not implicitly closed
	if p.root == nil {
		return nil, p.errorf(ErrEmptyDocument, nil)
	}
	return p.root, nil
}

func (p *parser) top() *Element {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) startElement(se xml.StartElement) error {
	if p.root != nil {
		return p.errorf(ErrMalformedDocument, fmt.Errorf("element <%s> after the root element", qualifiedName(se.Name)))
	}
	if p.maxDepth > 0 && len(p.stack) >= p.maxDepth {
		return p.errorf(ErrMalformedDocument, fmt.Errorf("nesting deeper than %d", p.maxDepth))
	}
	el := NewElement(qualifiedName(se.Name))
	for _, attr := range se.Attr {
		el.Set(qualifiedName(attr.Name), attr.Value)
	}
	p.stack = append(p.stack, el)
	return nil
}

func (p *parser) endElement(ee xml.EndElement) error {
	name := qualifiedName(ee.Name)
	current := p.top()
	if current == nil {
		return p.errorf(ErrMalformedDocument, fmt.Errorf("unexpected closing tag </%s>", name))
	}
	if current.Name != name {
		return p.errorf(ErrMarkupSyntax, fmt.Errorf("element <%s> closed by </%s>", current.Name, name))
	}
	p.stack = p.stack[:len(p.stack)-1]
	if parent := p.top(); parent != nil {
		// current is no longer referenced by the stack: no need to copy it
		parent.Children = append(parent.Children, current)
	} else {
		p.root = current
	}
	return nil
}

func (p *parser) charData(cd xml.CharData) error {
	text := strings.TrimSpace(string(cd))
	if text == "" {
		return nil
	}
	current := p.top()
	if current == nil {
		return p.errorf(ErrMalformedDocument, fmt.Errorf("text %q outside of the root element", text))
	}
	current.Children = append(current.Children, Text(text))
	return nil
}

func (p *parser) comment(c xml.Comment) {
	current := p.top()
	if !p.keepComments || current == nil {
		return
	}
	current.Children = append(current.Children, Comment(strings.TrimSpace(string(c))))
}

func (p *parser) errorf(kind, err error) *ParseError {
	line, _ := p.decoder.InputPos()
	return &ParseError{Kind: kind, Line: line, Err: err}
}

// decodeError sorts the errors of the xml decoder into
// the kinds exposed by this package.
func (p *parser) decodeError(err error) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		kind := ErrMarkupSyntax
		switch {
		case syntax.Msg == "invalid UTF-8", strings.HasPrefix(syntax.Msg, "illegal character code"):
			kind = ErrEncoding
		case strings.Contains(syntax.Msg, "attribute"):
			kind = ErrAttributeSyntax
		}
		return &ParseError{Kind: kind, Line: syntax.Line, Err: err}
	}
	if msg := err.Error(); strings.Contains(msg, "charset") || strings.Contains(msg, "encoding") {
		return p.errorf(ErrEncoding, err)
	}
	return fmt.Errorf("svgdoc: reading input: %w", err)
}

// qualifiedName restores the prefix split by the decoder,
// so that `xlink:href` is kept as is.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
