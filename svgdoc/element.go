package svgdoc

import (
	"sort"
)

// Element is a tag with its attributes and its ordered children.
// Children are owned by their parent: adding an element to a tree
// stores a copy, so that later changes to the original are not seen by the tree.
type Element struct {
	Name     string
	Children []Node

	attributes map[string]Value
}

// NewElement returns an element with the provided tag name,
// without attributes nor children.
func NewElement(name string) *Element {
	return &Element{Name: name, attributes: make(map[string]Value)}
}

// Group is a short hand for NewElement("g").
func Group() *Element { return NewElement("g") }

// AsNode returns a copy of the element, usable as a child node.
func (e *Element) AsNode() Node { return e.Clone() }

// AddChild appends a copy of `child` to the children of `e`.
// A nil child is ignored.
func (e *Element) AddChild(child *Element) *Element {
	if child == nil {
		return e
	}
	e.Children = append(e.Children, child.Clone())
	return e
}

// AddNode appends an arbitrary node. Element nodes are copied,
// as in AddChild. nil nodes are ignored.
func (e *Element) AddNode(n Node) *Element {
	if c := cloneNode(n); c != nil {
		e.Children = append(e.Children, c)
	}
	return e
}

// Set inserts or overwrites the attribute `key`. See NewValue for
// the accepted types.
func (e *Element) Set(key string, value any) *Element {
	if e.attributes == nil {
		e.attributes = make(map[string]Value)
	}
	e.attributes[key] = NewValue(value)
	return e
}

// Get returns the bare text of the attribute `key`.
func (e *Element) Get(key string) (string, bool) {
	v, ok := e.attributes[key]
	return v.Bare(), ok
}

// Has returns true if the attribute `key` is set.
func (e *Element) Has(key string) bool {
	_, ok := e.attributes[key]
	return ok
}

// Remove deletes the attribute `key`, if present.
func (e *Element) Remove(key string) *Element {
	delete(e.attributes, key)
	return e
}

// Len returns the number of attributes.
func (e *Element) Len() int { return len(e.attributes) }

// Keys returns the attribute names, sorted.
func (e *Element) Keys() []string {
	keys := make([]string, 0, len(e.attributes))
	for k := range e.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Attributes returns a copy of the attributes, as bare text.
func (e *Element) Attributes() map[string]string {
	out := make(map[string]string, len(e.attributes))
	for k, v := range e.attributes {
		out[k] = v.Bare()
	}
	return out
}

// ShallowClone returns a copy of this element without its children.
func (e *Element) ShallowClone() *Element {
	out := NewElement(e.Name)
	for k, v := range e.attributes {
		out.attributes[k] = v
	}
	return out
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	out := e.ShallowClone()
	if len(e.Children) != 0 {
		out.Children = make([]Node, len(e.Children))
		for i, c := range e.Children {
			out.Children[i] = cloneNode(c)
		}
	}
	return out
}

// Elements returns the children which are elements, in order.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Equal reports whether the two trees have the same tag, the same attributes
// and the same children, recursively. Attribute order is not significant.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Name != other.Name || len(e.attributes) != len(other.attributes) ||
		len(e.Children) != len(other.Children) {
		return false
	}
	for k, v := range e.attributes {
		ov, ok := other.attributes[k]
		if !ok || ov != v {
			return false
		}
	}
	for i := range e.Children {
		if !equalNode(e.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}
