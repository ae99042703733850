package svgdoc

// Node is one unit of tree content: Text, Comment or *Element.
// The set of implementations is closed.
type Node interface {
	isNode()
}

// Text is raw character data. It is written as is, without escaping.
type Text string

// Comment is written as `<!-- text -->`.
type Comment string

func (Text) isNode()     {}
func (Comment) isNode()  {}
func (*Element) isNode() {}

// cloneNode returns a copy of `n` sharing no state with it.
// nil and nil *Element give nil.
func cloneNode(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case Text, Comment:
		return n
	case *Element:
		if n == nil {
			return nil
		}
		return n.Clone()
	default:
		panic("svgdoc: unknown node type")
	}
}

func equalNode(a, b Node) bool {
	switch a := a.(type) {
	case Text:
		bt, ok := b.(Text)
		return ok && a == bt
	case Comment:
		bc, ok := b.(Comment)
		return ok && a == bc
	case *Element:
		be, ok := b.(*Element)
		return ok && a.Equal(be)
	default:
		return false
	}
}
