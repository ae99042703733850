package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOverwrites(t *testing.T) {
	el := NewElement("rect")
	el.Set("x", 1).Set("y", 2).Set("x", "3")

	assert.Equal(t, 2, el.Len())
	x, ok := el.Get("x")
	require.True(t, ok)
	assert.Equal(t, "3", x)

	_, ok = el.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"x", "y"}, el.Keys())

	el.Remove("x")
	assert.False(t, el.Has("x"))
	assert.Equal(t, map[string]string{"y": "2"}, el.Attributes())
}

func TestZeroElementSet(t *testing.T) {
	var el Element
	el.Name = "g"
	el.Set("id", "a")
	v, _ := el.Get("id")
	assert.Equal(t, "a", v)
}

func TestAddChildCopies(t *testing.T) {
	parent := Group()
	child := NewElement("circle").Set("r", 1)
	parent.AddChild(child)

	child.Set("r", 2)
	child.AddChild(NewElement("title"))

	require.Len(t, parent.Children, 1)
	added := parent.Children[0].(*Element)
	r, _ := added.Get("r")
	assert.Equal(t, "1", r)
	assert.Empty(t, added.Children)
}

func TestAddNode(t *testing.T) {
	el := NewElement("text")
	inner := NewElement("tspan")
	el.AddNode(Text("hello")).AddNode(Comment("note")).AddNode(inner)
	inner.Set("x", 1)

	require.Len(t, el.Children, 3)
	assert.Equal(t, Text("hello"), el.Children[0])
	assert.Equal(t, Comment("note"), el.Children[1])
	assert.False(t, el.Children[2].(*Element).Has("x"))
	assert.Len(t, el.Elements(), 1)
}

func TestAddNil(t *testing.T) {
	var nilElement *Element
	el := Group().
		AddChild(nil).
		AddNode(nil).
		AddNode(nilElement).
		AddChild(NewElement("rect"))

	require.Len(t, el.Children, 1)
	assert.Equal(t, "<g>\n<rect />\n</g>", el.String())
}

func TestAsNode(t *testing.T) {
	rect := NewElement("rect").Set("x", 1)
	n := rect.AsNode()
	rect.Set("x", 2)

	copied, ok := n.(*Element)
	require.True(t, ok)
	assert.NotSame(t, rect, copied)
	x, _ := copied.Get("x")
	assert.Equal(t, "1", x)

	parent := Group().AddNode(n)
	assert.True(t, parent.Children[0].(*Element).Equal(copied))
}

func TestShallowClone(t *testing.T) {
	el := NewElement("g").Set("id", "layer")
	el.AddChild(NewElement("rect"))

	c := el.ShallowClone()
	assert.Equal(t, "g", c.Name)
	assert.Empty(t, c.Children)
	id, _ := c.Get("id")
	assert.Equal(t, "layer", id)

	c.Set("id", "other")
	id, _ = el.Get("id")
	assert.Equal(t, "layer", id)
}

func TestCloneAndEqual(t *testing.T) {
	el := NewElement("g").Set("id", "layer")
	el.AddChild(NewElement("rect").Set("width", 10))
	el.AddNode(Text("t"))

	c := el.Clone()
	assert.True(t, el.Equal(c))

	c.Children[0].(*Element).Set("width", 11)
	assert.False(t, el.Equal(c))

	other := NewElement("g").Set("id", "layer")
	assert.False(t, el.Equal(other))
	assert.False(t, el.Equal(nil))
	assert.True(t, (*Element)(nil).Equal(nil))
	assert.False(t, NewElement("a").Equal(NewElement("b")))
	assert.False(t, NewElement("a").AddNode(Text("x")).Equal(NewElement("a").AddNode(Comment("x"))))
}

func TestAddStyle(t *testing.T) {
	el := NewElement("foo")
	_, ok := el.Get("style")
	assert.False(t, ok)

	el.AddStyle("stroke-width", 5.5)
	style, _ := el.Get("style")
	assert.Equal(t, "stroke-width:5.5", style)

	el.AddStyle("stroke", "#345623")
	style, _ = el.Get("style")
	assert.Equal(t, "stroke-width:5.5;stroke:#345623", style)
}

func TestStyleMap(t *testing.T) {
	el := NewElement("foo")
	el.AddStyle("fish", "bob").AddStyle("guppy", "slice").AddStyle("key", "value")

	m, err := el.StyleMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"fish": "bob", "guppy": "slice", "key": "value"}, m)

	el = NewElement("foo").AddStyle("a", "1").AddStyle("b", "2")
	style, _ := el.Get("style")
	assert.Equal(t, "a:1;b:2", style)
	m, err = el.StyleMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
}

func TestStyleMapEdgeCases(t *testing.T) {
	m, err := NewElement("foo").StyleMap()
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = NewElement("foo").Set("style", "broken").StyleMap()
	assert.ErrorIs(t, err, ErrMalformedStyle)

	_, err = NewElement("foo").Set("style", "a:1;something broken").StyleMap()
	assert.ErrorIs(t, err, ErrMalformedStyle)

	m, err = NewElement("foo").Set("style", "stroke:black; stroke-width: 1;").StyleMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"stroke": "black", "stroke-width": "1"}, m)

	m, err = NewElement("foo").Set("style", "fill:url(http://a/b#c)").StyleMap()
	require.NoError(t, err)
	assert.Equal(t, "url(http://a/b#c)", m["fill"])
}
