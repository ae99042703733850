/*
Package svgdoc provides the tree model used to build SVG documents,
and its two inverse transforms: serialization to text and parsing from text.

A document is a tree of *Element. Each element has a tag name, a set of
attributes (whose order does not matter) and an ordered list of children,
which are Text, Comment or *Element nodes.

	doc := svgdoc.NewElement("svg")
	doc.Set("width", 210).Set("height", "297mm")
	circle := svgdoc.NewElement("circle").Set("r", 2.5)
	circle.AddStyle("fill", "red").AddStyle("stroke", "none")
	doc.AddChild(circle)

	out := doc.PrettyString()

Children are copied when added, so that a tree never shares state with
another one: modifying `circle` after the call to AddChild has no effect on `doc`.

Attributes are always written sorted by name, so the output only depends
on the content of the tree. Parse inverts the serialization: parsing the
output of String or PrettyString gives back an equal tree, as long as
the tree has no comments, no adjacent Text children and no text with
leading or trailing spaces. Comments are kept by Parse only with WithComments.

Only the syntax required to read back the documents written by this package,
or simple hand written ones, is supported: there is no namespace resolution,
no CDATA, no DTD validation and no entity other than the predefined ones.
*/
package svgdoc
