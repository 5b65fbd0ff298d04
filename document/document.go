package document

import "strings"

// Kind discriminates the node variants a parsed document may contain.
type Kind int

const (
	// ElementKind is a named element carrying attributes and children.
	ElementKind Kind = iota
	// TextKind is character data between elements.
	TextKind
	// CommentKind is a comment preserved by the parser.
	CommentKind
)

// Name is a qualified element name: a local name plus the namespace URI it
// was declared under. An empty Space means the element carries no namespace.
type Name struct {
	Space string
	Local string
}

// String returns "space|local" for namespaced names and the bare local name
// otherwise.
func (n Name) String() string {
	if n.Space == "" {
		return n.Local
	}

	return n.Space + "|" + n.Local
}

// Node is one node of a parsed configuration document. Nodes are produced by
// a Parser and are read-only afterwards; the loading pipeline never mutates
// them.
type Node struct {
	Kind     Kind
	Name     Name
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// HasAttr reports whether the attribute is present, regardless of its value.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]

	return ok
}

// Elements returns the direct element children in document order, skipping
// text and comment nodes.
func (n *Node) Elements() []*Node {
	elements := make([]*Node, 0, len(n.Children))

	for _, child := range n.Children {
		if child.Kind == ElementKind {
			elements = append(elements, child)
		}
	}

	return elements
}

// Describe returns a short human-readable identification of the element for
// diagnostics, including the name attribute when one is present.
func (n *Node) Describe() string {
	var b strings.Builder

	b.WriteString("<")
	b.WriteString(n.Name.String())

	if name := n.Attr("name"); name != "" {
		b.WriteString(" name=")
		b.WriteString(name)
	}

	b.WriteString(">")

	return b.String()
}

// Parser turns raw document data into an element tree.
//
// Implementations cover one concrete syntax each; see document/parser/xml and
// document/parser/yaml. The returned root is the document element itself, not
// a synthetic wrapper.
type Parser interface {
	Parse(data []byte) (*Node, error)
}
