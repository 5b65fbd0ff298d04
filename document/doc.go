// Package document defines the element tree that configuration documents are
// parsed into before registration.
//
// A document is a tree of Nodes. Element nodes carry a qualified Name (local
// name plus namespace URI), a flat attribute map, and ordered children; text
// and comment nodes carry raw character data. The tree is syntax-neutral:
// concrete front ends live in document/parser/xml and document/parser/yaml
// and both produce the same shape, so everything downstream of a Parser is
// format-agnostic.
//
// Nodes are immutable by convention once a Parser returns them. The reader
// package walks them read-only.
package document
