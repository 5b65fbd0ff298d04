// Package parser provides the default element parser for the component
// vocabulary: component elements with kind, scope, lazy-init, autowire and
// lifecycle attributes plus property children, with per-element fallback to
// the enclosing scope's defaults.
//
// Custom vocabularies plug in through NamespaceHandler, keyed by namespace
// URI. The traversal never learns concrete custom element kinds; it hands
// them here and this package routes them.
package parser
