// Package conf loads declarative component configuration documents into a
// registry of component definitions.
//
// A document is a tree of elements: component declarations, aliases, imports
// of further documents, and nested scopes carrying default settings for
// their sub-tree. The Loader resolves locations to resources, parses them
// with a format front end chosen by extension (XML and YAML ship built in),
// and walks the tree with the reader package, accumulating every problem a
// document produces instead of stopping at the first one.
//
// Custom element vocabularies plug in per namespace URI; profiles gate
// sub-trees by environment; ${...} placeholders in import locations resolve
// against properties and the OS environment.
//
// NewModule exposes a loaded registry as an Fx module for applications
// assembled with go.uber.org/fx.
package conf
