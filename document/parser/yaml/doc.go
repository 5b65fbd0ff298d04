// Package yaml provides a document.Parser for YAML configuration documents.
// It uses goccy/go-yaml and an explicit tag/attrs/children element shape so
// that YAML and XML documents produce identical trees.
package yaml
