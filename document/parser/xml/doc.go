// Package xml provides a document.Parser for XML configuration documents,
// built on encoding/xml. Insignificant whitespace between elements is
// dropped; comments are preserved as comment nodes.
package xml
