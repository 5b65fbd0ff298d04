// Package resource abstracts where configuration documents are loaded from.
//
// A Resource identifies one loadable document and knows how to open itself
// and how to resolve sibling locations relative to its own. FileResource
// serves the operating system file system; FSResource serves any fs.FS,
// including embedded and in-memory file systems. Set is an ordered,
// key-deduplicated collection used to track which resources an import
// actually pulled in.
package resource
