// Package reader implements the recursive traversal that turns a parsed
// configuration document into registry entries.
//
// DocumentReader.Register walks the tree depth-first. Default-vocabulary
// elements route to the built-in handlers for import, alias, component and
// nested components scopes; anything in another namespace is handed to the
// context's ElementParser. Default settings declared on a components element
// form a Scope that child sub-trees inherit through explicit parameter
// passing, never through reader state, so a nested scope cannot leak into
// its parent's following siblings.
//
// Data errors accumulate in the context's Problems collector and never abort
// the traversal: one bad element costs exactly that element. Profile
// mismatches skip a sub-tree without recording anything, and unrecognized
// default-vocabulary element names are no-ops by design.
package reader
