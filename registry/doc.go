// Package registry stores component definitions and aliases declared by
// configuration documents.
//
// A Definition records what to construct and how; it never instantiates
// anything. The InMemory registry detects duplicate names, duplicate
// aliases, alias/definition name collisions and alias cycles, and resolves
// alias chains on lookup.
package registry
