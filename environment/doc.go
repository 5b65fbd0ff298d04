// Package environment provides profile evaluation and placeholder resolution
// for configuration documents.
//
// Profiles gate whether a document sub-tree is registered at all. Tokens are
// plain names ("dev"), negations ("!prod"), or boolean expressions over
// profile names ("dev&&!prod") evaluated with expr-lang.
//
// Placeholders of the form ${name} and ${name:default} are resolved against
// programmatic properties first and the OS environment second.
package environment
