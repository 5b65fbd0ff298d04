package reader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/environment"
	"github.com/0xalexb/hjarta-conf/registry"
	"github.com/0xalexb/hjarta-conf/resource"
)

// ErrNilContext is returned when Register is called without a context.
var ErrNilContext = errors.New("no registration context configured")

// ErrIncompleteContext is returned when the context is missing a required
// collaborator. This is a usage error, not a data error, and halts the load
// before any traversal happens.
var ErrIncompleteContext = errors.New("registration context requires parser, registry, environment and problem collector")

// ResourceLoader resolves locations and drives nested document loads for
// import elements.
type ResourceLoader interface {
	// LoadByLocation resolves a location string, loads the document behind
	// it through the whole registration pipeline, and returns how many
	// definitions it registered. Loaded resources are added to the set when
	// one is given.
	LoadByLocation(location string, into *resource.Set) (int, error)
	// LoadByResource loads an already resolved resource.
	LoadByResource(res resource.Resource) (int, error)
}

// ElementParser turns individual elements into registrations. It owns the
// default component vocabulary's content parsing and the entire custom
// vocabulary; the traversal routes elements to it without knowing any
// concrete kinds.
type ElementParser interface {
	// IsDefaultVocabulary reports whether the element belongs to the
	// built-in vocabulary. Evaluated per element; a parent's vocabulary
	// never propagates to its children.
	IsDefaultVocabulary(el *document.Node) bool
	// ParseComponent parses a component element into a holder. Returning
	// ok=false means the element produces no registration; any problems
	// were already reported through the context and the traversal moves on
	// silently.
	ParseComponent(el *document.Node, scope *Scope, ctx *Context) (*registry.Holder, bool)
	// Decorate applies custom-vocabulary decoration declared on or inside
	// a component element and returns the possibly replaced holder.
	Decorate(el *document.Node, holder *registry.Holder, scope *Scope, ctx *Context) *registry.Holder
	// ParseCustomElement handles an element outside the built-in
	// vocabulary entirely.
	ParseCustomElement(el *document.Node, ctx *Context)
}

// Context carries the collaborators of one document registration run. It is
// created per document by the loader and passed down the traversal; the
// traversal itself holds no state between calls.
type Context struct {
	// Resource identifies the document being read; may be nil for
	// hand-built trees.
	Resource resource.Resource
	// Loader serves import elements; may be nil when the document is known
	// to contain none.
	Loader ResourceLoader
	// Registry receives definitions and aliases.
	Registry registry.Registry
	// Environment evaluates profiles and placeholders.
	Environment environment.Environment
	// Parser handles element content and custom vocabularies.
	Parser ElementParser
	// Problems accumulates non-fatal registration errors.
	Problems *Problems
	// Events receives registration notifications.
	Events EventSink
	// Logger receives traversal debug logs.
	Logger *slog.Logger
}

// validate checks the usage preconditions that Register refuses to run
// without.
func (ctx *Context) validate() error {
	if ctx == nil {
		return ErrNilContext
	}

	if ctx.Parser == nil || ctx.Registry == nil || ctx.Environment == nil || ctx.Problems == nil {
		return ErrIncompleteContext
	}

	return nil
}

// events returns the configured sink or a no-op.
func (ctx *Context) events() EventSink {
	if ctx.Events == nil {
		return NopSink{}
	}

	return ctx.Events
}

// logger returns the configured logger or the process default.
func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.Default()
	}

	return ctx.Logger
}

// Error reports a problem against the given element and continues.
func (ctx *Context) Error(message string, el *document.Node, cause error) {
	problem := Problem{Message: message, Cause: cause}

	if el != nil {
		problem.Element = el.Describe()
	}

	if ctx.Resource != nil {
		problem.Resource = ctx.Resource.Name()
	}

	ctx.Problems.Add(problem)
}

// Errorf reports a formatted problem against the given element.
func (ctx *Context) Errorf(el *document.Node, cause error, format string, args ...any) {
	ctx.Error(fmt.Sprintf(format, args...), el, cause)
}

// Source describes where an element was declared, for events and
// definitions.
func (ctx *Context) Source(el *document.Node) string {
	if ctx.Resource == nil {
		return el.Describe()
	}

	return el.Describe() + " in " + ctx.Resource.Name()
}
