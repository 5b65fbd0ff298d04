package reader

import (
	"strings"

	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/registry"
)

// Hook runs before or after one document (or nested sub-tree) is processed.
type Hook func(root *document.Node, ctx *Context)

// DocumentReader walks a parsed configuration document and registers every
// declaration it finds: imports, aliases, components and nested scopes from
// the default vocabulary, everything else through the context's element
// parser.
//
// The reader holds no per-load state. Scope flows through the recursion as an
// explicit argument, so one reader instance can serve concurrent loads as
// long as each load brings its own Context.
type DocumentReader struct {
	pre  Hook
	post Hook
}

// Option configures a DocumentReader.
type Option func(*DocumentReader)

// WithPreProcess installs a hook invoked before each sub-tree is processed.
func WithPreProcess(hook Hook) Option {
	return func(r *DocumentReader) {
		r.pre = hook
	}
}

// WithPostProcess installs a hook invoked after each sub-tree is processed.
func WithPostProcess(hook Hook) Option {
	return func(r *DocumentReader) {
		r.post = hook
	}
}

// New creates a DocumentReader.
func New(opts ...Option) *DocumentReader {
	reader := &DocumentReader{}

	for _, apply := range opts {
		apply(reader)
	}

	return reader
}

// Register walks the document rooted at root and registers its declarations
// through ctx. Data errors accumulate in ctx.Problems and never abort the
// traversal; the returned error is non-nil only for an unusable context.
func (r *DocumentReader) Register(root *document.Node, ctx *Context) error {
	err := ctx.validate()
	if err != nil {
		return err
	}

	ctx.logger().Debug("loading component definitions")
	r.register(root, nil, ctx)

	return nil
}

// register processes one components sub-tree. The parent scope is what the
// enclosing sub-tree resolved; it is only read, never replaced, so the caller
// keeps its own scope across this call.
func (r *DocumentReader) register(root *document.Node, parent *Scope, ctx *Context) {
	scope := NewScope(root, parent)

	if ctx.Parser.IsDefaultVocabulary(root) {
		if profiles := root.Attr(ProfileAttribute); strings.TrimSpace(profiles) != "" {
			if !ctx.Environment.Accepts(tokenizeProfiles(profiles)) {
				ctx.logger().Info("skipped sub-tree, profiles not matching",
					"profiles", profiles,
					"source", ctx.Source(root),
				)

				return
			}
		}
	}

	if r.pre != nil {
		r.pre(root, ctx)
	}

	r.registerElements(root, scope, ctx)

	if r.post != nil {
		r.post(root, ctx)
	}
}

// registerElements dispatches the children of a default-vocabulary root, or
// hands a custom-vocabulary root to the element parser as a whole.
func (r *DocumentReader) registerElements(root *document.Node, scope *Scope, ctx *Context) {
	if !ctx.Parser.IsDefaultVocabulary(root) {
		ctx.Parser.ParseCustomElement(root, ctx)

		return
	}

	for _, el := range root.Elements() {
		if ctx.Parser.IsDefaultVocabulary(el) {
			r.registerDefault(el, scope, ctx)
		} else {
			ctx.Parser.ParseCustomElement(el, ctx)
		}
	}
}

// registerDefault routes one default-vocabulary element. Unrecognized local
// names are a deliberate no-op, not an error.
func (r *DocumentReader) registerDefault(el *document.Node, scope *Scope, ctx *Context) {
	switch el.Name.Local {
	case ImportElement:
		r.importResource(el, ctx)
	case AliasElement:
		r.registerAlias(el, ctx)
	case ComponentElement:
		r.registerComponent(el, scope, ctx)
	case ComponentsElement:
		r.register(el, scope, ctx)
	}
}

// registerAlias validates and registers one alias element. Both attribute
// validations run unconditionally so a fully blank element reports both
// problems in one pass.
func (r *DocumentReader) registerAlias(el *document.Node, ctx *Context) {
	name := el.Attr(NameAttribute)
	alias := el.Attr(AliasAttribute)

	valid := true

	if strings.TrimSpace(name) == "" {
		ctx.Error("name must not be empty", el, nil)

		valid = false
	}

	if strings.TrimSpace(alias) == "" {
		ctx.Error("alias must not be empty", el, nil)

		valid = false
	}

	if !valid {
		return
	}

	err := ctx.Registry.RegisterAlias(name, alias)
	if err != nil {
		ctx.Errorf(el, err, "failed to register alias %q for component %q", alias, name)

		return
	}

	ctx.events().AliasRegistered(AliasEvent{Name: name, Alias: alias, Source: ctx.Source(el)})
}

// registerComponent parses, decorates and registers one component element. A
// parser that declines to produce a holder already reported whatever was
// wrong; that path is silent here.
func (r *DocumentReader) registerComponent(el *document.Node, scope *Scope, ctx *Context) {
	holder, ok := ctx.Parser.ParseComponent(el, scope, ctx)
	if !ok || holder == nil {
		return
	}

	holder = ctx.Parser.Decorate(el, holder, scope, ctx)

	err := registry.RegisterHolder(holder, ctx.Registry)
	if err != nil {
		ctx.Errorf(el, err, "failed to register component definition %q", holder.Name)

		return
	}

	ctx.events().ComponentRegistered(ComponentEvent{Holder: holder, Source: ctx.Source(el)})
}
