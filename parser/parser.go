package parser

import (
	"strings"

	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/reader"
	"github.com/0xalexb/hjarta-conf/registry"
)

// Attribute and element names of the component vocabulary handled here.
const (
	kindAttribute          = "kind"
	scopeAttribute         = "scope"
	lazyInitAttribute      = "lazy-init"
	autowireAttribute      = "autowire"
	initMethodAttribute    = "init-method"
	destroyMethodAttribute = "destroy-method"

	propertyElement = "property"
	valueAttribute  = "value"

	// nameDelimiters separate the primary name from aliases in a multi
	// valued name attribute.
	nameDelimiters = ",; "
)

// NamespaceHandler parses and decorates elements of one custom namespace.
type NamespaceHandler interface {
	// Parse handles a top-level custom element. Registrations and problems
	// both go through the context.
	Parse(el *document.Node, ctx *reader.Context)
	// Decorate reacts to a custom child element of a component element and
	// returns the holder to continue with, usually the one passed in.
	Decorate(el *document.Node, holder *registry.Holder, ctx *reader.Context) *registry.Holder
}

// Parser is the default reader.ElementParser. It parses component elements
// of the built-in vocabulary and routes custom namespaces to registered
// handlers. The parser is stateless; everything per-load arrives through the
// reader context.
type Parser struct {
	handlers map[string]NamespaceHandler
}

// Option configures a Parser.
type Option func(*Parser)

// WithNamespaceHandler registers a handler for a namespace URI.
func WithNamespaceHandler(namespace string, handler NamespaceHandler) Option {
	return func(p *Parser) {
		p.handlers[namespace] = handler
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	parser := &Parser{handlers: make(map[string]NamespaceHandler)}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// IsDefaultVocabulary reports whether an element has no namespace or the
// built-in one.
func (p *Parser) IsDefaultVocabulary(el *document.Node) bool {
	return el.Name.Space == "" || el.Name.Space == reader.DefaultNamespace
}

// ParseComponent parses one component element into a holder. Validation
// problems are reported through the context and yield (nil, false): the
// element then simply produces no registration.
func (p *Parser) ParseComponent(el *document.Node, scope *reader.Scope, ctx *reader.Context) (*registry.Holder, bool) {
	names := tokenizeNames(el.Attr(reader.NameAttribute))
	if len(names) == 0 {
		ctx.Error("component must declare a name", el, nil)

		return nil, false
	}

	kind := el.Attr(kindAttribute)
	if strings.TrimSpace(kind) == "" {
		ctx.Error("component must declare a kind", el, nil)

		return nil, false
	}

	def := &registry.Definition{
		Kind:          kind,
		Scope:         attrOr(el, scopeAttribute, "singleton"),
		LazyInit:      resolveLazyInit(el, scope),
		Autowire:      resolveDefaulted(el, autowireAttribute, scope.Autowire()),
		InitMethod:    resolveDefaulted(el, initMethodAttribute, scope.InitMethod()),
		DestroyMethod: resolveDefaulted(el, destroyMethodAttribute, scope.DestroyMethod()),
		Source:        ctx.Source(el),
	}

	ok := p.parseProperties(el, def, ctx)
	if !ok {
		return nil, false
	}

	return &registry.Holder{
		Name:       names[0],
		Aliases:    names[1:],
		Definition: def,
	}, true
}

// parseProperties collects property children in document order. A property
// without a name or a name declared twice invalidates the whole component.
func (p *Parser) parseProperties(el *document.Node, def *registry.Definition, ctx *reader.Context) bool {
	seen := make(map[string]bool)

	for _, child := range el.Elements() {
		if !p.IsDefaultVocabulary(child) || child.Name.Local != propertyElement {
			continue
		}

		name := child.Attr(reader.NameAttribute)
		if strings.TrimSpace(name) == "" {
			ctx.Error("property must declare a name", child, nil)

			return false
		}

		if seen[name] {
			ctx.Errorf(child, nil, "property %q is declared more than once", name)

			return false
		}

		seen[name] = true

		def.Properties = append(def.Properties, registry.Property{
			Name:  name,
			Value: propertyValue(child),
		})
	}

	return true
}

// propertyValue takes the value attribute, falling back to the element's
// text content.
func propertyValue(el *document.Node) string {
	if el.HasAttr(valueAttribute) {
		return el.Attr(valueAttribute)
	}

	var b strings.Builder

	for _, child := range el.Children {
		if child.Kind == document.TextKind {
			b.WriteString(child.Text)
		}
	}

	return strings.TrimSpace(b.String())
}

// Decorate routes every custom-namespace child of a component element to its
// namespace handler. An unknown namespace is reported and skipped; the
// holder survives.
func (p *Parser) Decorate(el *document.Node, holder *registry.Holder, _ *reader.Scope, ctx *reader.Context) *registry.Holder {
	for _, child := range el.Elements() {
		if p.IsDefaultVocabulary(child) {
			continue
		}

		handler, ok := p.handlers[child.Name.Space]
		if !ok {
			ctx.Errorf(child, nil, "no namespace handler found for namespace %q", child.Name.Space)

			continue
		}

		if decorated := handler.Decorate(child, holder, ctx); decorated != nil {
			holder = decorated
		}
	}

	return holder
}

// ParseCustomElement routes a custom-namespace element to its handler. A
// namespace nobody registered a handler for is a data error.
func (p *Parser) ParseCustomElement(el *document.Node, ctx *reader.Context) {
	handler, ok := p.handlers[el.Name.Space]
	if !ok {
		ctx.Errorf(el, nil, "no namespace handler found for namespace %q", el.Name.Space)

		return
	}

	handler.Parse(el, ctx)
}

// tokenizeNames splits a multi-valued name attribute.
func tokenizeNames(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(nameDelimiters, r)
	})
}

func attrOr(el *document.Node, attr, fallback string) string {
	if value := el.Attr(attr); value != "" {
		return value
	}

	return fallback
}

// resolveDefaulted returns the attribute value unless it is absent or
// "default", in which case the scope's resolved default applies.
func resolveDefaulted(el *document.Node, attr, scoped string) string {
	value := el.Attr(attr)
	if value == "" || value == reader.DefaultValue {
		return scoped
	}

	return value
}

func resolveLazyInit(el *document.Node, scope *reader.Scope) bool {
	value := el.Attr(lazyInitAttribute)
	if value == "" || value == reader.DefaultValue {
		return scope.LazyInit()
	}

	return value == "true"
}
