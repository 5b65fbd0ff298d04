package reader

import "github.com/0xalexb/hjarta-conf/document"

// Scope is the set of default settings in effect for one document sub-tree.
//
// A Scope is built once per components element, resolving each setting either
// from the element's own default-* attributes or from the enclosing Scope,
// and is immutable afterwards. The traversal passes it down the recursion
// explicitly; callers keep their own Scope untouched across nested sub-trees.
type Scope struct {
	parent        *Scope
	lazyInit      string
	autowire      string
	initMethod    string
	destroyMethod string
}

// NewScope resolves the default settings of a components element against the
// enclosing scope. A nil parent means document-level hard defaults: lazy-init
// "false", autowire "no", no lifecycle methods.
func NewScope(el *document.Node, parent *Scope) *Scope {
	scope := &Scope{parent: parent}

	scope.lazyInit = resolveSetting(el, DefaultLazyInitAttribute, parent, (*Scope).LazyInitSetting, "false")
	scope.autowire = resolveSetting(el, DefaultAutowireAttribute, parent, (*Scope).Autowire, "no")
	scope.initMethod = resolveSetting(el, DefaultInitMethodAttribute, parent, (*Scope).InitMethod, "")
	scope.destroyMethod = resolveSetting(el, DefaultDestroyMethodAttribute, parent, (*Scope).DestroyMethod, "")

	return scope
}

// resolveSetting picks the attribute value when it is set to something other
// than "default", the parent's resolved value when there is a parent, and the
// hard fallback otherwise.
func resolveSetting(el *document.Node, attr string, parent *Scope, get func(*Scope) string, fallback string) string {
	value := el.Attr(attr)
	if value != "" && value != DefaultValue {
		return value
	}

	if parent != nil {
		return get(parent)
	}

	return fallback
}

// LazyInit reports whether components in this scope default to lazy
// initialization.
func (s *Scope) LazyInit() bool {
	return s.lazyInit == "true"
}

// LazyInitSetting returns the raw resolved lazy-init setting.
func (s *Scope) LazyInitSetting() string {
	return s.lazyInit
}

// Autowire returns the default autowire mode for this scope.
func (s *Scope) Autowire() string {
	return s.autowire
}

// InitMethod returns the default init method name, or "".
func (s *Scope) InitMethod() string {
	return s.initMethod
}

// DestroyMethod returns the default destroy method name, or "".
func (s *Scope) DestroyMethod() string {
	return s.destroyMethod
}

// Parent returns the enclosing scope, or nil at document level.
func (s *Scope) Parent() *Scope {
	return s.parent
}
