package registry

// Autowire modes a definition may declare.
const (
	AutowireNo          = "no"
	AutowireByName      = "byName"
	AutowireByType      = "byType"
	AutowireConstructor = "constructor"
)

// Property is one named configuration value of a definition.
type Property struct {
	Name  string
	Value string
}

// Definition describes one declared component: what to construct and how,
// independent of any later instantiation.
type Definition struct {
	// Kind identifies the component implementation to construct.
	Kind string
	// Scope is the component's lifecycle scope, e.g. "singleton".
	Scope string
	// LazyInit defers construction until first use.
	LazyInit bool
	// Autowire selects the dependency resolution mode.
	Autowire string
	// InitMethod and DestroyMethod name lifecycle callbacks.
	InitMethod    string
	DestroyMethod string
	// Properties are the declared configuration values in document order.
	Properties []Property
	// Source describes where the definition was declared, for diagnostics.
	Source string
}

// Property returns the value of the named property and whether it is set.
func (d *Definition) Property(name string) (string, bool) {
	for _, p := range d.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// Holder pairs a definition with its primary name and any aliases declared
// alongside it.
type Holder struct {
	Name       string
	Aliases    []string
	Definition *Definition
}
