package registry

import (
	"errors"
	"fmt"
)

// ErrDuplicateDefinition is returned when a name is already bound to a
// definition and overriding is disabled.
var ErrDuplicateDefinition = errors.New("duplicate definition")

// ErrDuplicateAlias is returned when an alias is already bound to a different
// name and overriding is disabled.
var ErrDuplicateAlias = errors.New("duplicate alias")

// ErrAliasCycle is returned when registering an alias would create a cycle,
// e.g. aliasing a name to itself through a chain.
var ErrAliasCycle = errors.New("alias cycle")

// ErrNameConflict is returned when an alias collides with a definition name.
var ErrNameConflict = errors.New("alias conflicts with definition name")

// Registry stores component definitions and aliases.
type Registry interface {
	RegisterDefinition(name string, def *Definition) error
	RegisterAlias(name, alias string) error
}

// InMemory is the default Registry: a definition map plus an alias map with
// chain resolution. The zero value is not usable; use New.
type InMemory struct {
	definitions map[string]*Definition
	aliases     map[string]string
	names       []string
	overriding  bool
}

// InMemoryOption configures an InMemory registry.
type InMemoryOption func(*InMemory)

// WithOverriding allows later registrations to replace existing definitions
// and aliases instead of failing.
func WithOverriding() InMemoryOption {
	return func(r *InMemory) {
		r.overriding = true
	}
}

// New creates an empty in-memory registry.
func New(opts ...InMemoryOption) *InMemory {
	reg := &InMemory{
		definitions: make(map[string]*Definition),
		aliases:     make(map[string]string),
	}

	for _, apply := range opts {
		apply(reg)
	}

	return reg
}

// RegisterDefinition binds a definition to a name. Rebinding an existing name
// fails unless overriding is enabled.
func (r *InMemory) RegisterDefinition(name string, def *Definition) error {
	if _, exists := r.definitions[name]; exists {
		if !r.overriding {
			return fmt.Errorf("%w: %q", ErrDuplicateDefinition, name)
		}
	} else {
		r.names = append(r.names, name)
	}

	r.definitions[name] = def

	return nil
}

// RegisterAlias binds alias to name. An alias equal to its name is a no-op.
// Rebinding to a different name fails unless overriding is enabled, as does
// shadowing a definition name or forming a cycle.
func (r *InMemory) RegisterAlias(name, alias string) error {
	if name == alias {
		return nil
	}

	if _, exists := r.definitions[alias]; exists {
		return fmt.Errorf("%w: %q", ErrNameConflict, alias)
	}

	if existing, exists := r.aliases[alias]; exists && existing != name {
		if !r.overriding {
			return fmt.Errorf("%w: %q is already bound to %q", ErrDuplicateAlias, alias, existing)
		}
	}

	if r.hasAliasPath(name, alias) {
		return fmt.Errorf("%w: %q -> %q", ErrAliasCycle, alias, name)
	}

	r.aliases[alias] = name

	return nil
}

// hasAliasPath reports whether name already resolves, directly or through a
// chain, to alias.
func (r *InMemory) hasAliasPath(name, alias string) bool {
	for current := name; ; {
		next, ok := r.aliases[current]
		if !ok {
			return false
		}

		if next == alias {
			return true
		}

		current = next
	}
}

// Definition returns the definition for a name, resolving alias chains.
func (r *InMemory) Definition(name string) (*Definition, bool) {
	def, ok := r.definitions[r.Canonical(name)]

	return def, ok
}

// Canonical resolves alias chains to the underlying definition name.
func (r *InMemory) Canonical(name string) string {
	for {
		next, ok := r.aliases[name]
		if !ok {
			return name
		}

		name = next
	}
}

// Aliases returns all aliases that resolve to the given name.
func (r *InMemory) Aliases(name string) []string {
	var aliases []string

	for alias := range r.aliases {
		if alias != name && r.Canonical(alias) == name {
			aliases = append(aliases, alias)
		}
	}

	return aliases
}

// Names returns the definition names in registration order.
func (r *InMemory) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)

	return names
}

// Count returns the number of registered definitions.
func (r *InMemory) Count() int {
	return len(r.definitions)
}
