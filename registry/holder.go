package registry

import "fmt"

// RegisterHolder registers a holder's definition under its primary name and
// then binds every declared alias to it. The first failure aborts and is
// returned; earlier successful bindings stay in place.
func RegisterHolder(holder *Holder, reg Registry) error {
	err := reg.RegisterDefinition(holder.Name, holder.Definition)
	if err != nil {
		return fmt.Errorf("registering %q: %w", holder.Name, err)
	}

	for _, alias := range holder.Aliases {
		err = reg.RegisterAlias(holder.Name, alias)
		if err != nil {
			return fmt.Errorf("registering alias %q for %q: %w", alias, holder.Name, err)
		}
	}

	return nil
}
