package conf

import (
	"errors"
	"fmt"

	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-conf/registry"
)

// ErrEmptyName is returned when an Fx module is created without a name.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that loads the given document locations and
// provides the resulting registry, tagged with the module name. Loading
// happens when the Fx graph asks for the registry; a document with problems
// fails the graph with the accumulated error report.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, locations []string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (registry.Registry, error) {
					loader := New(opts...)

					count, err := loader.Load(locations...)
					if err != nil {
						return nil, fmt.Errorf("loading definitions for module %q: %w", name, err)
					}

					loader.logger.Debug("module definitions loaded",
						"module", name,
						"definitions", count,
					)

					return loader.Registry(), nil
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
