package environment

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnresolvedPlaceholder is returned when a ${...} placeholder has no value
// in any property source and declares no default.
var ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

// Environment decides which profiles are active and resolves placeholders in
// configuration values.
type Environment interface {
	// Accepts reports whether at least one of the given profile tokens
	// matches the active profile set. An empty token list is accepted.
	Accepts(profiles []string) bool
	// ResolvePlaceholders expands ${name} and ${name:default} tokens. A
	// placeholder without a value and without a default is an error.
	ResolvePlaceholders(value string) (string, error)
}

// Standard is the default Environment: an explicit active-profile set plus
// layered property sources consulted for placeholder values. Properties set
// programmatically shadow OS environment variables.
type Standard struct {
	profiles   map[string]bool
	properties map[string]string
	useOSEnv   bool
}

// Option configures a Standard environment.
type Option func(*Standard)

// WithProfiles activates the given profiles.
func WithProfiles(profiles ...string) Option {
	return func(env *Standard) {
		for _, p := range profiles {
			env.profiles[p] = true
		}
	}
}

// WithProperty sets a placeholder property value.
func WithProperty(name, value string) Option {
	return func(env *Standard) {
		env.properties[name] = value
	}
}

// WithoutOSEnv disables the OS environment fallback for placeholders.
func WithoutOSEnv() Option {
	return func(env *Standard) {
		env.useOSEnv = false
	}
}

// New creates a Standard environment.
func New(opts ...Option) *Standard {
	env := &Standard{
		profiles:   make(map[string]bool),
		properties: make(map[string]string),
		useOSEnv:   true,
	}

	for _, apply := range opts {
		apply(env)
	}

	return env
}

// Accepts reports whether any token matches. Plain tokens match when the
// named profile is active; "!name" matches when it is not. Tokens containing
// operator characters are evaluated as boolean expressions over the profile
// names, see Evaluate.
func (env *Standard) Accepts(profiles []string) bool {
	if len(profiles) == 0 {
		return true
	}

	for _, token := range profiles {
		if env.acceptsToken(token) {
			return true
		}
	}

	return false
}

func (env *Standard) acceptsToken(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	if isExpression(token) {
		accepted, err := env.Evaluate(token)

		return err == nil && accepted
	}

	if negated, ok := strings.CutPrefix(token, "!"); ok {
		return !env.profiles[negated]
	}

	return env.profiles[token]
}

// ActiveProfiles returns the active profile names in unspecified order.
func (env *Standard) ActiveProfiles() []string {
	names := make([]string, 0, len(env.profiles))

	for name := range env.profiles {
		names = append(names, name)
	}

	return names
}

// ResolvePlaceholders expands every ${name} and ${name:default} token against
// the property sources. The first unresolvable placeholder aborts resolution.
func (env *Standard) ResolvePlaceholders(value string) (string, error) {
	var b strings.Builder

	rest := value

	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)

			return b.String(), nil
		}

		end := strings.Index(rest[start:], "}")
		if end < 0 {
			b.WriteString(rest)

			return b.String(), nil
		}

		b.WriteString(rest[:start])

		placeholder := rest[start+2 : start+end]
		rest = rest[start+end+1:]

		name, fallback, hasFallback := strings.Cut(placeholder, ":")

		resolved, ok := env.lookup(name)
		if !ok {
			if !hasFallback {
				return "", fmt.Errorf("%w: ${%s}", ErrUnresolvedPlaceholder, placeholder)
			}

			resolved = fallback
		}

		b.WriteString(resolved)
	}
}

func (env *Standard) lookup(name string) (string, bool) {
	if value, ok := env.properties[name]; ok {
		return value, true
	}

	if env.useOSEnv {
		return os.LookupEnv(name)
	}

	return "", false
}
