package environment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/expr-lang/expr"
)

// isExpression reports whether a profile token should be treated as a boolean
// expression rather than a plain profile name. A bare leading "!" negation is
// handled by the plain path.
func isExpression(token string) bool {
	rest := strings.TrimPrefix(token, "!")

	return strings.ContainsAny(rest, "&|()!")
}

// Evaluate evaluates a profile expression such as "dev&&!prod" against the
// active profile set. Each identifier resolves to whether that profile is
// active; identifiers that name no active profile evaluate to false.
func (env *Standard) Evaluate(expression string) (bool, error) {
	vars := map[string]any{}

	for _, ident := range identifiers(expression) {
		vars[ident] = env.profiles[ident]
	}

	program, err := expr.Compile(expression, expr.Env(vars), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("compiling profile expression %q: %w", expression, err)
	}

	result, err := expr.Run(program, vars)
	if err != nil {
		return false, fmt.Errorf("evaluating profile expression %q: %w", expression, err)
	}

	accepted, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("profile expression %q did not yield a boolean", expression)
	}

	return accepted, nil
}

// reserved are expr keywords that must not be bound as profile variables.
var reserved = map[string]bool{
	"true": true, "false": true, "nil": true,
	"and": true, "or": true, "not": true, "in": true,
}

// identifiers extracts the candidate profile names referenced by an
// expression: maximal runs of letters, digits and underscores that start
// with a letter or underscore.
func identifiers(expression string) []string {
	var (
		names   []string
		current strings.Builder
	)

	flush := func() {
		name := current.String()
		current.Reset()

		if name == "" || reserved[name] {
			return
		}

		if first := rune(name[0]); !unicode.IsLetter(first) && first != '_' {
			return
		}

		names = append(names, name)
	}

	for _, r := range expression {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)

			continue
		}

		flush()
	}

	flush()

	return names
}
