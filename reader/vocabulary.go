package reader

import "strings"

// DefaultNamespace is the namespace URI of the built-in vocabulary. Elements
// without a namespace are treated as default vocabulary as well, so plain
// documents need no namespace declarations.
const DefaultNamespace = "https://hjarta.dev/schema/components"

// Element local names of the built-in vocabulary.
const (
	// ComponentsElement opens a document or a nested default-setting scope.
	ComponentsElement = "components"
	// ComponentElement declares one component definition.
	ComponentElement = "component"
	// AliasElement declares an additional name for a component.
	AliasElement = "alias"
	// ImportElement pulls another document into the current registration run.
	ImportElement = "import"
)

// Attribute names recognized by the traversal itself.
const (
	// ProfileAttribute gates a components sub-tree by active profiles.
	ProfileAttribute = "profile"
	// ResourceAttribute holds the location of an imported document.
	ResourceAttribute = "resource"
	// NameAttribute and AliasAttribute form an alias declaration.
	NameAttribute  = "name"
	AliasAttribute = "alias"
)

// Default-setting attributes carried by a components element.
const (
	DefaultLazyInitAttribute      = "default-lazy-init"
	DefaultAutowireAttribute      = "default-autowire"
	DefaultInitMethodAttribute    = "default-init-method"
	DefaultDestroyMethodAttribute = "default-destroy-method"
)

// DefaultValue marks a setting as "inherit from the enclosing scope".
const DefaultValue = "default"

// profileDelimiters separate profile tokens in a profile attribute.
const profileDelimiters = ",; \t\n\r"

// tokenizeProfiles splits a profile attribute value into its tokens.
func tokenizeProfiles(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return strings.ContainsRune(profileDelimiters, r)
	})
}
