package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xalexb/hjarta-conf/reader"
)

func TestNewScope_HardDefaults(t *testing.T) {
	t.Parallel()

	scope := reader.NewScope(el("components", nil), nil)

	assert.False(t, scope.LazyInit())
	assert.Equal(t, "no", scope.Autowire())
	assert.Empty(t, scope.InitMethod())
	assert.Empty(t, scope.DestroyMethod())
	assert.Nil(t, scope.Parent())
}

func TestNewScope_ExplicitSettings(t *testing.T) {
	t.Parallel()

	scope := reader.NewScope(el("components", map[string]string{
		"default-lazy-init":      "true",
		"default-autowire":       "byName",
		"default-init-method":    "setup",
		"default-destroy-method": "teardown",
	}), nil)

	assert.True(t, scope.LazyInit())
	assert.Equal(t, "byName", scope.Autowire())
	assert.Equal(t, "setup", scope.InitMethod())
	assert.Equal(t, "teardown", scope.DestroyMethod())
}

func TestNewScope_InheritsUnsetFromParent(t *testing.T) {
	t.Parallel()

	parent := reader.NewScope(el("components", map[string]string{
		"default-lazy-init":   "true",
		"default-init-method": "setup",
	}), nil)

	child := reader.NewScope(el("components", map[string]string{
		"default-autowire": "byType",
	}), parent)

	assert.True(t, child.LazyInit(), "unset setting falls back to parent")
	assert.Equal(t, "setup", child.InitMethod())
	assert.Equal(t, "byType", child.Autowire(), "own setting wins")
	assert.Same(t, parent, child.Parent())
}

func TestNewScope_DefaultValueInherits(t *testing.T) {
	t.Parallel()

	parent := reader.NewScope(el("components", map[string]string{
		"default-lazy-init": "true",
	}), nil)

	child := reader.NewScope(el("components", map[string]string{
		"default-lazy-init": "default",
	}), parent)

	assert.True(t, child.LazyInit(), `"default" means inherit, not false`)
}

func TestNewScope_ChildOverrideLeavesParentUntouched(t *testing.T) {
	t.Parallel()

	parent := reader.NewScope(el("components", nil), nil)
	child := reader.NewScope(el("components", map[string]string{
		"default-lazy-init": "true",
	}), parent)

	assert.True(t, child.LazyInit())
	assert.False(t, parent.LazyInit(), "scopes are immutable; children never write upward")
}
