package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formtree/pkg/registry"
)

func TestRegistry_BuiltinResolution(t *testing.T) {
	reg := registry.NewBuilder().
		Register("Button", registry.Definition{Ref: "button"}).
		Build()

	def, ok := reg.Definition("Button")
	require.True(t, ok)
	assert.Equal(t, "button", def.Ref)

	_, ok = reg.Definition("NoSuchType")
	assert.False(t, ok)
	assert.False(t, reg.Has("NoSuchType"))
	assert.True(t, reg.Has("Button"))
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	reg := registry.NewBuilder().
		Register("Button", registry.Definition{Ref: "first"}).
		Register("Button", registry.Definition{Ref: "second"}).
		Build()

	def, ok := reg.Definition("Button")
	require.True(t, ok)
	assert.Equal(t, "second", def.Ref)
}

func TestRegistry_DependencyAlwaysResolves(t *testing.T) {
	reg := registry.NewBuilder().Build()

	def, ok := reg.Definition("form:dep_123:CustomButton")
	require.True(t, ok, "dependency lookups must synthesize placeholders")

	ref, isPlaceholder := def.Ref.(registry.PlaceholderRef)
	require.True(t, isPlaceholder, "expected placeholder ref, got %T", def.Ref)
	assert.Equal(t, registry.CategoryDependency, ref.Category)
	assert.Equal(t, "dep_123", ref.DependencyID)
	assert.Equal(t, "CustomButton", ref.Name)
}

func TestRegistry_CoreComponentsRemap(t *testing.T) {
	reg := registry.NewBuilder().
		Register("Button", registry.Definition{Ref: "button"}).
		Build()

	def, ok := reg.Definition("form:" + registry.CoreComponentsDependencyID + ":Button")
	require.True(t, ok)
	assert.Equal(t, "button", def.Ref, "core components remap should resolve to the builtin")

	// A core-components name without a remap entry still yields a placeholder.
	def, ok = reg.Definition("form:" + registry.CoreComponentsDependencyID + ":Mystery")
	require.True(t, ok)
	_, isPlaceholder := def.Ref.(registry.PlaceholderRef)
	assert.True(t, isPlaceholder)
}

func TestRegistry_PackageResolution(t *testing.T) {
	reg := registry.NewBuilder().
		RegisterPackage("anvil", "DataGrid", registry.Definition{Ref: "grid"}).
		Build()

	def, ok := reg.Definition("anvil.DataGrid")
	require.True(t, ok)
	assert.Equal(t, "grid", def.Ref)

	def, ok = reg.Definition("anvil.Unknown")
	require.True(t, ok, "unknown package components synthesize placeholders")
	ref, isPlaceholder := def.Ref.(registry.PlaceholderRef)
	require.True(t, isPlaceholder)
	assert.Equal(t, registry.CategoryPackage, ref.Category)
	assert.Equal(t, "anvil", ref.Namespace)
	assert.Equal(t, "Unknown", ref.Name)
}

func TestRegistry_Types(t *testing.T) {
	reg := registry.NewBuilder().
		Register("Label", registry.Definition{}).
		Register("Button", registry.Definition{}).
		RegisterPackage("anvil", "DataGrid", registry.Definition{}).
		Build()

	assert.Equal(t, []string{"Button", "Label", "anvil.DataGrid"}, reg.Types())
}

func TestBuilder_ConsumedByBuild(t *testing.T) {
	b := registry.NewBuilder()
	b.Register("Button", registry.Definition{})
	b.Build()

	assert.Panics(t, func() { b.Register("Label", registry.Definition{}) })
	assert.Panics(t, func() { b.Build() })
}
