// Package registry resolves component type names to component definitions.
// Definitions are registered through a Builder that is consumed into an
// immutable Registry; after Build the registry is read-only and safe for
// concurrent readers, which is what makes simultaneous tree-factory calls
// sound.
package registry

import (
	"sort"

	"github.com/goliatone/go-formtree/pkg/value"
)

// BackendRef is the opaque handle the renderer backend associates with a
// component type. The core passes it through without inspecting it.
type BackendRef any

// PlaceholderRef marks a dependency or package component that could not be
// resolved. The renderer backend displays it as a neutral "unresolved
// component" marker carrying the identifiers for diagnostics.
type PlaceholderRef struct {
	Category     Category
	DependencyID string
	Namespace    string
	Name         string
}

// Validator inspects a component's domain properties and returns one message
// per violation. A nil Validator means the type has no checks of its own.
type Validator func(props map[string]value.Value) []string

// Definition binds a component type to its backend implementation together
// with the data the property mapper and validator need.
type Definition struct {
	// Ref is handed to the renderer backend on every built node.
	Ref BackendRef

	// DefaultProperties seed the backend property bag before mapping.
	DefaultProperties map[string]any

	// PropertyMapping maps domain property keys to backend keys. When nil,
	// domain properties are copied through verbatim.
	PropertyMapping map[string]string

	// LayoutSupported enables layout-property mapping for the type.
	LayoutSupported bool

	// Validate runs the type-specific property checks.
	Validate Validator
}

// CoreComponentsDependencyID identifies the well-known shared component
// dependency whose types are shipped as builtins by this runtime. References
// through it are remapped to the local builtin set.
const CoreComponentsDependencyID = "core_components"

var coreComponentRemap = map[string]string{
	"Button":   "Button",
	"Label":    "Label",
	"TextBox":  "TextBox",
	"CheckBox": "CheckBox",
	"DropDown": "DropDown",
}

// Builder accumulates registrations and is consumed into an immutable
// Registry. Registration is idempotent per name; the last write wins. Using a
// builder after Build panics, enforcing the populate-before-use lifecycle.
type Builder struct {
	builtins map[string]Definition
	packages map[string]Definition
	consumed bool
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		builtins: make(map[string]Definition),
		packages: make(map[string]Definition),
	}
}

// Register inserts or overwrites a builtin definition.
func (b *Builder) Register(name string, def Definition) *Builder {
	b.checkUsable()
	if name == "" {
		panic("registry: builtin name is required")
	}
	b.builtins[name] = def
	return b
}

// RegisterPackage inserts or overwrites a namespaced package component.
func (b *Builder) RegisterPackage(namespace, name string, def Definition) *Builder {
	b.checkUsable()
	if namespace == "" || name == "" {
		panic("registry: package namespace and name are required")
	}
	b.packages[namespace+"."+name] = def
	return b
}

// Build consumes the builder and returns the immutable registry. Any further
// registration through the builder panics.
func (b *Builder) Build() *Registry {
	b.checkUsable()
	b.consumed = true
	reg := &Registry{
		builtins: b.builtins,
		packages: b.packages,
	}
	b.builtins = nil
	b.packages = nil
	return reg
}

func (b *Builder) checkUsable() {
	if b.consumed {
		panic("registry: builder already consumed by Build")
	}
}

// Registry maps component type names to definitions. It is immutable after
// construction; concurrent readers require no synchronisation.
type Registry struct {
	builtins map[string]Definition
	packages map[string]Definition
}

// Definition resolves a component type name. Resolution order: exact builtin
// match, the core-components dependency remap, then placeholder synthesis for
// dependency and package references. Only an unregistered builtin name fails
// to resolve; dependency and package lookups always yield a definition.
func (r *Registry) Definition(typeName string) (Definition, bool) {
	if def, ok := r.builtins[typeName]; ok {
		return def, true
	}

	parsed := ParseComponentType(typeName)
	switch parsed.Category {
	case CategoryDependency:
		if parsed.DependencyID == CoreComponentsDependencyID {
			if builtin, ok := coreComponentRemap[parsed.Name]; ok {
				if def, ok := r.builtins[builtin]; ok {
					return def, true
				}
			}
		}
		return placeholderDefinition(parsed), true
	case CategoryPackage:
		if def, ok := r.packages[parsed.Namespace+"."+parsed.Name]; ok {
			return def, true
		}
		return placeholderDefinition(parsed), true
	default:
		return Definition{}, false
	}
}

// Has reports whether the type name resolves to a definition.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.Definition(typeName)
	return ok
}

// Types returns the registered builtin names plus the namespace.name package
// composites, sorted for stable output.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.builtins)+len(r.packages))
	for name := range r.builtins {
		out = append(out, name)
	}
	for name := range r.packages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func placeholderDefinition(parsed ParsedTypeName) Definition {
	return Definition{
		Ref: PlaceholderRef{
			Category:     parsed.Category,
			DependencyID: parsed.DependencyID,
			Namespace:    parsed.Namespace,
			Name:         parsed.Name,
		},
		LayoutSupported: true,
	}
}
