package registry

import "strings"

// Category is the closed set of component type namespaces. ParseComponentType
// is the single translation boundary between raw type strings and this sum;
// nothing else in the module infers a category from string shape.
type Category string

const (
	// CategoryBuiltin covers bare type names registered by the renderer
	// backend bootstrap.
	CategoryBuiltin Category = "builtin"
	// CategoryDependency covers form:<dep_id>:<name> references into a
	// dependency application.
	CategoryDependency Category = "dependency"
	// CategoryPackage covers namespace.name references into a component
	// package.
	CategoryPackage Category = "package"
)

const dependencyPrefix = "form:"

// ParsedTypeName is the structured form of a component type string. It is
// derived on demand and never stored in the component tree.
type ParsedTypeName struct {
	Category     Category
	Namespace    string
	DependencyID string
	Name         string
}

// String reassembles the canonical type string.
func (p ParsedTypeName) String() string {
	switch p.Category {
	case CategoryDependency:
		return dependencyPrefix + p.DependencyID + ":" + p.Name
	case CategoryPackage:
		return p.Namespace + "." + p.Name
	default:
		return p.Name
	}
}

// ParseComponentType classifies a raw component type string. It is pure and
// total. Precedence: a form: prefix splitting into exactly three colon
// segments is a dependency reference; otherwise a dotted name is a package
// reference; anything else is a builtin. Malformed form: strings fall through
// to the later rules instead of erroring.
func ParseComponentType(typeName string) ParsedTypeName {
	if strings.HasPrefix(typeName, dependencyPrefix) {
		if segments := strings.Split(typeName, ":"); len(segments) == 3 {
			return ParsedTypeName{
				Category:     CategoryDependency,
				DependencyID: segments[1],
				Name:         segments[2],
			}
		}
	}
	if idx := strings.Index(typeName, "."); idx >= 0 {
		return ParsedTypeName{
			Category:  CategoryPackage,
			Namespace: typeName[:idx],
			Name:      typeName[idx+1:],
		}
	}
	return ParsedTypeName{Category: CategoryBuiltin, Name: typeName}
}
