package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-formtree/pkg/registry"
)

func TestParseComponentType(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want registry.ParsedTypeName
	}{
		{
			name: "dependency triple",
			in:   "form:dep_123:CustomButton",
			want: registry.ParsedTypeName{
				Category:     registry.CategoryDependency,
				DependencyID: "dep_123",
				Name:         "CustomButton",
			},
		},
		{
			name: "package",
			in:   "anvil.DataGrid",
			want: registry.ParsedTypeName{
				Category:  registry.CategoryPackage,
				Namespace: "anvil",
				Name:      "DataGrid",
			},
		},
		{
			name: "package splits on first dot only",
			in:   "anvil.grid.Row",
			want: registry.ParsedTypeName{
				Category:  registry.CategoryPackage,
				Namespace: "anvil",
				Name:      "grid.Row",
			},
		},
		{
			name: "builtin",
			in:   "Button",
			want: registry.ParsedTypeName{Category: registry.CategoryBuiltin, Name: "Button"},
		},
		{
			name: "malformed dependency with two segments falls through to builtin",
			in:   "form:broken",
			want: registry.ParsedTypeName{Category: registry.CategoryBuiltin, Name: "form:broken"},
		},
		{
			name: "malformed dependency with four segments falls through to builtin",
			in:   "form:a:b:c",
			want: registry.ParsedTypeName{Category: registry.CategoryBuiltin, Name: "form:a:b:c"},
		},
		{
			name: "malformed dependency with dot falls through to package",
			in:   "form:a:b:pkg.Widget",
			want: registry.ParsedTypeName{
				Category:  registry.CategoryPackage,
				Namespace: "form:a:b:pkg",
				Name:      "Widget",
			},
		},
		{
			name: "empty string is builtin",
			in:   "",
			want: registry.ParsedTypeName{Category: registry.CategoryBuiltin, Name: ""},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, registry.ParseComponentType(tc.in))
		})
	}
}

func TestParsedTypeName_String(t *testing.T) {
	assert.Equal(t, "form:dep:Widget", registry.ParseComponentType("form:dep:Widget").String())
	assert.Equal(t, "anvil.DataGrid", registry.ParseComponentType("anvil.DataGrid").String())
	assert.Equal(t, "Button", registry.ParseComponentType("Button").String())
}
