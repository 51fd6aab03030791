package builtin

import (
	"fmt"

	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/value"
)

// stringProps checks that each named property, when present and non-null,
// carries a string.
func stringProps(typeName string, keys ...string) registry.Validator {
	return typedProps(typeName, value.KindString, keys)
}

// boolProps checks that each named property, when present, carries a bool.
func boolProps(typeName string, keys ...string) registry.Validator {
	return typedProps(typeName, value.KindBool, keys)
}

// numberProps checks that each named property, when present, carries a number.
func numberProps(typeName string, keys ...string) registry.Validator {
	return typedProps(typeName, value.KindNumber, keys)
}

func typedProps(typeName string, kind value.Kind, keys []string) registry.Validator {
	return func(props map[string]value.Value) []string {
		var errs []string
		for _, key := range keys {
			v, ok := props[key]
			if !ok || v.IsNull() {
				continue
			}
			if v.Kind() != kind {
				errs = append(errs, fmt.Sprintf("%s property %q must be a %s, got %s", typeName, key, kind, v.Kind()))
			}
		}
		return errs
	}
}

func validateDropDown(props map[string]value.Value) []string {
	var errs []string
	if v, ok := props["items"]; ok && !v.IsNull() {
		if _, isList := v.AsList(); !isList {
			errs = append(errs, fmt.Sprintf("DropDown property \"items\" must be a list, got %s", v.Kind()))
		}
	}
	if v, ok := props["placeholder"]; ok && !v.IsNull() {
		if _, isString := v.AsString(); !isString {
			errs = append(errs, fmt.Sprintf("DropDown property \"placeholder\" must be a string, got %s", v.Kind()))
		}
	}
	return errs
}
