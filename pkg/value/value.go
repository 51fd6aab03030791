// Package value models the loosely-typed property bags found in application
// schema documents as a tagged dynamic value. Parsing converts raw YAML into
// Values once; validation and property mapping then pattern-match on the tag
// instead of duck-typing interface{} payloads.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind tags the dynamic value variants.
type Kind string

const (
	KindNull   Kind = "null"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindList   Kind = "list"
	KindMap    Kind = "map"
)

// Value is an immutable tagged dynamic value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    map[string]Value
	keys []string
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number wraps a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List wraps an ordered sequence of values.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Map builds a map value from alternating key/value pairs, preserving the
// given order. It panics on an odd number of arguments; it is intended for
// literals in wiring and test code.
func Map(pairs ...any) Value {
	if len(pairs)%2 != 0 {
		panic("value: Map requires an even number of arguments")
	}
	v := Value{kind: KindMap, m: make(map[string]Value, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("value: Map key %v is not a string", pairs[i]))
		}
		item, ok := pairs[i+1].(Value)
		if !ok {
			item = FromAny(pairs[i+1])
		}
		if _, exists := v.m[key]; !exists {
			v.keys = append(v.keys, key)
		}
		v.m[key] = item
	}
	return v
}

// FromAny converts an arbitrary Go value into a tagged Value. Unsupported
// types degrade to their string representation rather than failing, matching
// the tolerant posture of the schema parser.
func FromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case string:
		return String(v)
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = FromAny(item)
		}
		return List(items...)
	case map[string]any:
		out := Value{kind: KindMap, m: make(map[string]Value, len(v))}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out.keys = append(out.keys, key)
			out.m[key] = FromAny(v[key])
		}
		return out
	default:
		return String(fmt.Sprintf("%v", raw))
	}
}

// FromYAML converts a decoded YAML node into a tagged Value, preserving
// document order for mappings.
func FromYAML(node *yaml.Node) (Value, error) {
	if node == nil {
		return Null(), nil
	}
	switch node.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.ScalarNode:
		return fromScalar(node)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := FromYAML(child)
			if err != nil {
				return Null(), err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		out := Value{kind: KindMap, m: make(map[string]Value, len(node.Content)/2)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return Null(), fmt.Errorf("value: decode mapping key at line %d: %w", node.Content[i].Line, err)
			}
			item, err := FromYAML(node.Content[i+1])
			if err != nil {
				return Null(), err
			}
			if _, exists := out.m[key]; !exists {
				out.keys = append(out.keys, key)
			}
			out.m[key] = item
		}
		return out, nil
	default:
		return Null(), fmt.Errorf("value: unsupported YAML node kind %d at line %d", node.Kind, node.Line)
	}
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Null(), fmt.Errorf("value: decode bool at line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return Null(), fmt.Errorf("value: decode number at line %d: %w", node.Line, err)
		}
		return Number(n), nil
	default:
		return String(node.Value), nil
	}
}

// Kind returns the value tag.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// AsBool returns the boolean payload when the value is a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload when the value is a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// AsString returns the string payload when the value is a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsList returns the sequence payload when the value is a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// Keys returns the map keys in document order; nil for non-map values.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return v.keys
}

// Get looks up a map entry by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Null(), false
	}
	item, ok := v.m[key]
	return item, ok
}

// Len returns the element count for lists and maps, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// CoerceString renders scalar values as strings: strings verbatim, numbers in
// their shortest decimal form, booleans as true/false. Non-scalar values and
// null coerce to the empty string.
func (v Value) CoerceString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface exports the value as plain Go data (nil, bool, float64, string,
// []any, map[string]any) for handoff to the renderer backend.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for key, item := range v.m {
			out[key] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports structural equality. Map comparison ignores key order.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for key, item := range v.m {
			got, ok := other.m[key]
			if !ok || !item.Equal(got) {
				return false
			}
		}
		return true
	}
	return false
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, 0, len(v.keys))
		for _, key := range v.keys {
			parts = append(parts, key+": "+v.m[key].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.CoerceString()
	}
}
