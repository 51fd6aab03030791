package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/value"
)

// parseMappingRoot unmarshals text and returns the top-level mapping node.
// A syntax error or a non-mapping document yields a SchemaError for file.
func parseMappingRoot(text []byte, file string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return nil, &SchemaError{File: file, Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &SchemaError{File: file, Err: fmt.Errorf("top-level document must be a mapping")}
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, &SchemaError{File: file, Err: fmt.Errorf("top-level document must be a mapping, got %s", nodeKindName(root))}
	}
	return root, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func nodeKindName(node *yaml.Node) string {
	if node == nil {
		return "empty document"
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "empty document"
		}
		return "a scalar"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unsupported node"
	}
}

// eachMappingEntry walks a mapping node invoking fn per key/value pair.
// Non-mapping nodes are ignored; schema parsing is tolerant of shape drift.
func eachMappingEntry(node *yaml.Node, fn func(key string, val *yaml.Node)) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveAlias(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			continue
		}
		fn(key.Value, resolveAlias(node.Content[i+1]))
	}
}

// eachSequenceItem walks a sequence node. Non-sequence nodes are ignored.
func eachSequenceItem(node *yaml.Node, fn func(item *yaml.Node)) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return
	}
	for _, item := range node.Content {
		fn(resolveAlias(item))
	}
}

// decodeString extracts a non-null scalar string, reporting success.
func decodeString(node *yaml.Node) (string, bool) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", false
	}
	return node.Value, true
}

// decodeBool extracts a boolean scalar, reporting success.
func decodeBool(node *yaml.Node) (bool, bool) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag != "!!bool" {
		return false, false
	}
	var b bool
	if err := node.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}

// decodeValueMap converts a mapping node into a dynamic value bag.
func decodeValueMap(node *yaml.Node) map[string]value.Value {
	out := make(map[string]value.Value)
	eachMappingEntry(node, func(key string, val *yaml.Node) {
		item, err := value.FromYAML(val)
		if err != nil {
			return
		}
		out[key] = item
	})
	return out
}

// decodeValueList converts a sequence node into a slice of dynamic values.
func decodeValueList(node *yaml.Node) []value.Value {
	var out []value.Value
	eachSequenceItem(node, func(item *yaml.Node) {
		v, err := value.FromYAML(item)
		if err != nil {
			return
		}
		out = append(out, v)
	})
	return out
}

// decodeStringList keeps only scalar string entries from a sequence node.
func decodeStringList(node *yaml.Node) []string {
	var out []string
	eachSequenceItem(node, func(item *yaml.Node) {
		if s, ok := decodeString(item); ok {
			out = append(out, s)
		}
	})
	return out
}
