package tree

import (
	"strings"

	"github.com/goliatone/go-formtree/pkg/registry"
)

// Node is the result of building a single component: either a backend-ready
// node or an error placeholder. A node never carries both a backend payload
// and an error; IsError distinguishes the two.
type Node struct {
	// Type and Name echo the source component.
	Type string
	Name string

	// Key identifies the node within its parent ("container" for roots,
	// the child index otherwise).
	Key string

	// Ref is the opaque backend binding from the resolved definition.
	Ref registry.BackendRef

	// Props is the mapped backend property bag.
	Props map[string]any

	// Layout holds backend layout directives; nil when the type does not
	// support layout or no directives were produced.
	Layout map[string]string

	// Children are the successfully processed child nodes in document
	// order. A failed child appears as an error node, never as a gap.
	Children []*Node

	// Err is set on error placeholder nodes.
	Err *NodeError
}

// IsError reports whether the node is an error placeholder.
func (n *Node) IsError() bool {
	return n != nil && n.Err != nil
}

// Walk visits the node and its descendants pre-order, stopping when fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// NodeError carries the diagnostics attached to an error placeholder node,
// tagged with the offending component's type and name.
type NodeError struct {
	ComponentType string
	ComponentName string
	Messages      []string
}

// Error joins the messages into a single string.
func (e *NodeError) Error() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Messages, "; ")
}
