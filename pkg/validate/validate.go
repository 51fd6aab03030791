// Package validate walks parsed component trees collecting diagnostics. The
// walk is pre-order and never short-circuits: every node is visited and every
// finding is appended in traversal order, without de-duplication.
package validate

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formtree/pkg/diag"
	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/schema"
)

// SelfHandlerPrefix is the handler-reference prefix event bindings are
// expected to carry. Bindings without it are flagged as warnings only.
const SelfHandlerPrefix = "self."

// Validator checks component trees against a type registry.
type Validator struct {
	reg *registry.Registry
}

// New constructs a Validator backed by the given registry.
func New(reg *registry.Registry) *Validator {
	return &Validator{reg: reg}
}

// ComponentTree validates root and every descendant in pre-order. Diagnostics
// of a node precede those of its children; sibling subtrees follow document
// order.
func (v *Validator) ComponentTree(root *schema.Component) diag.List {
	if root == nil {
		return nil
	}
	var out diag.List
	v.walk(root, &out)
	return out
}

// Node validates a single component without descending into its children.
// The tree factory uses this for its node-scoped validation step.
func (v *Validator) Node(c *schema.Component) diag.List {
	if c == nil {
		return nil
	}
	var out diag.List
	v.nodeChecks(c, &out)
	return out
}

func (v *Validator) walk(c *schema.Component, out *diag.List) {
	v.nodeChecks(c, out)
	for i := range c.Children {
		v.walk(&c.Children[i], out)
	}
}

func (v *Validator) nodeChecks(c *schema.Component, out *diag.List) {
	def, ok := v.reg.Definition(c.Type)
	if !ok {
		*out = append(*out, diag.Errorf("", "Unknown component type: %s", c.Type))
	} else if def.Validate != nil {
		for _, msg := range def.Validate(c.Properties) {
			*out = append(*out, diag.Errorf("", "%s", msg))
		}
	}

	switch {
	case c.RawName.IsNull():
		*out = append(*out, diag.Warnf("", "component of type %q has no name", c.Type))
	default:
		if _, isString := c.RawName.AsString(); !isString {
			*out = append(*out, diag.Errorf("", "component name must be a string, got %s", c.RawName.Kind()))
		}
	}
}

// FormTemplate validates a whole template: the container type must be
// present, the component tree is validated recursively, and the optional
// event-binding and data-binding passes run according to opts.
func (v *Validator) FormTemplate(tpl *schema.FormTemplate, opts schema.ValidateOptions) diag.List {
	if tpl == nil {
		return nil
	}
	var out diag.List

	if strings.TrimSpace(tpl.Container.Type) == "" {
		out = append(out, diag.Errorf("", "form container component type is required"))
		// Children are still validated so the aggregate report is complete.
		for i := range tpl.Container.Children {
			out = append(out, v.ComponentTree(&tpl.Container.Children[i])...)
		}
	} else {
		out = append(out, v.ComponentTree(&tpl.Container)...)
	}

	if !opts.AllowCustomComponents {
		flagCustomComponents(&tpl.Container, &out)
	}

	if opts.ValidateEventBindings {
		events := make([]string, 0, len(tpl.EventBindings))
		for event := range tpl.EventBindings {
			events = append(events, event)
		}
		sort.Strings(events)
		for _, event := range events {
			handler := tpl.EventBindings[event]
			if !strings.HasPrefix(handler, SelfHandlerPrefix) {
				out = append(out, diag.Warnf("", "event binding %q handler %q does not reference a form method (expected %s prefix)", event, handler, SelfHandlerPrefix))
			}
		}
	}

	if opts.ValidateDataBindings {
		names := map[string]struct{}{}
		collectNames(&tpl.Container, names)
		for _, binding := range tpl.DataBindings {
			if _, ok := names[binding.Component]; !ok {
				out = append(out, diag.Warnf("", "data binding references unknown component %q", binding.Component))
			}
		}
	}

	return out
}

// ValidateTemplate satisfies schema.TemplateValidator so the parser can run
// this validator without importing the registry.
func (v *Validator) ValidateTemplate(tpl *schema.FormTemplate, opts schema.ValidateOptions) diag.List {
	return v.FormTemplate(tpl, opts)
}

func flagCustomComponents(c *schema.Component, out *diag.List) {
	if parsed := registry.ParseComponentType(c.Type); parsed.Category == registry.CategoryDependency {
		*out = append(*out, diag.Errorf("", "custom components are not allowed here: %s", c.Type))
	}
	for i := range c.Children {
		flagCustomComponents(&c.Children[i], out)
	}
}

func collectNames(c *schema.Component, names map[string]struct{}) {
	if c.Name != "" {
		names[c.Name] = struct{}{}
	}
	for i := range c.Children {
		collectNames(&c.Children[i], names)
	}
}
