// Package tree assembles backend node trees from parsed components. Failures
// are isolated at node granularity: an invalid or unresolvable component
// becomes a visible error placeholder while its siblings and ancestors keep
// building. Nothing in this package can fail the overall build.
package tree

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formtree/pkg/props"
	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/schema"
	"github.com/goliatone/go-formtree/pkg/validate"
)

// RootKey is the key assigned to a form's container node.
const RootKey = "container"

// Option configures a Factory.
type Option func(*Factory)

// WithMapper injects a property mapper, typically one carrying an event
// dispatcher.
func WithMapper(m *props.Mapper) Option {
	return func(f *Factory) {
		if m != nil {
			f.mapper = m
		}
	}
}

// WithValidation toggles the node-scoped validation step. When enabled, a
// node whose own checks fail becomes an error placeholder and its subtree is
// not constructed.
func WithValidation(enabled bool) Option {
	return func(f *Factory) {
		f.validate = enabled
	}
}

// WithMaxDepth bounds component nesting. Zero means unbounded. Nodes beyond
// the bound become error placeholders instead of exhausting the stack on
// pathological input.
func WithMaxDepth(depth int) Option {
	return func(f *Factory) {
		f.maxDepth = depth
	}
}

// Factory builds backend node trees. It only reads the registry, so a single
// factory is safe for concurrent use once constructed.
type Factory struct {
	reg       *registry.Registry
	mapper    *props.Mapper
	validator *validate.Validator
	validate  bool
	maxDepth  int
}

// New constructs a Factory over the given registry.
func New(reg *registry.Registry, options ...Option) *Factory {
	f := &Factory{
		reg:    reg,
		mapper: props.NewMapper(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.validator = validate.New(reg)
	return f
}

// CreateForm builds the node tree for a template's container. The returned
// context exposes every node error recorded during the build as a non-fatal
// side channel.
func (f *Factory) CreateForm(tpl *schema.FormTemplate, formName string) (*Node, *Context) {
	ctx := NewContext(formName)
	if tpl == nil {
		return f.errorNode(schema.Component{}, RootKey, ctx, "form template is nil"), ctx
	}
	return f.CreateComponent(tpl.Container, RootKey, ctx), ctx
}

// CreateComponents builds each component in order, keyed by index. Results
// are never omitted: a failed component yields an error placeholder in place.
func (f *Factory) CreateComponents(components []schema.Component, ctx *Context) []*Node {
	if len(components) == 0 {
		return nil
	}
	out := make([]*Node, len(components))
	for i, c := range components {
		out[i] = f.CreateComponent(c, strconv.Itoa(i), ctx)
	}
	return out
}

// CreateComponent builds a single component and, recursively, its children.
// It never panics and never returns nil: any failure local to this node is
// converted into an error placeholder carrying the diagnostics.
func (f *Factory) CreateComponent(c schema.Component, key string, ctx *Context) (node *Node) {
	if ctx == nil {
		ctx = NewContext("")
	}

	// Exceptions must not propagate past a single node boundary.
	defer func() {
		if r := recover(); r != nil {
			node = f.errorNode(c, key, ctx, fmt.Sprintf("component construction failed: %v", r))
		}
	}()

	if f.maxDepth > 0 && ctx.Depth >= f.maxDepth {
		return f.errorNode(c, key, ctx, fmt.Sprintf("maximum component nesting depth %d exceeded", f.maxDepth))
	}

	if f.validate {
		if errs := f.validator.Node(&c).Errors(); len(errs) > 0 {
			return f.errorNode(c, key, ctx, errs.Messages()...)
		}
	}

	def, ok := f.reg.Definition(c.Type)
	if !ok {
		return f.errorNode(c, key, ctx, fmt.Sprintf("Unknown component type: %s", c.Type))
	}

	mapped := f.mapper.Map(c.Properties, def, props.Binding{
		ComponentType: c.Type,
		ComponentName: c.Name,
		FormName:      ctx.FormName,
	})

	var layout map[string]string
	if def.LayoutSupported {
		layout = f.mapper.MapLayout(c.LayoutProperties)
	}

	var children []*Node
	if len(c.Children) > 0 {
		children = f.CreateComponents(c.Children, ctx.child(c.Type))
	}

	return &Node{
		Type:     c.Type,
		Name:     c.Name,
		Key:      key,
		Ref:      def.Ref,
		Props:    mapped,
		Layout:   layout,
		Children: children,
	}
}

func (f *Factory) errorNode(c schema.Component, key string, ctx *Context, messages ...string) *Node {
	err := &NodeError{
		ComponentType: c.Type,
		ComponentName: c.Name,
		Messages:      messages,
	}
	ctx.record(err)
	return &Node{
		Type: c.Type,
		Name: c.Name,
		Key:  key,
		Err:  err,
	}
}
