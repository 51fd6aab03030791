// Package formtree compiles declarative YAML application and form schemas
// into validated, backend-ready component trees. The Compiler wires the
// schema parser, type registry, tree validator, property mapper, and tree
// factory behind a single entry point while remaining open to dependency
// injection for advanced callers.
package formtree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formtree/pkg/builtin"
	"github.com/goliatone/go-formtree/pkg/diag"
	"github.com/goliatone/go-formtree/pkg/loader"
	"github.com/goliatone/go-formtree/pkg/props"
	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/schema"
	"github.com/goliatone/go-formtree/pkg/tree"
	"github.com/goliatone/go-formtree/pkg/validate"
)

// Aliases for the types callers touch most, exported from the root package
// for convenience.
type (
	// Diagnostic is a located parse or validation finding.
	Diagnostic = diag.Diagnostic
	// AppConfig is the parsed application configuration.
	AppConfig = schema.AppConfig
	// FormTemplate is a parsed form description.
	FormTemplate = schema.FormTemplate
	// Node is a built component tree node or error placeholder.
	Node = tree.Node
	// Dispatcher forwards component events to the server event bridge.
	Dispatcher = props.Dispatcher
	// ValidateOptions toggles the optional template validation passes.
	ValidateOptions = schema.ValidateOptions
)

// ParseComponentType re-exports the type-name classifier.
func ParseComponentType(typeName string) registry.ParsedTypeName {
	return registry.ParseComponentType(typeName)
}

// Option customises the Compiler configuration.
type Option func(*Compiler)

// WithRegistry injects a custom component registry. Defaults to the builtin
// catalog.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Compiler) {
		c.reg = reg
	}
}

// WithDispatcher wires the event bridge callbacks dispatch through.
func WithDispatcher(d props.Dispatcher) Option {
	return func(c *Compiler) {
		c.dispatcher = d
	}
}

// WithValidateOptions sets the validation toggles applied while parsing form
// templates.
func WithValidateOptions(opts schema.ValidateOptions) Option {
	return func(c *Compiler) {
		c.validateOpts = opts
	}
}

// WithNodeValidation enables the factory's node-scoped validation step.
func WithNodeValidation(enabled bool) Option {
	return func(c *Compiler) {
		c.nodeValidation = enabled
	}
}

// WithMaxDepth bounds component nesting during tree construction.
func WithMaxDepth(depth int) Option {
	return func(c *Compiler) {
		c.maxDepth = depth
	}
}

// Compiler drives the parse → validate → map → assemble pipeline. It is
// immutable after construction and safe for concurrent use.
type Compiler struct {
	reg            *registry.Registry
	validator      *validate.Validator
	factory        *tree.Factory
	dispatcher     props.Dispatcher
	validateOpts   schema.ValidateOptions
	nodeValidation bool
	maxDepth       int
}

// New constructs a Compiler, filling missing dependencies with the built-in
// implementations.
func New(options ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.reg == nil {
		c.reg = builtin.Registry()
	}
	c.validator = validate.New(c.reg)

	factoryOptions := []tree.Option{
		tree.WithValidation(c.nodeValidation),
		tree.WithMaxDepth(c.maxDepth),
	}
	if c.dispatcher != nil {
		factoryOptions = append(factoryOptions, tree.WithMapper(
			props.NewMapper(props.WithDispatcher(c.dispatcher)),
		))
	}
	c.factory = tree.New(c.reg, factoryOptions...)
	return c
}

// Registry exposes the compiler's component registry.
func (c *Compiler) Registry() *registry.Registry {
	return c.reg
}

// FormResult bundles the outcome of compiling one form.
type FormResult struct {
	Name string

	// Template is the parsed, validated form template.
	Template schema.FormTemplate

	// Root is the built node tree handed to the renderer backend.
	Root *tree.Node

	// Warnings are advisory diagnostics from parse and validation.
	Warnings diag.List

	// NodeErrors lists every error placeholder produced during assembly.
	NodeErrors []*tree.NodeError
}

// CompileForm parses a form template document and assembles its node tree.
// It fails when the YAML is malformed or validation reports an error; node
// construction failures never fail the compile and surface as error
// placeholder nodes plus NodeErrors entries.
func (c *Compiler) CompileForm(ctx context.Context, source []byte, formName string) (*FormResult, error) {
	if ctx == nil {
		return nil, errors.New("formtree: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, warnings, err := schema.ParseFormTemplate(source, schema.ParseFormOptions{
		ValidateOptions: c.validateOpts,
		Validator:       c.validator,
	})
	if err != nil {
		return nil, fmt.Errorf("formtree: parse form %q: %w", formName, err)
	}

	root, buildCtx := c.factory.CreateForm(&tpl, formName)
	return &FormResult{
		Name:       formName,
		Template:   tpl,
		Root:       root,
		Warnings:   warnings,
		NodeErrors: buildCtx.Errors(),
	}, nil
}

// AppResult bundles a loaded application with its compiled forms.
type AppResult struct {
	App *loader.App

	// Diagnostics carries the per-file findings from the directory walk.
	Diagnostics diag.List

	// Forms holds one result per successfully parsed form, in load order.
	Forms []*FormResult
}

// CompileApp loads a whole application bundle from fsys and compiles every
// form that parsed. Per-file failures are reported in Diagnostics; they never
// abort the remaining files.
func (c *Compiler) CompileApp(ctx context.Context, fsys fs.FS) (*AppResult, error) {
	if ctx == nil {
		return nil, errors.New("formtree: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, diags, err := loader.Load(fsys,
		loader.WithValidator(c.validator),
		loader.WithValidateOptions(c.validateOpts),
	)
	if err != nil {
		return nil, fmt.Errorf("formtree: load application: %w", err)
	}

	result := &AppResult{App: app, Diagnostics: diags}
	for _, form := range app.Forms {
		tpl := form.Template
		root, buildCtx := c.factory.CreateForm(&tpl, form.Name)
		result.Forms = append(result.Forms, &FormResult{
			Name:       form.Name,
			Template:   tpl,
			Root:       root,
			Warnings:   form.Warnings,
			NodeErrors: buildCtx.Errors(),
		})
	}
	return result, nil
}

// Form returns the compiled form with the given name.
func (r *AppResult) Form(name string) (*FormResult, bool) {
	if r == nil {
		return nil, false
	}
	for _, form := range r.Forms {
		if form.Name == name {
			return form, true
		}
	}
	return nil, false
}
