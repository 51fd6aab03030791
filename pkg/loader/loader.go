// Package loader reads a whole application bundle from a filesystem: the
// anvil.yaml config, the optional theme parameters, and every form template.
// Failures are recorded per file; one unparsable document never prevents
// sibling documents from loading.
package loader

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-formtree/pkg/diag"
	"github.com/goliatone/go-formtree/pkg/schema"
)

// App bundles everything loaded from an application directory.
type App struct {
	Config   schema.AppConfig
	Theme    schema.Theme
	HasTheme bool
	Forms    []Form
}

// Form pairs a parsed template with its dotted package name and source path.
type Form struct {
	Name     string
	Path     string
	Template schema.FormTemplate
	Warnings diag.List
}

// Form returns the named form, if loaded.
func (a *App) Form(name string) (Form, bool) {
	if a == nil {
		return Form{}, false
	}
	for _, form := range a.Forms {
		if form.Name == name {
			return form, true
		}
	}
	return Form{}, false
}

// Option configures Load.
type Option func(*config)

type config struct {
	validator schema.TemplateValidator
	validate  schema.ValidateOptions
}

// WithValidator runs the given validator over every form template as it is
// parsed. Validation errors turn into per-form diagnostics, not a load
// failure.
func WithValidator(v schema.TemplateValidator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithValidateOptions sets the validation toggles passed to the validator.
func WithValidateOptions(opts schema.ValidateOptions) Option {
	return func(c *config) {
		c.validate = opts
	}
}

// Load walks fsys and parses the application bundle. The returned diagnostics
// carry every per-file failure and warning; the error is reserved for a nil
// filesystem or a broken directory walk.
func Load(fsys fs.FS, options ...Option) (*App, diag.List, error) {
	if fsys == nil {
		return nil, nil, errors.New("loader: filesystem is required")
	}

	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	app := &App{}
	var diags diag.List

	app.Config, diags = loadConfig(fsys, diags)
	app.Theme, app.HasTheme, diags = loadTheme(fsys, diags)

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			diags = append(diags, diag.Errorf(filePath, "walk: %v", walkErr))
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() || path.Base(filePath) != schema.FormTemplateFileName {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			diags = append(diags, diag.Errorf(filePath, "read: %v", err))
			return nil
		}

		tpl, warnings, err := schema.ParseFormTemplate(data, schema.ParseFormOptions{
			ValidateOptions: cfg.validate,
			FileName:        filePath,
			Validator:       cfg.validator,
		})
		if err != nil {
			var schemaErr *schema.SchemaError
			if errors.As(err, &schemaErr) && len(schemaErr.Diagnostics) > 0 {
				diags = append(diags, schemaErr.Diagnostics...)
			} else {
				diags = append(diags, diag.Errorf(filePath, "parse: %v", err))
			}
			return nil
		}

		diags = append(diags, warnings...)
		app.Forms = append(app.Forms, Form{
			Name:     formName(filePath),
			Path:     filePath,
			Template: tpl,
			Warnings: warnings,
		})
		return nil
	})
	if err != nil {
		return nil, diags, err
	}

	return app, diags, nil
}

func loadConfig(fsys fs.FS, diags diag.List) (schema.AppConfig, diag.List) {
	data, err := fs.ReadFile(fsys, schema.AppConfigFileName)
	if err != nil {
		diags = append(diags, diag.Errorf(schema.AppConfigFileName, "read: %v", err))
		return defaultConfig(), diags
	}
	cfg, err := schema.ParseAppConfig(data)
	if err != nil {
		diags = append(diags, diag.Errorf(schema.AppConfigFileName, "parse: %v", err))
		return defaultConfig(), diags
	}
	return cfg, diags
}

func loadTheme(fsys fs.FS, diags diag.List) (schema.Theme, bool, diag.List) {
	data, err := fs.ReadFile(fsys, schema.ThemeFileName)
	if err != nil {
		// Themes are optional; absence is not a diagnostic.
		return schema.Theme{}, false, diags
	}
	theme, err := schema.ParseTheme(data)
	if err != nil {
		diags = append(diags, diag.Errorf(schema.ThemeFileName, "parse: %v", err))
		return schema.Theme{}, false, diags
	}
	return theme, true, diags
}

// defaultConfig yields the same defaults an empty mapping would parse to.
func defaultConfig() schema.AppConfig {
	cfg, _ := schema.ParseAppConfig([]byte("{}"))
	return cfg
}

func formName(filePath string) string {
	dir := path.Dir(filePath)
	if dir == "." {
		return "main"
	}
	// Conventional source roots are not part of the dotted form name.
	for _, root := range []string{"forms/", "client_code/"} {
		if strings.HasPrefix(dir, root) {
			dir = strings.TrimPrefix(dir, root)
			break
		}
	}
	return strings.ReplaceAll(dir, "/", ".")
}
