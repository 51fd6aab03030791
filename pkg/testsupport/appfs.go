// Package testsupport builds in-memory application bundles for tests. Helpers
// taking *testing.T fail the test on error to keep contract tests concise.
package testsupport

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formtree/pkg/schema"
)

// MinimalAppConfig is a small but complete anvil.yaml document tests can
// start from.
const MinimalAppConfig = `package_name: test_app
name: Test App
metadata:
  title: Test App
startup_form: Main
`

// MinimalFormTemplate is a one-button form most bundle tests can reuse.
const MinimalFormTemplate = `container:
  type: ColumnPanel
  name: content_panel
  components:
    - type: Button
      name: save_button
      properties:
        text: Save
event_bindings:
  save_button.click: self.save_button_click
`

// AppFS assembles an in-memory application bundle.
type AppFS struct {
	files fstest.MapFS
}

// NewAppFS starts a bundle with the given anvil.yaml body. An empty config
// omits the file entirely so tests can exercise the missing-config path.
func NewAppFS(config string) *AppFS {
	a := &AppFS{files: fstest.MapFS{}}
	if config != "" {
		a.files[schema.AppConfigFileName] = &fstest.MapFile{Data: []byte(config)}
	}
	return a
}

// WithForm adds a form template under forms/<name>/form_template.yaml.
func (a *AppFS) WithForm(name, template string) *AppFS {
	a.files["forms/"+name+"/"+schema.FormTemplateFileName] = &fstest.MapFile{Data: []byte(template)}
	return a
}

// WithTheme adds the theme/parameters.yaml document.
func (a *AppFS) WithTheme(theme string) *AppFS {
	a.files[schema.ThemeFileName] = &fstest.MapFile{Data: []byte(theme)}
	return a
}

// WithFile adds an arbitrary file to the bundle.
func (a *AppFS) WithFile(path, contents string) *AppFS {
	a.files[path] = &fstest.MapFile{Data: []byte(contents)}
	return a
}

// FS returns the assembled filesystem.
func (a *AppFS) FS() fstest.MapFS {
	return a.files
}

// MustParseForm parses a form template, failing the test on error.
func MustParseForm(t *testing.T, template string) schema.FormTemplate {
	t.Helper()

	tpl, _, err := schema.ParseFormTemplate([]byte(template), schema.ParseFormOptions{})
	if err != nil {
		t.Fatalf("parse form template: %v", err)
	}
	return tpl
}
