package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtree/pkg/schema"
)

func TestParseTheme(t *testing.T) {
	src := []byte(`
roles:
  headline:
    - h1
color_schemes:
  default:
    primary: "#2196F3"
    surface: "#FFFFFF"
  dark:
    primary: "#0D47A1"
    ignored: [not, a, color]
spacing:
  small: 4px
  medium: 8px
breakpoints:
  tablet: 768
fonts:
  - name: Roboto
    url: https://fonts.example/roboto
assets:
  css:
    - theme.css
  html:
    - standard-page.html
`)

	theme, err := schema.ParseTheme(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[string]map[string]string{
		"default": {"primary": "#2196F3", "surface": "#FFFFFF"},
		"dark":    {"primary": "#0D47A1"},
	}
	if diff := cmp.Diff(want, theme.ColorSchemes); diff != "" {
		t.Fatalf("color schemes mismatch (-want +got):\n%s", diff)
	}
	if len(theme.Roles) != 1 || len(theme.Spacing) != 2 || len(theme.Breakpoints) != 1 {
		t.Fatalf("sections not parsed: %+v", theme)
	}
	if len(theme.Fonts) != 1 {
		t.Fatalf("fonts not parsed: %+v", theme.Fonts)
	}
	if diff := cmp.Diff([]string{"theme.css"}, theme.Assets.CSS); diff != "" {
		t.Fatalf("css assets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"standard-page.html"}, theme.Assets.HTML); diff != "" {
		t.Fatalf("html assets mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTheme_EmptyAndNonMapping(t *testing.T) {
	for _, src := range []string{"", "null", "- a\n- b\n"} {
		theme, err := schema.ParseTheme([]byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if theme.Roles == nil || theme.ColorSchemes == nil || theme.Spacing == nil || theme.Breakpoints == nil {
			t.Fatalf("sections must default to empty collections for %q", src)
		}
	}
}

func TestParseTheme_Malformed(t *testing.T) {
	_, err := schema.ParseTheme([]byte("roles: ["))
	if err == nil {
		t.Fatalf("expected YAML error")
	}
	var schemaErr *schema.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if schemaErr.File != schema.ThemeFileName {
		t.Fatalf("error should name the theme file: %q", schemaErr.File)
	}
}
