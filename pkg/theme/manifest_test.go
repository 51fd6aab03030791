package theme_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formtree/pkg/schema"
	"github.com/goliatone/go-formtree/pkg/theme"
	"github.com/goliatone/go-formtree/pkg/value"
)

func TestManifest_Tokens(t *testing.T) {
	src := schema.Theme{
		Spacing:     map[string]value.Value{"small": value.String("4px"), "large": value.Number(24)},
		Breakpoints: map[string]value.Value{"tablet": value.Number(768)},
		Fonts:       []value.Value{value.String("Roboto")},
		Roles: map[string]value.Value{
			"headline": value.String("h1"),
			"card":     value.Map("elevation", value.Number(2)),
		},
	}

	m := theme.Manifest(src, "material")
	if m.Name != "material" || m.Version == "" {
		t.Fatalf("manifest identity missing: %+v", m)
	}
	if m.Tokens["spacing.small"] != "4px" || m.Tokens["spacing.large"] != "24" {
		t.Fatalf("spacing tokens mismatch: %v", m.Tokens)
	}
	if m.Tokens["breakpoint.tablet"] != "768" {
		t.Fatalf("breakpoint tokens mismatch: %v", m.Tokens)
	}
	if m.Tokens["font.0"] != "Roboto" {
		t.Fatalf("font tokens mismatch: %v", m.Tokens)
	}
	if m.Tokens["role.headline"] != "h1" {
		t.Fatalf("scalar role token mismatch: %v", m.Tokens)
	}
	if m.Tokens["role.card.elevation"] != "2" {
		t.Fatalf("nested role token mismatch: %v", m.Tokens)
	}
}

func TestManifest_ColorSchemes(t *testing.T) {
	src := schema.Theme{
		ColorSchemes: map[string]map[string]string{
			theme.DefaultScheme: {"primary": "#2196F3"},
			"dark":              {"primary": "#0D47A1"},
		},
	}

	m := theme.Manifest(src, "t")
	if m.Tokens["color.primary"] != "#2196F3" {
		t.Fatalf("default scheme should become base tokens: %v", m.Tokens)
	}
	variant, ok := m.Variants["dark"]
	if !ok || variant.Tokens["color.primary"] != "#0D47A1" {
		t.Fatalf("non-default schemes should become variants: %+v", m.Variants)
	}
	if _, ok := m.Variants[theme.DefaultScheme]; ok {
		t.Fatalf("the base scheme must not also be a variant")
	}
}

func TestManifest_FirstSchemeIsBaseWithoutDefault(t *testing.T) {
	src := schema.Theme{
		ColorSchemes: map[string]map[string]string{
			"night": {"primary": "#000"},
			"day":   {"primary": "#FFF"},
		},
	}

	m := theme.Manifest(src, "t")
	if m.Tokens["color.primary"] != "#FFF" {
		t.Fatalf("first sorted scheme becomes the base: %v", m.Tokens)
	}
	if _, ok := m.Variants["night"]; !ok {
		t.Fatalf("remaining schemes become variants: %+v", m.Variants)
	}
}

func TestManifest_Assets(t *testing.T) {
	src := schema.Theme{
		Assets: schema.ThemeAssets{
			CSS:  []string{"theme.css", ""},
			HTML: []string{"standard-page.html"},
		},
	}

	m := theme.Manifest(src, "t")
	if m.Assets.Files["css.0"] != "theme.css" {
		t.Fatalf("css asset missing: %v", m.Assets.Files)
	}
	if _, ok := m.Assets.Files["css.1"]; ok {
		t.Fatalf("empty asset entries are skipped")
	}
	if m.Assets.Files["html.0"] != "standard-page.html" {
		t.Fatalf("html file reference should pass through: %v", m.Assets.Files)
	}
}

func TestManifest_InlineMarkupSanitized(t *testing.T) {
	src := schema.Theme{
		Assets: schema.ThemeAssets{
			HTML: []string{`<p>Welcome</p><script>alert("x")</script>`},
		},
	}

	m := theme.Manifest(src, "t")
	entry := m.Assets.Files["html.0"]
	if !strings.Contains(entry, "<p>Welcome</p>") {
		t.Fatalf("benign markup should survive: %q", entry)
	}
	if strings.Contains(entry, "<script") {
		t.Fatalf("script tags must be stripped: %q", entry)
	}
}

func TestManifest_Empty(t *testing.T) {
	m := theme.Manifest(schema.Theme{}, "bare")
	if len(m.Tokens) != 0 || m.Variants != nil {
		t.Fatalf("empty theme yields an empty manifest: %+v", m)
	}
	if len(m.Assets.Files) != 0 {
		t.Fatalf("no assets expected: %+v", m.Assets)
	}
}
