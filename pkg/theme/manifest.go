// Package theme adapts a parsed theme document into a go-theme manifest so
// renderer backends can resolve tokens, variants, and assets through the
// standard theming pipeline.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtree/pkg/schema"
)

// DefaultScheme is the color scheme folded into the manifest's base tokens;
// every other scheme becomes a variant.
const DefaultScheme = "default"

const manifestVersion = "1.0.0"

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Manifest converts a parsed theme into a go-theme manifest named name.
// Inline HTML assets are sanitized before being admitted.
func Manifest(t schema.Theme, name string) *gotheme.Manifest {
	manifest := &gotheme.Manifest{
		Name:    name,
		Version: manifestVersion,
		Tokens:  map[string]string{},
	}

	for _, key := range sortedKeys(t.Spacing) {
		if s := t.Spacing[key].CoerceString(); s != "" {
			manifest.Tokens["spacing."+key] = s
		}
	}
	for _, key := range sortedKeys(t.Breakpoints) {
		if s := t.Breakpoints[key].CoerceString(); s != "" {
			manifest.Tokens["breakpoint."+key] = s
		}
	}
	for i, font := range t.Fonts {
		if s := font.CoerceString(); s != "" {
			manifest.Tokens[fmt.Sprintf("font.%d", i)] = s
		}
	}
	for _, role := range sortedKeys(t.Roles) {
		val := t.Roles[role]
		for _, key := range val.Keys() {
			item, _ := val.Get(key)
			if s := item.CoerceString(); s != "" {
				manifest.Tokens["role."+role+"."+key] = s
			}
		}
		if s := val.CoerceString(); s != "" {
			manifest.Tokens["role."+role] = s
		}
	}

	applyColorSchemes(manifest, t.ColorSchemes)
	applyAssets(manifest, t.Assets)

	return manifest
}

func applyColorSchemes(manifest *gotheme.Manifest, schemes map[string]map[string]string) {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)

	base := DefaultScheme
	if _, ok := schemes[base]; !ok && len(names) > 0 {
		base = names[0]
	}

	for _, name := range names {
		colors := schemes[name]
		if name == base {
			for color, hex := range colors {
				manifest.Tokens["color."+color] = hex
			}
			continue
		}
		variant := gotheme.Variant{Tokens: map[string]string{}}
		for color, hex := range colors {
			variant.Tokens["color."+color] = hex
		}
		if manifest.Variants == nil {
			manifest.Variants = map[string]gotheme.Variant{}
		}
		manifest.Variants[name] = variant
	}
}

func applyAssets(manifest *gotheme.Manifest, assets schema.ThemeAssets) {
	if len(assets.CSS) == 0 && len(assets.HTML) == 0 {
		return
	}
	manifest.Assets = gotheme.Assets{Files: map[string]string{}}
	for i, href := range assets.CSS {
		if href == "" {
			continue
		}
		manifest.Assets.Files[fmt.Sprintf("css.%d", i)] = href
	}
	for i, entry := range assets.HTML {
		if entry == "" {
			continue
		}
		// Inline markup is sanitized; plain file references pass through.
		if strings.Contains(entry, "<") {
			entry = strings.TrimSpace(sanitizeMarkup(entry))
			if entry == "" {
				continue
			}
		}
		manifest.Assets.Files[fmt.Sprintf("html.%d", i)] = entry
	}
}

func sanitizeMarkup(raw string) string {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy.Sanitize(raw)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
