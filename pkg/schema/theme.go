package schema

import (
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/value"
)

// ParseTheme parses a theme/parameters.yaml document. Themes are never
// validated; unknown or missing sections default to empty collections. Only a
// YAML syntax error fails the parse.
func ParseTheme(text []byte) (Theme, error) {
	theme := Theme{
		Roles:        map[string]value.Value{},
		ColorSchemes: map[string]map[string]string{},
		Spacing:      map[string]value.Value{},
		Breakpoints:  map[string]value.Value{},
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return Theme{}, &SchemaError{File: ThemeFileName, Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return theme, nil
	}
	root := resolveAlias(doc.Content[0])
	if root == nil || root.Kind != yaml.MappingNode {
		return theme, nil
	}

	eachMappingEntry(root, func(key string, val *yaml.Node) {
		switch key {
		case "roles":
			theme.Roles = decodeValueMap(val)
		case "color_schemes":
			eachMappingEntry(val, func(scheme string, colors *yaml.Node) {
				entries := map[string]string{}
				eachMappingEntry(colors, func(color string, raw *yaml.Node) {
					if s, ok := decodeString(raw); ok {
						entries[color] = s
					}
				})
				theme.ColorSchemes[scheme] = entries
			})
		case "spacing":
			theme.Spacing = decodeValueMap(val)
		case "breakpoints":
			theme.Breakpoints = decodeValueMap(val)
		case "fonts":
			theme.Fonts = decodeValueList(val)
		case "assets":
			eachMappingEntry(val, func(assetKey string, assetVal *yaml.Node) {
				switch assetKey {
				case "css":
					theme.Assets.CSS = decodeStringList(assetVal)
				case "html":
					theme.Assets.HTML = decodeStringList(assetVal)
				}
			})
		}
	})

	return theme, nil
}
