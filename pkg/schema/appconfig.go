package schema

import (
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/value"
)

// ParseAppConfig parses an anvil.yaml document. It fails only when the text
// is not valid YAML or the top level is not a mapping; every declared field
// otherwise receives a type-appropriate default. Fields of the wrong YAML
// shape keep their default rather than failing the document.
func ParseAppConfig(text []byte) (AppConfig, error) {
	cfg := AppConfig{
		Dependencies:   []Dependency{},
		Services:       []value.Value{},
		NativeDeps:     []value.Value{},
		RuntimeOptions: RuntimeOptions{Version: DefaultRuntimeVersion},
	}

	root, err := parseMappingRoot(text, AppConfigFileName)
	if err != nil {
		return AppConfig{}, err
	}

	eachMappingEntry(root, func(key string, val *yaml.Node) {
		switch key {
		case "package_name":
			if s, ok := decodeString(val); ok {
				cfg.PackageName = s
			}
		case "name":
			if s, ok := decodeString(val); ok {
				cfg.Name = s
			}
		case "dependencies":
			eachSequenceItem(val, func(item *yaml.Node) {
				dep := Dependency{}
				eachMappingEntry(item, func(depKey string, depVal *yaml.Node) {
					if depKey == "app_id" {
						if s, ok := decodeString(depVal); ok {
							dep.AppID = s
						}
					}
				})
				if dep.AppID != "" {
					cfg.Dependencies = append(cfg.Dependencies, dep)
				}
			})
		case "services":
			cfg.Services = append(cfg.Services, decodeValueList(val)...)
		case "allow_embedding":
			if b, ok := decodeBool(val); ok {
				cfg.AllowEmbedding = b
			}
		case "runtime_options":
			eachMappingEntry(val, func(optKey string, optVal *yaml.Node) {
				s, ok := decodeString(optVal)
				if !ok {
					return
				}
				switch optKey {
				case "version":
					if s != "" {
						cfg.RuntimeOptions.Version = s
					}
				case "client_version":
					cfg.RuntimeOptions.ClientVersion = s
				case "server_version":
					cfg.RuntimeOptions.ServerVersion = s
				}
			})
		case "metadata":
			eachMappingEntry(val, func(metaKey string, metaVal *yaml.Node) {
				s, ok := decodeString(metaVal)
				if !ok {
					return
				}
				switch metaKey {
				case "title":
					cfg.Metadata.Title = s
				case "description":
					cfg.Metadata.Description = s
				case "logo":
					cfg.Metadata.Logo = s
				}
			})
		case "startup_form":
			if s, ok := decodeString(val); ok {
				cfg.StartupForm = s
			}
		case "startup":
			// Newer documents replace startup_form with a startup mapping;
			// the module entry wins only when startup_form is absent.
			eachMappingEntry(val, func(startKey string, startVal *yaml.Node) {
				if startKey != "module" {
					return
				}
				if s, ok := decodeString(startVal); ok && cfg.StartupForm == "" {
					cfg.StartupForm = s
				}
			})
		case "native_deps":
			cfg.NativeDeps = append(cfg.NativeDeps, decodeValueList(val)...)
		case "db_schema":
			if v, err := value.FromYAML(val); err == nil {
				cfg.DBSchema = v
			}
		}
	})

	if cfg.Metadata.Title == "" {
		cfg.Metadata.Title = cfg.Name
	}
	if cfg.Metadata.Title == "" {
		cfg.Metadata.Title = FallbackTitle
	}

	return cfg, nil
}
