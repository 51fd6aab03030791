package schema

import (
	"github.com/goliatone/go-formtree/pkg/diag"
	"github.com/goliatone/go-formtree/pkg/value"
)

// Default file names the parsers attribute diagnostics to when the caller
// does not supply one.
const (
	AppConfigFileName    = "anvil.yaml"
	FormTemplateFileName = "form_template.yaml"
	ThemeFileName        = "theme/parameters.yaml"
)

// FallbackTitle is used when neither metadata.title nor the application name
// yields a non-empty title.
const FallbackTitle = "Untitled App"

// DefaultRuntimeVersion fills runtime_options.version when the document omits
// it.
const DefaultRuntimeVersion = "1.0"

// AppConfig is the parsed application configuration. Every field is filled
// with a type-appropriate default; none is ever left undefined. Instances are
// immutable after parsing.
type AppConfig struct {
	PackageName    string
	Name           string
	Dependencies   []Dependency
	Services       []value.Value
	AllowEmbedding bool
	RuntimeOptions RuntimeOptions
	Metadata       AppMetadata
	StartupForm    string
	NativeDeps     []value.Value
	DBSchema       value.Value
}

// Dependency references another application this one pulls components from.
type Dependency struct {
	AppID string
}

// RuntimeOptions pins the runtime versions the application targets.
type RuntimeOptions struct {
	Version       string
	ClientVersion string
	ServerVersion string
}

// AppMetadata carries presentation metadata. Title always resolves to a
// non-empty string.
type AppMetadata struct {
	Title       string
	Description string
	Logo        string
}

// FormTemplate is the parsed description of a single UI form.
type FormTemplate struct {
	Container             Component
	Components            []Component
	EventBindings         map[string]string
	DataBindings          []DataBinding
	IsPackage             bool
	CustomComponentEvents value.Value
	LayoutMetadata        map[string]value.Value
}

// DataBinding wires a server code expression to a component property.
// Entries missing any of the three fields are dropped during parsing.
type DataBinding struct {
	Component string
	Property  string
	Code      string
}

// Component is a node in the declarative component tree. Children are owned
// top-down; there is no back-reference to the parent.
type Component struct {
	Type             string
	Name             string
	RawName          value.Value
	Properties       map[string]value.Value
	LayoutProperties map[string]value.Value
	Children         []Component
}

// Theme is the parsed theme/parameters.yaml document. Missing sections are
// empty collections, never nil panics downstream.
type Theme struct {
	Roles        map[string]value.Value
	ColorSchemes map[string]map[string]string
	Spacing      map[string]value.Value
	Breakpoints  map[string]value.Value
	Fonts        []value.Value
	Assets       ThemeAssets
}

// ThemeAssets lists the stylesheet and markup assets a theme ships.
type ThemeAssets struct {
	CSS  []string
	HTML []string
}

// ValidateOptions toggles the optional validation passes run while parsing a
// form template.
type ValidateOptions struct {
	AllowCustomComponents bool
	ValidateDataBindings  bool
	ValidateEventBindings bool
}

// TemplateValidator validates a parsed form template. The validate package
// provides the canonical implementation; it is injected here to keep the
// parser free of a registry dependency.
type TemplateValidator interface {
	ValidateTemplate(tpl *FormTemplate, opts ValidateOptions) diag.List
}

// ParseFormOptions configures ParseFormTemplate.
type ParseFormOptions struct {
	ValidateOptions

	// FileName overrides the file attributed to diagnostics. Defaults to
	// form_template.yaml.
	FileName string

	// Validator runs over the parsed template. When nil only structural
	// parse diagnostics are produced and parsing never fails past the YAML
	// stage.
	Validator TemplateValidator
}
