package schema

import (
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtree/pkg/diag"
	"github.com/goliatone/go-formtree/pkg/value"
)

// ParseFormTemplate parses a form_template.yaml document and, when a
// validator is configured, validates the resulting tree. It fails if and only
// if the YAML is malformed or the validator reports at least one
// error-severity diagnostic. Warnings never fail the parse; they are returned
// alongside the template.
func ParseFormTemplate(text []byte, opts ParseFormOptions) (FormTemplate, diag.List, error) {
	file := opts.FileName
	if file == "" {
		file = FormTemplateFileName
	}

	tpl := FormTemplate{
		EventBindings:  map[string]string{},
		LayoutMetadata: map[string]value.Value{},
	}
	var diags diag.List

	root, err := parseMappingRoot(text, file)
	if err != nil {
		return FormTemplate{}, nil, err
	}

	eachMappingEntry(root, func(key string, val *yaml.Node) {
		switch key {
		case "container":
			tpl.Container = parseComponent(val)
		case "components":
			eachSequenceItem(val, func(item *yaml.Node) {
				tpl.Components = append(tpl.Components, parseComponent(item))
			})
		case "event_bindings":
			eachMappingEntry(val, func(event string, handler *yaml.Node) {
				s, ok := decodeString(handler)
				if !ok {
					d := diag.Warnf(file, "event binding %q must be a string handler reference; entry dropped", event)
					d.Line = handler.Line
					d.Column = handler.Column
					diags = append(diags, d)
					return
				}
				tpl.EventBindings[event] = s
			})
		case "data_bindings":
			eachSequenceItem(val, func(item *yaml.Node) {
				binding, ok := parseDataBinding(item)
				if !ok {
					// Entries missing component/property/code are dropped
					// without a diagnostic.
					return
				}
				tpl.DataBindings = append(tpl.DataBindings, binding)
			})
		case "is_package":
			if b, ok := decodeBool(val); ok {
				tpl.IsPackage = b
			}
		case "custom_component_events":
			if v, err := value.FromYAML(val); err == nil {
				tpl.CustomComponentEvents = v
			}
		case "layout_metadata":
			tpl.LayoutMetadata = decodeValueMap(val)
		}
	})

	// Container children mirror the legacy flat components list when the
	// container itself declares none.
	if len(tpl.Container.Children) == 0 && len(tpl.Components) > 0 {
		tpl.Container.Children = append([]Component(nil), tpl.Components...)
	}

	if opts.Validator != nil {
		for _, d := range opts.Validator.ValidateTemplate(&tpl, opts.ValidateOptions) {
			if d.File == "" {
				d.File = file
			}
			diags = append(diags, d)
		}
	}

	warnings := diags.Warnings()
	if diags.HasErrors() {
		return tpl, warnings, &SchemaError{File: file, Diagnostics: diags.Errors()}
	}
	return tpl, warnings, nil
}

func parseComponent(node *yaml.Node) Component {
	c := Component{
		RawName:          value.Null(),
		Properties:       map[string]value.Value{},
		LayoutProperties: map[string]value.Value{},
	}
	eachMappingEntry(node, func(key string, val *yaml.Node) {
		switch key {
		case "type":
			if s, ok := decodeString(val); ok {
				c.Type = s
			}
		case "name":
			if v, err := value.FromYAML(val); err == nil {
				c.RawName = v
				if s, ok := v.AsString(); ok {
					c.Name = s
				}
			}
		case "properties":
			c.Properties = decodeValueMap(val)
		case "layout_properties":
			c.LayoutProperties = decodeValueMap(val)
		case "components":
			eachSequenceItem(val, func(item *yaml.Node) {
				c.Children = append(c.Children, parseComponent(item))
			})
		}
	})
	return c
}

func parseDataBinding(node *yaml.Node) (DataBinding, bool) {
	binding := DataBinding{}
	eachMappingEntry(node, func(key string, val *yaml.Node) {
		s, ok := decodeString(val)
		if !ok {
			return
		}
		switch key {
		case "component":
			binding.Component = s
		case "property":
			binding.Property = s
		case "code":
			binding.Code = s
		}
	})
	if binding.Component == "" || binding.Property == "" || binding.Code == "" {
		return DataBinding{}, false
	}
	return binding, true
}
