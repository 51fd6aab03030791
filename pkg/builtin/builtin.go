// Package builtin registers the default component definitions the renderer
// backend ships with. The catalog mirrors the standard widget set: input and
// display components carry property-mapping tables, container panels copy
// their property bags verbatim.
package builtin

import "github.com/goliatone/go-formtree/pkg/registry"

// Ref binds a builtin component type to the backend widget implementing it.
type Ref struct {
	Widget string

	// Container marks widgets that accept child nodes.
	Container bool
}

// Registry returns an immutable registry pre-populated with the builtin
// catalog. Most callers start here and add package components before Build.
func Registry() *registry.Registry {
	return Register(registry.NewBuilder()).Build()
}

// Register adds the builtin catalog to an existing builder so callers can
// layer their own registrations on top before consuming it.
func Register(b *registry.Builder) *registry.Builder {
	b.Register(NameButton, registry.Definition{
		Ref:               Ref{Widget: "button"},
		DefaultProperties: map[string]any{"label": "", "enabled": true},
		PropertyMapping: map[string]string{
			"text":    "label",
			"enabled": "enabled",
			"visible": "visible",
			"role":    "role",
			"icon":    "icon",
			"bold":    "bold",
			"click":   "onClick",
		},
		LayoutSupported: true,
		Validate:        stringProps("Button", "text", "role", "icon"),
	})

	b.Register(NameLabel, registry.Definition{
		Ref:               Ref{Widget: "label"},
		DefaultProperties: map[string]any{"label": ""},
		PropertyMapping: map[string]string{
			"text":    "label",
			"visible": "visible",
			"role":    "role",
			"bold":    "bold",
			"italic":  "italic",
		},
		LayoutSupported: true,
		Validate:        stringProps("Label", "text", "role"),
	})

	b.Register(NameTextBox, registry.Definition{
		Ref:               Ref{Widget: "input"},
		DefaultProperties: map[string]any{"value": "", "enabled": true},
		PropertyMapping: map[string]string{
			"text":            "value",
			"placeholder":     "placeholder",
			"enabled":         "enabled",
			"visible":         "visible",
			"hide_text":       "masked",
			"change":          "onChange",
			"focus":           "onFocus",
			"blur":            "onBlur",
			"pressed_enter":   "onEnter",
			"type":            "inputType",
			"character_limit": "maxLength",
		},
		LayoutSupported: true,
		Validate:        stringProps("TextBox", "text", "placeholder", "type"),
	})

	b.Register(NameTextArea, registry.Definition{
		Ref:               Ref{Widget: "textarea"},
		DefaultProperties: map[string]any{"value": ""},
		PropertyMapping: map[string]string{
			"text":        "value",
			"placeholder": "placeholder",
			"enabled":     "enabled",
			"visible":     "visible",
			"change":      "onChange",
			"focus":       "onFocus",
			"blur":        "onBlur",
		},
		LayoutSupported: true,
		Validate:        stringProps("TextArea", "text", "placeholder"),
	})

	b.Register(NameCheckBox, registry.Definition{
		Ref:               Ref{Widget: "checkbox"},
		DefaultProperties: map[string]any{"checked": false},
		PropertyMapping: map[string]string{
			"checked": "checked",
			"text":    "label",
			"enabled": "enabled",
			"visible": "visible",
			"change":  "onChange",
		},
		LayoutSupported: true,
		Validate:        boolProps("CheckBox", "checked"),
	})

	b.Register(NameRadioButton, registry.Definition{
		Ref:               Ref{Widget: "radio"},
		DefaultProperties: map[string]any{"selected": false},
		PropertyMapping: map[string]string{
			"selected":    "selected",
			"text":        "label",
			"group_name":  "group",
			"enabled":     "enabled",
			"visible":     "visible",
			"change":      "onChange",
		},
		LayoutSupported: true,
		Validate:        boolProps("RadioButton", "selected"),
	})

	b.Register(NameDropDown, registry.Definition{
		Ref:               Ref{Widget: "select"},
		DefaultProperties: map[string]any{"items": []any{}},
		PropertyMapping: map[string]string{
			"items":              "items",
			"selected_value":     "value",
			"placeholder":        "placeholder",
			"include_placeholder": "includePlaceholder",
			"enabled":            "enabled",
			"visible":            "visible",
			"change":             "onChange",
		},
		LayoutSupported: true,
		Validate:        validateDropDown,
	})

	b.Register(NameDatePicker, registry.Definition{
		Ref:               Ref{Widget: "datepicker"},
		DefaultProperties: map[string]any{"format": "YYYY-MM-DD"},
		PropertyMapping: map[string]string{
			"date":     "value",
			"format":   "format",
			"min_date": "min",
			"max_date": "max",
			"enabled":  "enabled",
			"visible":  "visible",
			"change":   "onChange",
		},
		LayoutSupported: true,
		Validate:        stringProps("DatePicker", "format"),
	})

	b.Register(NameImage, registry.Definition{
		Ref:               Ref{Widget: "image"},
		DefaultProperties: map[string]any{"display_mode": "shrink_to_fit"},
		PropertyMapping: map[string]string{
			"source":       "src",
			"display_mode": "displayMode",
			"visible":      "visible",
			"click":        "onClick",
		},
		LayoutSupported: true,
		Validate:        stringProps("Image", "source"),
	})

	b.Register(NameLink, registry.Definition{
		Ref:               Ref{Widget: "link"},
		DefaultProperties: map[string]any{"label": ""},
		PropertyMapping: map[string]string{
			"text":    "label",
			"url":     "href",
			"visible": "visible",
			"click":   "onClick",
		},
		LayoutSupported: true,
		Validate:        stringProps("Link", "text", "url"),
	})

	b.Register(NameSpacer, registry.Definition{
		Ref:             Ref{Widget: "spacer"},
		PropertyMapping: map[string]string{"visible": "visible"},
		LayoutSupported: true,
	})

	b.Register(NameTimer, registry.Definition{
		Ref:               Ref{Widget: "timer"},
		DefaultProperties: map[string]any{"interval": 0.0},
		PropertyMapping: map[string]string{
			"interval": "interval",
			"enabled":  "enabled",
		},
		Validate: numberProps("Timer", "interval"),
	})

	b.Register(NameRichText, registry.Definition{
		Ref:               Ref{Widget: "richtext"},
		DefaultProperties: map[string]any{"format": "markdown"},
		PropertyMapping: map[string]string{
			"content": "content",
			"format":  "format",
			"visible": "visible",
		},
		LayoutSupported: true,
		Validate:        stringProps("RichText", "content", "format"),
	})

	b.Register(NameCanvas, registry.Definition{
		Ref:             Ref{Widget: "canvas"},
		PropertyMapping: map[string]string{"visible": "visible", "click": "onClick"},
		LayoutSupported: true,
	})

	b.Register(NameFileLoader, registry.Definition{
		Ref:               Ref{Widget: "fileloader"},
		DefaultProperties: map[string]any{"multiple": false},
		PropertyMapping: map[string]string{
			"file_types": "accept",
			"multiple":   "multiple",
			"enabled":    "enabled",
			"visible":    "visible",
			"change":     "onChange",
		},
		LayoutSupported: true,
		Validate:        boolProps("FileLoader", "multiple"),
	})

	b.Register(NamePlot, registry.Definition{
		Ref:             Ref{Widget: "plot"},
		PropertyMapping: map[string]string{
			"figure":  "figure",
			"data":    "data",
			"layout":  "plotLayout",
			"visible": "visible",
			"click":   "onClick",
		},
		LayoutSupported: true,
	})

	// Container panels have no mapping table: their property bags are copied
	// through verbatim for the backend to interpret.
	for _, name := range []string{NameColumnPanel, NameLinearPanel, NameFlowPanel, NameXYPanel} {
		b.Register(name, registry.Definition{
			Ref:             Ref{Widget: panelWidget(name), Container: true},
			LayoutSupported: true,
		})
	}

	b.Register(NameGridPanel, registry.Definition{
		Ref:             Ref{Widget: "grid-panel", Container: true},
		LayoutSupported: true,
		Validate:        numberProps("GridPanel", "rows", "columns"),
	})

	b.Register(NameDataGrid, registry.Definition{
		Ref:               Ref{Widget: "data-grid", Container: true},
		DefaultProperties: map[string]any{"rows_per_page": 20.0},
		PropertyMapping: map[string]string{
			"columns":           "columns",
			"rows_per_page":     "rowsPerPage",
			"show_page_controls": "showPageControls",
			"visible":           "visible",
		},
		LayoutSupported: true,
		Validate:        numberProps("DataGrid", "rows_per_page"),
	})

	b.Register(NameDataRowPanel, registry.Definition{
		Ref:             Ref{Widget: "data-row-panel", Container: true},
		LayoutSupported: true,
	})

	b.Register(NameRepeatingPanel, registry.Definition{
		Ref:             Ref{Widget: "repeating-panel", Container: true},
		PropertyMapping: map[string]string{
			"item_template": "itemTemplate",
			"items":         "items",
			"visible":       "visible",
		},
		LayoutSupported: true,
		Validate:        stringProps("RepeatingPanel", "item_template"),
	})

	return b
}

func panelWidget(name string) string {
	switch name {
	case NameColumnPanel:
		return "column-panel"
	case NameLinearPanel:
		return "linear-panel"
	case NameFlowPanel:
		return "flow-panel"
	case NameXYPanel:
		return "xy-panel"
	default:
		return "panel"
	}
}
