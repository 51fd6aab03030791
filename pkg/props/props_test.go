package props_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtree/pkg/props"
	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/value"
)

func TestMap_MappingTable(t *testing.T) {
	m := props.NewMapper()
	def := registry.Definition{
		DefaultProperties: map[string]any{"label": "", "enabled": true},
		PropertyMapping: map[string]string{
			"text":    "label",
			"enabled": "enabled",
			"role":    "role",
		},
	}
	domain := map[string]value.Value{
		"text":     value.String("Save"),
		"enabled":  value.Bool(false),
		"unmapped": value.String("dropped"),
	}

	got := m.Map(domain, def, props.Binding{})

	want := map[string]any{"label": "Save", "enabled": false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapped bag mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_DefaultsSurviveWhenDomainOmits(t *testing.T) {
	m := props.NewMapper()
	def := registry.Definition{
		DefaultProperties: map[string]any{"label": "fallback"},
		PropertyMapping:   map[string]string{"text": "label"},
	}

	got := m.Map(nil, def, props.Binding{})
	if got["label"] != "fallback" {
		t.Fatalf("default should survive: %#v", got)
	}
}

func TestMap_CompositeDefaultsNotShared(t *testing.T) {
	m := props.NewMapper()
	def := registry.Definition{
		DefaultProperties: map[string]any{
			"items": []any{"a"},
			"style": map[string]any{"weight": "bold"},
		},
		PropertyMapping: map[string]string{},
	}

	first := m.Map(nil, def, props.Binding{})
	second := m.Map(nil, def, props.Binding{})

	first["items"].([]any)[0] = "mutated"
	first["style"].(map[string]any)["weight"] = "mutated"

	if second["items"].([]any)[0] != "a" {
		t.Fatalf("default slices must not be shared across bags: %#v", second["items"])
	}
	if second["style"].(map[string]any)["weight"] != "bold" {
		t.Fatalf("default maps must not be shared across bags: %#v", second["style"])
	}
	if def.DefaultProperties["items"].([]any)[0] != "a" {
		t.Fatalf("registry defaults must stay pristine: %#v", def.DefaultProperties)
	}
}

func TestMap_NilTableCopiesVerbatim(t *testing.T) {
	m := props.NewMapper()
	def := registry.Definition{DefaultProperties: map[string]any{"spacing": "normal"}}
	domain := map[string]value.Value{
		"col_widths": value.Map("a", value.Number(1)),
		"spacing":    value.String("tight"),
	}

	got := m.Map(domain, def, props.Binding{})
	if got["spacing"] != "tight" {
		t.Fatalf("domain values should override defaults: %#v", got)
	}
	widths, ok := got["col_widths"].(map[string]any)
	if !ok || widths["a"] != float64(1) {
		t.Fatalf("unmapped bags copy verbatim: %#v", got["col_widths"])
	}
}

func TestMap_EventKeysBecomeCallbacks(t *testing.T) {
	type dispatched struct {
		event, compType, compName, form string
	}
	var got []dispatched
	m := props.NewMapper(props.WithDispatcher(props.DispatcherFunc(
		func(eventType, componentType, componentName, formName string) {
			got = append(got, dispatched{eventType, componentType, componentName, formName})
		},
	)))

	def := registry.Definition{PropertyMapping: map[string]string{"click": "onClick"}}
	domain := map[string]value.Value{"click": value.String("self.button_click")}
	binding := props.Binding{ComponentType: "Button", ComponentName: "save_button", FormName: "Main"}

	bag := m.Map(domain, def, binding)
	cb, ok := bag["onClick"].(props.EventCallback)
	if !ok {
		t.Fatalf("event key should bind a callback, got %T", bag["onClick"])
	}

	cb()
	cb()
	if len(got) != 2 {
		t.Fatalf("each invocation dispatches once, got %d", len(got))
	}
	want := dispatched{"click", "Button", "save_button", "Main"}
	if got[0] != want {
		t.Fatalf("dispatch payload mismatch: %+v", got[0])
	}
}

func TestMap_CallbackWithoutDispatcherIsInert(t *testing.T) {
	m := props.NewMapper()
	def := registry.Definition{PropertyMapping: map[string]string{"change": "onChange"}}
	bag := m.Map(map[string]value.Value{"change": value.String("self.changed")}, def, props.Binding{})

	cb := bag["onChange"].(props.EventCallback)
	cb()
}

func TestMap_ResolverLooksUpDispatcherLazily(t *testing.T) {
	var current props.Dispatcher
	m := props.NewMapper(props.WithDispatcherResolver(func() props.Dispatcher { return current }))

	def := registry.Definition{PropertyMapping: map[string]string{"click": "onClick"}}
	bag := m.Map(map[string]value.Value{"click": value.String("self.h")}, def, props.Binding{ComponentName: "b"})
	cb := bag["onClick"].(props.EventCallback)

	cb()

	var fired int
	current = props.DispatcherFunc(func(_, _, _, _ string) { fired++ })
	cb()
	if fired != 1 {
		t.Fatalf("dispatcher installed after mapping should still receive events, fired=%d", fired)
	}
}

func TestIsEventKey(t *testing.T) {
	for _, key := range []string{"click", "change", "submit", "focus", "blur", "hover", "select"} {
		if !props.IsEventKey(key) {
			t.Fatalf("%q should be an event key", key)
		}
	}
	if props.IsEventKey("text") {
		t.Fatalf("text is plain data")
	}
}

func TestMapLayout(t *testing.T) {
	m := props.NewMapper()

	got := m.MapLayout(map[string]value.Value{
		"width":     value.Number(120),
		"height":    value.String("100%"),
		"margin":    value.List(value.Number(4), value.Number(8)),
		"padding":   value.Number(16),
		"align":     value.String("center"),
		"row":       value.Number(2),
		"col_span":  value.String("full"),
		"flex_grow": value.Number(1.5),
		"bogus":     value.String("ignored"),
	})

	want := map[string]string{
		props.DirectiveWidth:           "120px",
		props.DirectiveHeight:          "100%",
		props.DirectiveMargin:          "4px 8px",
		props.DirectivePadding:         "16px",
		props.DirectiveHorizontalAlign: "center",
		props.DirectiveGridRow:         "2",
		props.DirectiveColumnSpan:      "full",
		props.DirectiveFlexGrow:        "1.5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestMapLayout_Empty(t *testing.T) {
	m := props.NewMapper()
	if got := m.MapLayout(nil); got != nil {
		t.Fatalf("empty input yields nil, got %#v", got)
	}
	if got := m.MapLayout(map[string]value.Value{"bogus": value.Map()}); got != nil {
		t.Fatalf("unconvertible input yields nil, got %#v", got)
	}
}
