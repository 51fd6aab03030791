// Package props converts domain property bags into backend-ready property
// bags using the owning type's mapping table. Event-binding keys become
// outbound callback subscriptions rather than plain values; layout properties
// are converted separately into backend layout directives.
package props

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formtree/pkg/registry"
	"github.com/goliatone/go-formtree/pkg/value"
)

// Dispatcher forwards a component event to the server-bound event bridge.
// It is an injected capability; implementations live outside this core.
type Dispatcher interface {
	Dispatch(eventType, componentType, componentName, formName string)
}

// DispatcherFunc adapts a plain function to the Dispatcher interface.
type DispatcherFunc func(eventType, componentType, componentName, formName string)

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(eventType, componentType, componentName, formName string) {
	f(eventType, componentType, componentName, formName)
}

// EventCallback is the backend property value bound for event-binding keys.
// Invoking it dispatches the event through the mapper's dispatcher.
type EventCallback func()

// Binding identifies the component a property bag belongs to, for event
// dispatch.
type Binding struct {
	ComponentType string
	ComponentName string
	FormName      string
}

// Recognized event-binding property keys. Values under these keys are bound
// as callbacks, never copied as data.
var eventKeys = map[string]struct{}{
	"click":  {},
	"change": {},
	"submit": {},
	"focus":  {},
	"blur":   {},
	"hover":  {},
	"select": {},
}

// IsEventKey reports whether the domain property key is an event binding.
func IsEventKey(key string) bool {
	_, ok := eventKeys[key]
	return ok
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithDispatcher wires a fixed event dispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(m *Mapper) {
		m.resolve = func() Dispatcher { return d }
	}
}

// WithDispatcherResolver wires a dispatcher that is looked up at event time.
// This keeps construction order flexible: the bridge may come up after the
// tree is built, and callbacks still find it.
func WithDispatcherResolver(fn func() Dispatcher) Option {
	return func(m *Mapper) {
		m.resolve = fn
	}
}

// Mapper converts property bags. The zero mapper is usable; events then
// dispatch nowhere.
type Mapper struct {
	resolve func() Dispatcher
}

// NewMapper constructs a Mapper with the supplied options.
func NewMapper(options ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Map builds the backend property bag for one component. With a mapping
// table, defaults are seeded first and only mapped keys present in the domain
// bag are carried over; event keys become callbacks. Without a table, the
// domain bag is copied verbatim over the defaults.
func (m *Mapper) Map(domain map[string]value.Value, def registry.Definition, binding Binding) map[string]any {
	out := make(map[string]any, len(def.DefaultProperties)+len(domain))
	for key, val := range def.DefaultProperties {
		out[key] = cloneDefault(val)
	}

	if def.PropertyMapping == nil {
		for key, val := range domain {
			out[key] = val.Interface()
		}
		return out
	}

	for domainKey, backendKey := range def.PropertyMapping {
		val, present := domain[domainKey]
		if !present {
			continue
		}
		if IsEventKey(domainKey) {
			out[backendKey] = m.callback(domainKey, binding)
			continue
		}
		out[backendKey] = val.Interface()
	}
	return out
}

// cloneDefault deep-copies composite default values so nodes never share the
// registry's slices or maps through their property bags.
func cloneDefault(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneDefault(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = cloneDefault(item)
		}
		return out
	default:
		return v
	}
}

func (m *Mapper) callback(eventType string, binding Binding) EventCallback {
	return func() {
		if m.resolve == nil {
			return
		}
		d := m.resolve()
		if d == nil {
			return
		}
		d.Dispatch(eventType, binding.ComponentType, binding.ComponentName, binding.FormName)
	}
}

// Backend layout directive keys produced by MapLayout.
const (
	DirectiveWidth           = "width"
	DirectiveHeight          = "height"
	DirectiveMargin          = "margin"
	DirectivePadding         = "padding"
	DirectiveHorizontalAlign = "horizontalAlign"
	DirectiveGridRow         = "gridRow"
	DirectiveGridColumn      = "gridColumn"
	DirectiveColumnSpan      = "columnSpan"
	DirectiveRowSpan         = "rowSpan"
	DirectiveFlexGrow        = "flexGrow"
	DirectiveFlexShrink      = "flexShrink"
)

// MapLayout converts layout properties into backend layout directives. Keys
// absent from the input are omitted from the output, never defaulted.
func (m *Mapper) MapLayout(layout map[string]value.Value) map[string]string {
	if len(layout) == 0 {
		return nil
	}
	out := make(map[string]string, len(layout))

	setSize := func(directive string, val value.Value) {
		if s, ok := sizeValue(val); ok {
			out[directive] = s
		}
	}
	if val, ok := layout["width"]; ok {
		setSize(DirectiveWidth, val)
	}
	if val, ok := layout["height"]; ok {
		setSize(DirectiveHeight, val)
	}
	if val, ok := layout["margin"]; ok {
		if s, ok := spacingValue(val); ok {
			out[DirectiveMargin] = s
		}
	}
	if val, ok := layout["padding"]; ok {
		if s, ok := spacingValue(val); ok {
			out[DirectivePadding] = s
		}
	}
	if val, ok := layout["align"]; ok {
		if s, ok := val.AsString(); ok {
			out[DirectiveHorizontalAlign] = s
		}
	}

	numeric := map[string]string{
		"row":         DirectiveGridRow,
		"col":         DirectiveGridColumn,
		"col_span":    DirectiveColumnSpan,
		"row_span":    DirectiveRowSpan,
		"flex_grow":   DirectiveFlexGrow,
		"flex_shrink": DirectiveFlexShrink,
	}
	for key, directive := range numeric {
		val, ok := layout[key]
		if !ok {
			continue
		}
		if n, ok := val.AsNumber(); ok {
			out[directive] = formatNumber(n)
		} else if s, ok := val.AsString(); ok {
			out[directive] = s
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// sizeValue coerces width/height inputs: numbers become <n>px, strings pass
// through, anything else is omitted.
func sizeValue(val value.Value) (string, bool) {
	if n, ok := val.AsNumber(); ok {
		return formatNumber(n) + "px", true
	}
	if s, ok := val.AsString(); ok {
		return s, true
	}
	return "", false
}

// spacingValue coerces margin/padding inputs: numbers become <n>px, lists
// become space-joined normalized sizes, strings pass through.
func spacingValue(val value.Value) (string, bool) {
	if items, ok := val.AsList(); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := sizeValue(item); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	}
	return sizeValue(val)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
