// Package preview renders a built node tree into a standalone HTML snapshot
// for inspection. Error placeholder nodes are rendered as clearly marked
// blocks showing the offending type, name, and diagnostic text; regular nodes
// become neutral containers so the tree shape stays visible.
package preview

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formtree/pkg/tree"
)

const nodeTemplate = `<div class="ft-node" data-key="{{ key }}" data-type="{{ type }}"{% if name %} data-name="{{ name }}"{% endif %}{% if layout %} data-layout="{{ layout }}"{% endif %}>{% if label %}<span class="ft-label">{{ label }}</span>{% endif %}{{ children|safe }}</div>`

const errorTemplate = `<div class="ft-error" data-key="{{ key }}"{% if type %} data-type="{{ type }}"{% endif %}>` +
	`<strong>Component error</strong>{% if type %}: {{ type }}{% endif %}{% if name %} ({{ name }}){% endif %}` +
	`<ul>{% for message in messages %}<li>{{ message }}</li>{% endfor %}</ul></div>`

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Renderer turns node trees into HTML snapshots. Construct once, reuse.
type Renderer struct {
	node *pongo2.Template
	err  *pongo2.Template
}

// New compiles the preview templates.
func New() (*Renderer, error) {
	set := pongo2.NewSet("formtree-preview", pongo2.MustNewLocalFileSystemLoader(""))

	nodeTpl, err := set.FromString(nodeTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: compile node template: %w", err)
	}
	errTpl, err := set.FromString(errorTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: compile error template: %w", err)
	}

	return &Renderer{node: nodeTpl, err: errTpl}, nil
}

// Render produces the HTML snapshot for a node and its descendants.
func (r *Renderer) Render(node *tree.Node) (string, error) {
	if r == nil {
		return "", fmt.Errorf("preview: renderer is nil")
	}
	if node == nil {
		return "", nil
	}

	if node.IsError() {
		out, err := r.err.Execute(pongo2.Context{
			"key":      node.Key,
			"type":     node.Err.ComponentType,
			"name":     node.Err.ComponentName,
			"messages": node.Err.Messages,
		})
		if err != nil {
			return "", fmt.Errorf("preview: render error node %q: %w", node.Key, err)
		}
		return out, nil
	}

	var children strings.Builder
	for _, child := range node.Children {
		rendered, err := r.Render(child)
		if err != nil {
			return "", err
		}
		children.WriteString(rendered)
	}

	out, err := r.node.Execute(pongo2.Context{
		"key":      node.Key,
		"type":     node.Type,
		"name":     node.Name,
		"label":    nodeLabel(node),
		"layout":   layoutSummary(node.Layout),
		"children": children.String(),
	})
	if err != nil {
		return "", fmt.Errorf("preview: render node %q: %w", node.Key, err)
	}
	return out, nil
}

// nodeLabel pulls the first displayable text property, sanitized so property
// payloads cannot inject markup into the snapshot.
func nodeLabel(node *tree.Node) string {
	for _, key := range []string{"label", "value", "content"} {
		raw, ok := node.Props[key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok || s == "" {
			continue
		}
		return sanitizeText(s)
	}
	return ""
}

func layoutSummary(layout map[string]string) string {
	if len(layout) == 0 {
		return ""
	}
	keys := make([]string, 0, len(layout))
	for key := range layout {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+":"+layout[key])
	}
	return strings.Join(parts, ";")
}

func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}
