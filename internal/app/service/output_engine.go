package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

// OutputEngine is spec.md §4.7's `output_for`: a renderer bound to one
// RuleTable that dispatches a *value.Node or []*value.Node down through
// each rule's per-format render function, using the table's Array rule
// to join siblings. A table with no Array rule fails fast at
// construction rather than at first render (spec.md §7: "Output-engine
// misconfiguration"); a rule without a renderer for a format is not
// rejected and renders as "" / nil in that format.
type OutputEngine struct {
	table *RuleTable
}

// NewOutputEngine validates that table has an Array rule and returns an
// engine bound to it. It does not validate that every rule implements
// both render formats — a rule missing a renderer simply emits "" / nil
// for that format, same as the source implementation.
func NewOutputEngine(table *RuleTable) (*OutputEngine, error) {
	if _, ok := table.Array(); !ok {
		return nil, fmt.Errorf("rulemd: output engine requires a registered \"Array\" rule")
	}
	return &OutputEngine{table: table}, nil
}

// RenderHTML renders a node or []*value.Node to an HTML string, per
// spec.md §4.7. Concatenation across siblings needs no coalescing step:
// adjacent text nodes just concatenate as adjacent substrings.
func (e *OutputEngine) RenderHTML(input any, state *entity.RenderState) string {
	switch v := input.(type) {
	case []*value.Node:
		var b strings.Builder
		for _, n := range v {
			b.WriteString(e.RenderHTML(n, state))
		}
		return b.String()
	case *value.Node:
		if v == nil {
			return ""
		}
		rule, ok := e.table.Get(string(v.Type))
		if !ok {
			return ""
		}
		return rule.RenderHTML(v, e.RenderHTML, state)
	default:
		return ""
	}
}

// RenderElements renders a node or []*value.Node to an element-tree
// value (value.Element, a plain string, or []any), per spec.md §4.7.
// Sibling lists are coalesced (consecutive text nodes merged into one
// synthetic node) and stamped with a stable, 0-based string key before
// each child is rendered — mirroring the source implementation's
// "Array" rule, which is the only rule that needs to see more than one
// node at a time.
func (e *OutputEngine) RenderElements(input any, state *entity.RenderState) any {
	switch v := input.(type) {
	case []*value.Node:
		return e.renderArray(v, state)
	case *value.Node:
		if v == nil {
			return nil
		}
		rule, ok := e.table.Get(string(v.Type))
		if !ok {
			return nil
		}
		return rule.RenderElement(v, e.RenderElements, state)
	default:
		return nil
	}
}

// renderArray implements the Array rule's element-format behavior
// directly: coalesce runs of adjacent text nodes, then render each
// resulting child with a key derived from its position, per spec.md
// §4.7.
func (e *OutputEngine) renderArray(nodes []*value.Node, state *entity.RenderState) []any {
	coalesced := coalesceText(nodes)
	out := make([]any, 0, len(coalesced))
	for i, n := range coalesced {
		childState := &entity.RenderState{
			Key:   strconv.Itoa(i),
			Extra: state.Extra,
		}
		out = append(out, e.RenderElements(n, childState))
	}
	return out
}

// coalesceText merges consecutive text nodes into one synthetic node
// (never mutating an input node in place, since the same *value.Node may
// still be rendered elsewhere, e.g. to both HTML and elements), so the
// element renderer never emits two adjacent text children (spec.md
// §4.7's "text coalescing").
func coalesceText(nodes []*value.Node) []*value.Node {
	out := make([]*value.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil && n.Type == value.NodeText && len(out) > 0 && out[len(out)-1].Type == value.NodeText {
			merged := *out[len(out)-1]
			merged.Content += n.Content
			out[len(out)-1] = &merged
			continue
		}
		out = append(out, n)
	}
	return out
}

// SortedRuleNames returns every registered rule name in dispatch order,
// falling back to lexical order for rules excluded from dispatch (no
// Match, or non-numeric order) — used by the `rules` CLI command to
// list the table for inspection (spec.md §6).
func (t *RuleTable) SortedRuleNames() []string {
	dispatch, _ := t.Build()
	seen := make(map[string]bool, len(dispatch))
	names := make([]string, 0, len(t.names))
	for _, rule := range dispatch {
		names = append(names, rule.Name())
		seen[rule.Name()] = true
	}
	var rest []string
	for _, name := range t.names {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
