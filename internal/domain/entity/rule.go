// Package entity defines the Rule: the unit of extension the parser and
// output engines dispatch to. A Rule owns its own matching regex, its
// capture-to-node transformation, and its per-output-format renderer.
package entity

import (
	"fmt"

	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/functional"
)

// ParseFunc is the reentrant sub-parse a rule's Parse calls to turn a
// captured sub-string into child nodes (inline or block, depending on
// state.Inline at the time of the call).
type ParseFunc func(source string, state *value.State) []*value.Node

// HTMLRenderFunc is the nested dispatcher an HTML render function calls
// to render a child node or node list (node is a *value.Node or a
// []*value.Node) back down to an HTML string fragment.
type HTMLRenderFunc func(node any, state *RenderState) string

// ElementRenderFunc is the nested dispatcher an element render function
// calls to render a child node or node list to an element-tree value: a
// value.Element, a coalesced string, or []any for a sibling list.
type ElementRenderFunc func(node any, state *RenderState) any

// RenderState carries the per-call key path used to stamp a stable,
// stringable key onto each rendered sibling (spec.md §4.7); it is
// distinct from the parser's value.State because rendering never
// mutates Defs/Refs/Inline.
type RenderState struct {
	Key   string
	Extra map[string]any
}

// MatchFunc reports whether a rule matches at the start of source given
// the current parse state and the full text of the previous capture (used
// by lookbehind-style rules such as List). A nil capture means no match.
type MatchFunc func(source string, state *value.State, previousCaptureText string) *value.Capture

// QualityFunc is the optional secondary discriminator used to break ties
// between rules sharing the same Order (spec.md §4.3 step 2-3).
type QualityFunc func(capture *value.Capture, state *value.State, previousCaptureText string) float64

// ParseResult is what Rule.Parse returns: either a single node (Nodes is
// nil) or a list of nodes spliced directly into the sibling sequence
// (Nodes is non-nil). Single rule authors almost always return One(...);
// Many(...) exists for the rare rule that expands into several siblings.
type ParseResult struct {
	Nodes []*value.Node
	node  *value.Node
}

// One wraps a single produced node.
func One(n *value.Node) ParseResult { return ParseResult{node: n} }

// Many wraps a list of produced nodes spliced in as-is.
func Many(ns []*value.Node) ParseResult { return ParseResult{Nodes: ns} }

// IsList reports whether this result is a spliced node list.
func (r ParseResult) IsList() bool { return r.Nodes != nil }

// Node returns the single produced node; only meaningful when !IsList().
func (r ParseResult) Node() *value.Node { return r.node }

type ParseFn func(capture *value.Capture, parse ParseFunc, state *value.State) ParseResult

type RenderHTMLFn func(node *value.Node, render HTMLRenderFunc, state *RenderState) string

type RenderElementFn func(node *value.Node, render ElementRenderFunc, state *RenderState) any

// Rule is an immutable record implementing the small capability set
// spec.md §4.2 describes: {order, quality?, match, parse, render_html,
// render_elements}. The special "Array" rule (no Match/Parse) is the
// sibling-list joiner the output engine uses to render []*value.Node.
type Rule struct {
	name    string
	order   any // int for every built-in rule; deliberately untyped so a
	// registry built from external rule definitions (e.g. a config file)
	// can surface spec.md §7's "non-numeric order" warning instead of a
	// compile error.
	quality       QualityFunc
	match         MatchFunc
	parse         ParseFn
	renderHTML    RenderHTMLFn
	renderElement RenderElementFn
}

// Name returns the rule's registry key / node-type tag.
func (r *Rule) Name() string { return r.name }

// Order returns the raw order value and whether it is numeric.
func (r *Rule) Order() (int, bool) {
	switch v := r.order.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// HasQuality reports whether this rule supplies a secondary discriminator.
func (r *Rule) HasQuality() bool { return r.quality != nil }

// Quality scores a capture; callers must check HasQuality first.
func (r *Rule) Quality(capture *value.Capture, state *value.State, prevText string) float64 {
	if r.quality == nil {
		return 0
	}
	return r.quality(capture, state, prevText)
}

// HasMatch reports whether this rule participates in parse dispatch (the
// Array joiner does not).
func (r *Rule) HasMatch() bool { return r.match != nil }

// Match attempts to match source at the current position.
func (r *Rule) Match(source string, state *value.State, prevText string) *value.Capture {
	if r.match == nil {
		return nil
	}
	return r.match(source, state, prevText)
}

// Parse builds this rule's node(s) from a capture.
func (r *Rule) Parse(capture *value.Capture, parse ParseFunc, state *value.State) ParseResult {
	return r.parse(capture, parse, state)
}

// RenderHTML renders node to an HTML string fragment.
func (r *Rule) RenderHTML(node *value.Node, render HTMLRenderFunc, state *RenderState) string {
	if r.renderHTML == nil {
		return ""
	}
	return r.renderHTML(node, render, state)
}

// RenderElement renders node to an element-tree value.
func (r *Rule) RenderElement(node *value.Node, render ElementRenderFunc, state *RenderState) any {
	if r.renderElement == nil {
		return nil
	}
	return r.renderElement(node, render, state)
}

// Definition is the builder input for NewRule. Order is `any` on purpose
// — see Rule.order.
type Definition struct {
	Name          string
	Order         any
	Quality       QualityFunc
	Match         MatchFunc
	Parse         ParseFn
	RenderHTML    RenderHTMLFn
	RenderElement RenderElementFn
}

// NewRule validates and constructs a Rule from a Definition. A rule with
// no Match is only valid under the reserved name "Array".
func NewRule(def Definition) functional.Result[*Rule] {
	if def.Name == "" {
		return functional.Err[*Rule](fmt.Errorf("rule must have a name"))
	}
	if def.Match == nil && def.Name != "Array" {
		return functional.Err[*Rule](fmt.Errorf("rule %q: match is required for any rule other than the Array joiner", def.Name))
	}
	if def.Match != nil && def.Parse == nil {
		return functional.Err[*Rule](fmt.Errorf("rule %q: parse is required whenever match is provided", def.Name))
	}
	return functional.Ok(&Rule{
		name:          def.Name,
		order:         def.Order,
		quality:       def.Quality,
		match:         def.Match,
		parse:         def.Parse,
		renderHTML:    def.RenderHTML,
		renderElement: def.RenderElement,
	})
}

// MustNewRule panics on an invalid Definition; used only for the
// compiled-in default rule table where a validation failure is a
// programmer error caught immediately at package init, never at runtime.
func MustNewRule(def Definition) *Rule {
	result := NewRule(def)
	if result.IsErr() {
		panic(result.Error())
	}
	return result.Unwrap()
}
