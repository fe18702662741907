package rules

import (
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var (
	emRe     = regexp2MustCompile(`^\b_((?:__|\\[\s\S]|[^\\_])+?)_\b|^\*(?=\S)((?:\*\*|\\[\s\S]|\s+(?:\\[\s\S]|[^\s\*\\]|\*\*)|[^\s\*\\])+?)\*(?!\*)`)
	strongRe = regexp2MustCompile(`^\*\*((?:\\[\s\S]|[^\\])+?)\*\*(?!\*)`)
	uRe      = regexp2MustCompile(`^__((?:\\[\s\S]|[^\\])+?)__(?!_)`)
	delRe    = regexp2MustCompile(`^~~(?=\S)((?:\\[\s\S]|~(?!~)|[^\s~]|\s(?!~~))+?)~~`)
)

// NewEmRule builds the emphasis rule. It matches either `_x_` or
// `*x*`; its quality (capture length + 0.2) lets a longer em capture
// outrank a shorter strong capture sharing the same order (spec.md
// §4.4, §9's open question about this formula's interaction with
// strong's +0.1).
func NewEmRule(order int) *entity.Rule {
	match := inlineRegex2(emRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "em",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Quality: func(c *value.Capture, state *value.State, prev string) float64 {
			return float64(len(c.FullMatch())) + 0.2
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			content := c.Group(2)
			if content == "" {
				content = c.Group(1)
			}
			return entity.One(&value.Node{
				Children: parse(content, state),
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("em", render(n.Children, state), nil, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("em", state.Key, map[string]any{"children": render(n.Children, state)})
		},
	})
}

// NewStrongRule builds `**x**`; quality = capture length + 0.1, lower
// than em's so that on shared-length captures em wins, but strong's
// longer match on e.g. `**x**` still outranks em's shorter greedy match
// at the same position (spec.md §4.4).
func NewStrongRule(order int) *entity.Rule {
	match := inlineRegex2(strongRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "strong",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Quality: func(c *value.Capture, state *value.State, prev string) float64 {
			return float64(len(c.FullMatch())) + 0.1
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Children: parseInlineContent(parse, c.Group(1), state),
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("strong", render(n.Children, state), nil, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("strong", state.Key, map[string]any{"children": render(n.Children, state)})
		},
	})
}

// NewURule builds `__x__` (underline); quality = capture length, no
// +0.1/+0.2 bonus (spec.md §4.4).
func NewURule(order int) *entity.Rule {
	match := inlineRegex2(uRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "u",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Quality: func(c *value.Capture, state *value.State, prev string) float64 {
			return float64(len(c.FullMatch()))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Children: parseInlineContent(parse, c.Group(1), state),
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("u", render(n.Children, state), nil, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("u", state.Key, map[string]any{"children": render(n.Children, state)})
		},
	})
}

// NewDelRule builds `~~x~~` (strikethrough); unqualified — see spec.md
// §4.4 (it has no rule at the same order to disambiguate against).
func NewDelRule(order int) *entity.Rule {
	match := inlineRegex2(delRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "del",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Children: parseInlineContent(parse, c.Group(1), state),
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("del", render(n.Children, state), nil, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("del", state.Key, map[string]any{"children": render(n.Children, state)})
		},
	})
}
