package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var brRe = regexp.MustCompile(`^ {2,}\n`)

// NewBrRule builds the hard line-break rule: two or more trailing
// spaces then a newline, matchable in either parse mode (spec.md §4.4).
func NewBrRule(order int) *entity.Rule {
	match := anyScopeRegex(brRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "br",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return "<br>"
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("br", state.Key, nil)
		},
	})
}
