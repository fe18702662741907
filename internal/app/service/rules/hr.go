package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var hrRe = regexp.MustCompile(`^( *[-*_]){3,} *(?:\n *)+\n`)

// NewHRRule builds the thematic-break rule: ≥3 of -, *, or _ (spaces
// allowed), no payload (spec.md §4.4).
func NewHRRule(order int) *entity.Rule {
	match := blockRegex(hrRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "hr",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return "<hr>"
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("hr", state.Key, nil)
		},
	})
}
