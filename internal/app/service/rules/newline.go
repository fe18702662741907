package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var newlineRe = regexp.MustCompile(`^(?:\n *)*\n`)

// NewNewlineRule builds the blank-line rule: one or more blank lines
// collapse to a single no-op node that renders as a single newline
// (spec.md §4.4).
func NewNewlineRule(order int) *entity.Rule {
	match := blockRegex(newlineRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "newline",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return "\n"
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return "\n"
		},
	})
}
