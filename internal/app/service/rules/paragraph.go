package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var paragraphRe = regexp.MustCompile(`^((?:[^\n]|\n(?! *\n))+)(?:\n *)+\n`)

// NewParagraphRule builds the fallback block rule: any run of lines not
// separated by a blank line, inline-parsed (spec.md §4.4).
func NewParagraphRule(order int) *entity.Rule {
	match := blockRegex(paragraphRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "paragraph",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Children: parseInlineContent(parse, c.Group(1), state),
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("div", render(n.Children, state), helpers.Attrs{
				{Name: "class", Value: "paragraph"},
			}, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("div", state.Key, map[string]any{
				"className": "paragraph",
				"children":  render(n.Children, state),
			})
		},
	})
}
