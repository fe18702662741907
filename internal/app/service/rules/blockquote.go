package rules

import (
	"regexp"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var (
	blockQuoteRe     = regexp.MustCompile(`^( *>[^\n]+(\n[^\n]+)*\n*)+\n{2,}`)
	blockQuotePrefix = regexp.MustCompile(`^ *> ?`)
)

// NewBlockQuoteRule builds the blockquote rule: one or more lines
// prefixed with `>`, stripped per line before recursively block-parsing
// the remainder (spec.md §4.4).
func NewBlockQuoteRule(order int) *entity.Rule {
	match := blockRegex(blockQuoteRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "blockQuote",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			lines := strings.Split(c.FullMatch(), "\n")
			for i, line := range lines {
				lines[i] = blockQuotePrefix.ReplaceAllString(line, "")
			}
			return entity.One(&value.Node{
				Children: parse(strings.Join(lines, "\n"), state),
			})
		},
		RenderHTML:    renderBlockQuoteHTML,
		RenderElement: renderBlockQuoteElement,
	})
}

func renderBlockQuoteHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	return helpers.HTMLTag("blockquote", render(n.Children, state), nil, true)
}

func renderBlockQuoteElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	return value.NewElement("blockquote", state.Key, map[string]any{
		"children": render(n.Children, state),
	})
}
