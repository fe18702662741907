package rules

import (
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var textRe = regexp2MustCompile(`^[\s\S]+?(?=[^0-9A-Za-z\s\x{00c0}-\x{ffff}]|\n\n| {2,}\n|\w+:\S|$)`)

// NewTextRule builds the catch-all fallback rule: consumes up to the
// next punctuation character, blank line, hard break, or URL-like
// `word:` token — it is the rule every source must eventually match,
// since the parse engine treats "nothing matched" as a fatal,
// rule-table-is-broken condition (spec.md §4.4, §7).
func NewTextRule(order int) *entity.Rule {
	match := anyScopeRegex2(textRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "text",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(value.Text(c.FullMatch()))
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.SanitizeText(n.Content)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return n.Content
		},
	})
}
