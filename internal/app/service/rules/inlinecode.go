package rules

import (
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var (
	inlineCodeRe              = regexp2MustCompile("^(`+)([\\s\\S]*?[^`])\\1(?!`)")
	inlineCodeTrimBackticksRe = regexp2MustCompile("^ (?= *`)|(` *) $")
)

// trimInlineCodeSpace applies INLINE_CODE_ESCAPE_BACKTICKS_R: a leading
// space immediately before a run of spaces-then-backtick is dropped
// entirely, and a trailing run of backticks-then-spaces loses only its
// trailing space (spec.md §6). It is one regexp2 Replace of every match
// with "$1", so the leading-space branch (group 1 unset) is replaced by
// nothing and the trailing branch keeps its backticks.
func trimInlineCodeSpace(content string) string {
	out, err := inlineCodeTrimBackticksRe.Replace(content, "$1", -1, -1)
	if err != nil {
		return content
	}
	return out
}

// NewInlineCodeRule builds the `` `x` `` code span rule: the backtick
// run length must balance (regexp2's \1 backreference, unavailable in
// RE2), and a single leading/trailing space adjacent to a backtick is
// trimmed (spec.md §4.4, §6).
func NewInlineCodeRule(order int) *entity.Rule {
	match := inlineRegex2(inlineCodeRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "inlineCode",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return match(source, state)
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			content := trimInlineCodeSpace(c.Group(2))
			return entity.One(&value.Node{Content: content})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return helpers.HTMLTag("code", helpers.SanitizeText(n.Content), nil, true)
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return value.NewElement("code", state.Key, map[string]any{"children": n.Content})
		},
	})
}
