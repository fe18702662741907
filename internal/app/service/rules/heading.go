package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var headingRe = regexp.MustCompile(`^ *(#{1,6})([^\n]+?)#* *(?:\n *)+\n`)

// NewHeadingRule builds the ATX heading rule (spec.md §4.4, §6): strips
// trailing `#` and surrounding spaces, inline-parses the remaining text.
func NewHeadingRule(order int) *entity.Rule {
	match := blockRegex(headingRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "heading",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{
				Level:    len(c.Group(1)),
				Children: parseInlineContent(parse, strings.TrimSpace(c.Group(2)), state),
			})
		},
		RenderHTML:    renderHeadingHTML,
		RenderElement: renderHeadingElement,
	})
}

func renderHeadingHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	return helpers.HTMLTag("h"+strconv.Itoa(n.Level), render(n.Children, state), nil, true)
}

func renderHeadingElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	return value.NewElement("h"+strconv.Itoa(n.Level), state.Key, map[string]any{
		"children": render(n.Children, state),
	})
}

var lheadingRe = regexp.MustCompile(`^([^\n]+)\n *(=|-){3,} *(?:\n *)+\n`)

// NewLHeadingRule builds the Setext heading rule. It rewrites its node's
// Type to "heading" so it shares the ATX heading's renderers (spec.md
// §4.4, §9 open question: the two rules share a render target by
// design).
func NewLHeadingRule(order int) *entity.Rule {
	match := blockRegex(lheadingRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "lheading",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			level := 2
			if c.Group(2) == "=" {
				level = 1
			}
			return entity.One(&value.Node{
				Type:     value.NodeHeading,
				Level:    level,
				Children: parseInlineContent(parse, c.Group(1), state),
			})
		},
	})
}
