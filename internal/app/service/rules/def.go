package rules

import (
	"regexp"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var (
	defRe          = regexp.MustCompile(`^ *\[([^\]]+)\]: *<?([^\s>]*)>?(?: +["(]([^\n]+)[")])? *\n(?: *\n)*`)
	defWhitespaceRe = regexp.MustCompile(`\s+`)
)

// normalizeRefName lowercases and collapses whitespace, the reference
// registry's key normalization (spec.md §4.8).
func normalizeRefName(name string) string {
	return strings.ToLower(defWhitespaceRe.ReplaceAllString(name, " "))
}

// NewDefRule builds the link reference definition rule: `[ref]: url
// "title"`. It registers the definition and back-patches any queued
// reflink/refimage nodes waiting on it, then renders to nothing in
// either format (spec.md §4.4, §4.8).
func NewDefRule(order int) *entity.Rule {
	match := blockRegex(defRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "def",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			name := normalizeRefName(c.Group(1))
			target := c.Group(2)
			var title *string
			if t := c.Group(3); t != "" {
				title = &t
			}
			state.RegisterDef(name, target, title)
			return entity.One(&value.Node{
				Type:    value.NodeDef,
				DefName: name,
				Target:  target,
				Title:   title,
			})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return ""
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return nil
		},
	})
}
