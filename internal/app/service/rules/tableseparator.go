package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var tableSeparatorRe = regexp.MustCompile(`^ *\| *`)

// NewTableSeparatorRule builds the transient cell-delimiter rule: it
// only matches while state.InTable is set, and its node is consumed by
// the table sub-parser's cell grouping before rendering ever sees it in
// isolation (spec.md §4.4, §4.5); it still renders a standalone marker
// for completeness.
func NewTableSeparatorRule(order int) *entity.Rule {
	return entity.MustNewRule(entity.Definition{
		Name:  "tableSeparator",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			if !state.InTable {
				return nil
			}
			return captureFrom(source, tableSeparatorRe.FindStringSubmatchIndex(source))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(&value.Node{Type: value.NodeTableSeparator})
		},
		RenderHTML: func(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
			return " &vert; "
		},
		RenderElement: func(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
			return " | "
		},
	})
}
