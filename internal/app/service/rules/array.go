package rules

import (
	"github.com/rulemd/rulemd/internal/domain/entity"
)

// NewArrayRule builds the reserved "Array" joiner the output engine
// requires (spec.md §4.2, §4.7). It has no Match/Parse: RuleTable.Build
// never dispatches to it, and OutputEngine handles []*value.Node
// directly rather than calling through Rule.RenderHTML/RenderElement —
// this rule exists only so NewOutputEngine's "does an Array rule exist"
// construction check (spec.md §7) has a registry entry to find.
func NewArrayRule() *entity.Rule {
	return entity.MustNewRule(entity.Definition{
		Name:  "Array",
		Order: 0,
	})
}
