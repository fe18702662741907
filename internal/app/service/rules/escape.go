package rules

import (
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

var escapeRe = regexp.MustCompile(`^\\([^0-9A-Za-z\s])`)

// NewEscapeRule builds the backslash-escape rule: `\X` for any
// non-alphanumeric, non-whitespace X emits a bare text node holding X
// (spec.md §4.4).
func NewEscapeRule(order int) *entity.Rule {
	match := inlineRegex(escapeRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "escape",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(value.Text(c.Group(1)))
		},
	})
}
