package rules

import (
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

// parseInlineContent saves state.Inline, forces inline mode, sub-parses
// content, and restores state.Inline — spec.md §4.3's parse_inline helper.
func parseInlineContent(parse entity.ParseFunc, content string, state *value.State) []*value.Node {
	was := state.Inline
	state.Inline = true
	result := parse(content, state)
	state.Inline = was
	return result
}

// parseBlockContent saves state.Inline, forces block mode, appends the
// trailing blank line block rules need to terminate, sub-parses content,
// and restores state.Inline — spec.md §4.3's parse_block helper.
func parseBlockContent(parse entity.ParseFunc, content string, state *value.State) []*value.Node {
	was := state.Inline
	state.Inline = false
	result := parse(content+"\n\n", state)
	state.Inline = was
	return result
}
