package service

import (
	"fmt"
	"regexp"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
)

// blockEndRe matches a trailing blank line, used by ParseImplicit to
// decide whether source looks like it ends mid-block (inline mode) or
// after a completed block (block mode).
var blockEndRe = regexp.MustCompile(`\n{2,}$`)

// ParseEngine is spec.md §4.3's `parser_for`: a sorted rule dispatch list
// built once from a RuleTable, plus the entry points that seed parse
// state and preprocess source before handing it to the reentrant dispatch
// loop.
type ParseEngine struct {
	dispatch []*entity.Rule
	warnings []string
}

// NewParseEngine builds the sorted dispatch list from table. Rules
// without Match (the Array joiner) are excluded from dispatch silently;
// rules with a non-numeric Order are excluded and their names are
// reported in Warnings().
func NewParseEngine(table *RuleTable) *ParseEngine {
	dispatch, warnings := table.Build()
	return &ParseEngine{dispatch: dispatch, warnings: warnings}
}

// Warnings reports non-fatal rule-table construction issues (spec.md §7):
// currently just rules excluded for a non-numeric order.
func (e *ParseEngine) Warnings() []string { return e.warnings }

// Parse is the default block-mode entry point: sets state.Inline=false.
func (e *ParseEngine) Parse(source string, state *value.State) ([]*value.Node, error) {
	state.Inline = false
	return e.outerParse(source, state)
}

// ParseInline is the inline-mode entry point: sets state.Inline=true.
func (e *ParseEngine) ParseInline(source string, state *value.State) ([]*value.Node, error) {
	state.Inline = true
	return e.outerParse(source, state)
}

// ParseImplicit chooses inline vs block mode from the shape of source
// itself: block mode if source ends in two or more newlines, inline mode
// otherwise (spec.md §6, BLOCK_END_R).
func (e *ParseEngine) ParseImplicit(source string, state *value.State) ([]*value.Node, error) {
	state.Inline = !blockEndRe.MatchString(source)
	return e.outerParse(source, state)
}

// outerParse seeds the previous-capture slot, appends the trailing
// "\n\n" block rules rely on to terminate (unless inline or explicitly
// suppressed), preprocesses source, and runs the dispatch loop. A rule
// table failure deep inside a reentrant sub-parse surfaces as a panic
// (see nestedParse's parseFn closure, since entity.ParseFunc has no error
// return); outerParse is the only place that recovers it, converting a
// programmer-error panic back into the error spec.md §7 documents.
func (e *ParseEngine) outerParse(source string, state *value.State) (nodes []*value.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = fmt.Errorf("rulemd: %v", r)
			}
		}
	}()

	if !state.Inline && !state.DisableAutoBlockNewlines {
		source += "\n\n"
	}
	state.PreviousCapture = nil
	return e.nestedParse(Preprocess(source), state)
}

// nestedParse is the reentrant dispatch loop spec.md §4.3 describes: pick
// the best rule at position 0, parse its capture into node(s), advance
// past the consumed text, repeat until source is exhausted.
func (e *ParseEngine) nestedParse(source string, state *value.State) ([]*value.Node, error) {
	var result []*value.Node

	parseFn := entity.ParseFunc(func(src string, st *value.State) []*value.Node {
		nodes, err := e.nestedParse(src, st)
		if err != nil {
			// A reentrant sub-parse failing is the same class of
			// programmer error as the top-level parse failing: the
			// table's catch-all rule should always match. Panicking here
			// (recovered at the public API boundary) keeps every rule's
			// Parse signature free of error plumbing, matching spec.md's
			// ParseFunc contract.
			panic(err)
		}
		return nodes
	})

	for len(source) > 0 {
		rule, capture, err := e.selectRule(source, state)
		if err != nil {
			return nil, err
		}
		if capture.Offset != 0 {
			return nil, fmt.Errorf(
				"rulemd: rule %q returned a capture not anchored at offset 0 (forgot ^ in its regex)",
				rule.Name(),
			)
		}

		parsed := rule.Parse(capture, parseFn, state)
		if parsed.IsList() {
			result = append(result, parsed.Nodes...)
		} else {
			node := parsed.Node()
			if node.Type == "" {
				node.Type = value.NodeType(rule.Name())
			}
			result = append(result, node)
		}

		state.PreviousCapture = capture
		consumed := capture.FullMatch()
		if consumed == "" {
			return nil, fmt.Errorf(
				"rulemd: rule %q matched an empty capture; the parse loop requires forward progress",
				rule.Name(),
			)
		}
		source = source[len(consumed):]
	}

	return result, nil
}

// selectRule implements spec.md §4.3 steps 1-5: scan the dispatch list in
// order, tracking the best (highest quality) capture seen; only rules
// sharing the current order AND exposing a Quality function can displace
// an already-found best, and scanning stops the moment a strictly later
// order is reached after a best has been found.
func (e *ParseEngine) selectRule(source string, state *value.State) (*entity.Rule, *value.Capture, error) {
	if len(e.dispatch) == 0 {
		return nil, nil, fmt.Errorf("rulemd: rule table has no matchable rules")
	}

	var bestRule *entity.Rule
	var bestCapture *value.Capture
	bestQuality := -1.0

	i := 0
	currentRule := e.dispatch[0]
	var currentOrder int

	for i == 0 || (currentRule != nil && (bestCapture == nil || (orderEquals(currentRule, currentOrder) && currentRule.HasQuality()))) {
		order, _ := currentRule.Order()
		currentOrder = order

		prevText := state.PreviousCapture.FullMatch()
		capture := currentRule.Match(source, state, prevText)
		if capture != nil {
			quality := 0.0
			if currentRule.HasQuality() {
				quality = currentRule.Quality(capture, state, prevText)
			}
			if quality > bestQuality {
				bestRule = currentRule
				bestCapture = capture
				bestQuality = quality
			}
		}

		i++
		if i < len(e.dispatch) {
			currentRule = e.dispatch[i]
		} else {
			currentRule = nil
		}
	}

	if bestRule == nil || bestCapture == nil {
		last := e.dispatch[len(e.dispatch)-1]
		return nil, nil, fmt.Errorf(
			"rulemd: could not find a matching rule for the remaining content; "+
				"check the match definition of %q, the last rule in the table:\n%s",
			last.Name(), preview(source),
		)
	}
	return bestRule, bestCapture, nil
}

func orderEquals(rule *entity.Rule, order int) bool {
	o, numeric := rule.Order()
	return numeric && o == order
}

func preview(source string) string {
	const max = 80
	if len(source) <= max {
		return source
	}
	return source[:max] + "..."
}
