// Package rulemd is the public entry point for the rule-dispatch
// Markdown parser: parse Markdown to an AST, then render that AST to
// HTML or to a host-defined element tree (spec.md §6).
package rulemd

import (
	"fmt"

	"github.com/rulemd/rulemd/internal/app/service"
	"github.com/rulemd/rulemd/internal/app/service/rules"
	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/internal/shared/functional"
)

// Version is the library's own version, independent of any Markdown
// dialect it implements.
const Version = "1.0.0"

// Parser wraps a compiled rule dispatch list bound to one RuleTable
// (spec.md §6's `parser_for`).
type Parser struct {
	engine   *service.ParseEngine
	warnings []string
}

// ParserFor constructs a custom parser from table. Warnings (e.g. a rule
// excluded for a non-numeric order, spec.md §7) are available via
// Warnings rather than surfaced as an error, since they never prevent
// parsing — the rest of the table still dispatches normally.
func ParserFor(table *service.RuleTable) *Parser {
	engine := service.NewParseEngine(table)
	return &Parser{engine: engine, warnings: engine.Warnings()}
}

// DefaultParser builds a Parser over the compiled-in default rule table
// realizing standard Markdown plus the GFM extensions spec.md §4.4 names.
func DefaultParser() *Parser {
	return ParserFor(rules.BuildDefaultRules())
}

// Warnings reports any non-fatal rule-table construction issues.
func (p *Parser) Warnings() []string { return p.warnings }

// Parse is the default block-mode entry point.
func (p *Parser) Parse(source string, state *value.State) ([]*value.Node, error) {
	return p.engine.Parse(source, state)
}

// ParseInline parses source as inline content.
func (p *Parser) ParseInline(source string, state *value.State) ([]*value.Node, error) {
	return p.engine.ParseInline(source, state)
}

// ParseImplicit chooses block vs inline mode from source's own shape
// (spec.md §6, BLOCK_END_R).
func (p *Parser) ParseImplicit(source string, state *value.State) ([]*value.Node, error) {
	return p.engine.ParseImplicit(source, state)
}

// Output wraps a compiled output engine bound to one RuleTable (spec.md
// §6's `output_for`). Unlike the reference implementation's single
// format-dispatched render_fn, Go's static typing makes two named
// methods (HTML, Elements) the idiomatic shape for "the same render
// walk, two possible return types" rather than a function returning
// `any` the caller must type-assert.
type Output struct {
	engine *service.OutputEngine
}

// OutputFor constructs a custom renderer from table. It fails construction
// (rather than at first render) if table has no "Array" joiner rule,
// matching spec.md §7's output-engine misconfiguration contract.
func OutputFor(table *service.RuleTable) functional.Result[*Output] {
	engine, err := service.NewOutputEngine(table)
	if err != nil {
		return functional.Err[*Output](err)
	}
	return functional.Ok(&Output{engine: engine})
}

// DefaultOutput builds an Output over the compiled-in default rule table.
func DefaultOutput() *Output {
	return OutputFor(rules.BuildDefaultRules()).Unwrap()
}

// HTML renders a parsed node list to an HTML string.
func (o *Output) HTML(nodes []*value.Node) string {
	return o.engine.RenderHTML(nodes, &entity.RenderState{})
}

// Elements renders a parsed node list to a host-defined element tree:
// a value.Element, a plain string, or a []any of such values for a
// sibling list (spec.md §6).
func (o *Output) Elements(nodes []*value.Node) any {
	return o.engine.RenderElements(nodes, &entity.RenderState{})
}

// defaultState returns state if non-nil, otherwise a fresh value.State —
// the optional `state?` parameter spec.md §6's top-level functions take.
func defaultState(state *value.State) *value.State {
	if state != nil {
		return state
	}
	return value.NewState()
}

// Parse is the package-level default block parse, built over the
// compiled-in default rule table.
func Parse(source string, state *value.State) ([]*value.Node, error) {
	return DefaultParser().Parse(source, defaultState(state))
}

// ParseInline is the package-level inline-mode parse.
func ParseInline(source string, state *value.State) ([]*value.Node, error) {
	return DefaultParser().ParseInline(source, defaultState(state))
}

// ParseImplicit is the package-level implicit-mode parse.
func ParseImplicit(source string, state *value.State) ([]*value.Node, error) {
	return DefaultParser().ParseImplicit(source, defaultState(state))
}

// ToHTML parses source and renders it straight to an HTML string.
func ToHTML(source string, state *value.State) (string, error) {
	nodes, err := Parse(source, state)
	if err != nil {
		return "", fmt.Errorf("rulemd: %w", err)
	}
	return DefaultOutput().HTML(nodes), nil
}

// ToElements parses source and renders it straight to an element tree.
func ToElements(source string, state *value.State) (any, error) {
	nodes, err := Parse(source, state)
	if err != nil {
		return nil, fmt.Errorf("rulemd: %w", err)
	}
	return DefaultOutput().Elements(nodes), nil
}

// GetVersion returns the library's own version string.
func GetVersion() string {
	return Version
}
