package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rulemd/rulemd/internal/domain/entity"
	"github.com/rulemd/rulemd/internal/domain/value"
	"github.com/rulemd/rulemd/pkg/rulemd/helpers"
)

var (
	tableRe   = regexp.MustCompile(`^ *(\|.+)\n *\|( *[-:]+[-| :]*)\n((?: *\|.*(?:\n|$))*)\n*`)
	nptableRe = regexp.MustCompile(`^ *(\S.*\|.*)\n *([-:]+ *\|[-| :]*)\n((?:.*\|.*(?:\n|$))*)\n*`)

	tableRowSeparatorTrimRe = regexp.MustCompile(`^ *\| *| *\| *$`)
	tableCellEndTrimRe      = regexp.MustCompile(` *$`)
	tableRightAlignRe       = regexp.MustCompile(`^ *-+: *$`)
	tableCenterAlignRe      = regexp.MustCompile(`^ *:-+: *$`)
	tableLeftAlignRe        = regexp.MustCompile(`^ *:-+ *$`)
)

// NewTableRule builds the pipe-bounded GFM table rule (`| A | B |` with
// a leading/trailing pipe on every row) (spec.md §4.4, §4.5).
func NewTableRule(order int) *entity.Rule {
	match := blockRegex(tableRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "table",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			return entity.One(parseTable(c, parse, state, true))
		},
		RenderHTML:    renderTableHTML,
		RenderElement: renderTableElement,
	})
}

// NewNpTableRule builds the non-pipe-bounded GFM table variant (no
// leading/trailing `|` required on each row) (spec.md §4.4, §4.5).
func NewNpTableRule(order int) *entity.Rule {
	match := blockRegex(nptableRe)
	return entity.MustNewRule(entity.Definition{
		Name:  "nptable",
		Order: order,
		Match: func(source string, state *value.State, prev string) *value.Capture {
			return captureFrom(source, match(source, state))
		},
		Parse: func(c *value.Capture, parse entity.ParseFunc, state *value.State) entity.ParseResult {
			node := parseTable(c, parse, state, false)
			node.Type = value.NodeTable
			return entity.One(node)
		},
	})
}

// parseTable implements spec.md §4.5's three-part sub-parser shared by
// table and nptable, differing only in whether row/align text is
// trimmed of its bounding pipes first.
func parseTable(c *value.Capture, parse entity.ParseFunc, state *value.State, trimEndSeparators bool) *value.Node {
	state.Inline = true
	header := parseTableRowCells(c.Group(1), parse, state, trimEndSeparators)
	align := parseTableAlign(c.Group(2), trimEndSeparators)
	cells := parseTableCells(c.Group(3), parse, state, trimEndSeparators)
	state.Inline = false

	return &value.Node{
		Type:   value.NodeTable,
		Header: header,
		Align:  align,
		Cells:  cells,
	}
}

func parseTableAlign(source string, trimEndSeparators bool) []value.Align {
	if trimEndSeparators {
		source = tableRowSeparatorTrimRe.ReplaceAllString(source, "")
	}
	parts := strings.Split(strings.TrimSpace(source), "|")
	out := make([]value.Align, len(parts))
	for i, token := range parts {
		switch {
		case tableRightAlignRe.MatchString(token):
			out[i] = value.AlignRight
		case tableCenterAlignRe.MatchString(token):
			out[i] = value.AlignCenter
		case tableLeftAlignRe.MatchString(token):
			out[i] = value.AlignLeft
		default:
			out[i] = value.AlignNone
		}
	}
	return out
}

func parseTableCells(source string, parse entity.ParseFunc, state *value.State, trimEndSeparators bool) [][][]*value.Node {
	lines := strings.Split(strings.TrimSpace(source), "\n")
	out := make([][][]*value.Node, len(lines))
	for i, line := range lines {
		out[i] = parseTableRowCells(line, parse, state, trimEndSeparators)
	}
	return out
}

// parseTableRowCells is spec.md §4.5 step 1: inline-parse one row with
// state.InTable set, then split the resulting node sequence into cells
// on table_separator markers.
func parseTableRowCells(source string, parse entity.ParseFunc, state *value.State, trimEndSeparators bool) [][]*value.Node {
	prevInTable := state.InTable
	state.InTable = true
	row := parse(strings.TrimSpace(source), state)
	state.InTable = prevInTable

	cells := [][]*value.Node{{}}
	for i, node := range row {
		if node.Type == value.NodeTableSeparator {
			if !trimEndSeparators || (i != 0 && i != len(row)-1) {
				cells = append(cells, []*value.Node{})
			}
			continue
		}
		if node.Type == value.NodeText && i+1 < len(row) && row[i+1].Type == value.NodeTableSeparator {
			node.Content = tableCellEndTrimRe.ReplaceAllString(node.Content, "")
		}
		cells[len(cells)-1] = append(cells[len(cells)-1], node)
	}
	return cells
}

func tableAlignStyle(align []value.Align, index int) string {
	if index < 0 || index >= len(align) || align[index] == value.AlignNone {
		return ""
	}
	return "text-align:" + string(align[index]) + ";"
}

func renderTableHTML(n *value.Node, render entity.HTMLRenderFunc, state *entity.RenderState) string {
	var headers strings.Builder
	for i, content := range n.Header {
		headers.WriteString(helpers.HTMLTag("th", render(content, state), helpers.Attrs{
			{Name: "style", Value: tableAlignStyle(n.Align, i)},
			{Name: "scope", Value: "col"},
		}, true))
	}

	var rows strings.Builder
	for _, row := range n.Cells {
		var cells strings.Builder
		for i, content := range row {
			cells.WriteString(helpers.HTMLTag("td", render(content, state), helpers.Attrs{
				{Name: "style", Value: tableAlignStyle(n.Align, i)},
			}, true))
		}
		rows.WriteString(helpers.HTMLTag("tr", cells.String(), nil, true))
	}

	thead := helpers.HTMLTag("thead", helpers.HTMLTag("tr", headers.String(), nil, true), nil, true)
	tbody := helpers.HTMLTag("tbody", rows.String(), nil, true)
	return helpers.HTMLTag("table", thead+tbody, nil, true)
}

func renderTableElement(n *value.Node, render entity.ElementRenderFunc, state *entity.RenderState) any {
	getStyle := func(i int) map[string]any {
		if i < 0 || i >= len(n.Align) || n.Align[i] == value.AlignNone {
			return map[string]any{}
		}
		return map[string]any{"textAlign": string(n.Align[i])}
	}

	headers := make([]any, len(n.Header))
	for i, content := range n.Header {
		headers[i] = value.NewElement("th", strconv.Itoa(i), map[string]any{
			"style":    getStyle(i),
			"scope":    "col",
			"children": render(content, state),
		})
	}

	rows := make([]any, len(n.Cells))
	for r, row := range n.Cells {
		cols := make([]any, len(row))
		for c, content := range row {
			cols[c] = value.NewElement("td", strconv.Itoa(c), map[string]any{
				"style":    getStyle(c),
				"children": render(content, state),
			})
		}
		rows[r] = value.NewElement("tr", strconv.Itoa(r), map[string]any{"children": cols})
	}

	return value.NewElement("table", state.Key, map[string]any{
		"children": []any{
			value.NewElement("thead", "thead", map[string]any{
				"children": value.NewElement("tr", "", map[string]any{"children": headers}),
			}),
			value.NewElement("tbody", "tbody", map[string]any{"children": rows}),
		},
	})
}
