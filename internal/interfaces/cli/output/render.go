// Package output turns a parsed node tree into terminal-facing text: a
// theme-styled rendering for `render --color` and `preview`, and a plain
// indented dump of the tree shape for `tree`. Neither depends on the
// parser's own HTML/element renderers (service.OutputEngine) — those
// target document-consuming callers, these target a human at a terminal.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rulemd/rulemd/internal/domain/value"
)

// TermRenderer walks a node tree and produces lipgloss-styled text,
// dispatching on value.NodeType the same way service.OutputEngine
// dispatches on a rule table, except the styling table here is a fixed
// switch rather than a pluggable RuleTable: a terminal rendering has no
// equivalent of a custom rule's RenderHTML/RenderElement, so there is
// nothing for a caller to extend.
type TermRenderer struct {
	theme value.Theme
	width int
}

// NewTermRenderer builds a renderer that styles every node kind theme
// knows about and wraps paragraphs to width columns (0 disables
// wrapping; tests and `render --color` always pass 0).
func NewTermRenderer(theme value.Theme, width int) *TermRenderer {
	return &TermRenderer{theme: theme, width: width}
}

// Render renders a full document: the top-level sibling list produced by
// pkg/rulemd.Parse.
func (r *TermRenderer) Render(nodes []*value.Node) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.block(n))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// block renders one top-level or list-item node as a standalone block,
// terminated by its own blank line where the node kind calls for one.
func (r *TermRenderer) block(n *value.Node) string {
	if n.IsEmpty() {
		return ""
	}

	switch n.Type {
	case value.NodeHeading:
		prefix := strings.Repeat("#", n.Level) + " "
		return r.theme.Style(value.NodeHeading).Render(prefix+r.inlineChildren(n.Children)) + "\n"

	case value.NodeParagraph:
		return r.wrap(r.inlineChildren(n.Children)) + "\n"

	case value.NodeBlockQuote:
		inner := r.Render(n.Children)
		var b strings.Builder
		for _, line := range strings.Split(strings.TrimRight(inner, "\n"), "\n") {
			b.WriteString(r.theme.Style(value.NodeBlockQuote).Render("> "+line) + "\n")
		}
		return b.String()

	case value.NodeList:
		return r.list(n)

	case value.NodeCodeBlock:
		style := r.theme.Style(value.NodeCodeBlock)
		var b strings.Builder
		for _, line := range strings.Split(strings.TrimRight(n.Content, "\n"), "\n") {
			b.WriteString(style.Render("    "+line) + "\n")
		}
		return b.String()

	case value.NodeHR:
		return r.theme.Style(value.NodeHR).Render(strings.Repeat("─", 40)) + "\n"

	case value.NodeTable:
		return r.table(n)

	case value.NodeDef:
		return ""

	default:
		return r.inline(n)
	}
}

func (r *TermRenderer) list(n *value.Node) string {
	var b strings.Builder
	start := 1
	if n.Start != nil {
		start = *n.Start
	}
	for i, item := range n.Items {
		var marker string
		if n.Ordered {
			marker = strconv.Itoa(start+i) + ". "
		} else {
			marker = "- "
		}
		styled := r.theme.Style(value.NodeList).Render(marker)
		body := strings.TrimRight(r.Render(item), "\n")
		lines := strings.Split(body, "\n")
		for j, line := range lines {
			if j == 0 {
				b.WriteString(styled + line + "\n")
			} else {
				b.WriteString(strings.Repeat(" ", lipgloss.Width(marker)) + line + "\n")
			}
		}
	}
	return b.String()
}

func (r *TermRenderer) table(n *value.Node) string {
	widths := make([]int, len(n.Header))
	headerCells := make([]string, len(n.Header))
	for i, cell := range n.Header {
		headerCells[i] = r.inlineChildren(cell)
		widths[i] = lipgloss.Width(headerCells[i])
	}
	rowCells := make([][]string, len(n.Cells))
	for ri, row := range n.Cells {
		rowCells[ri] = make([]string, len(row))
		for ci, cell := range row {
			text := r.inlineChildren(cell)
			rowCells[ri][ci] = text
			if ci < len(widths) && lipgloss.Width(text) > widths[ci] {
				widths[ci] = lipgloss.Width(text)
			}
		}
	}

	headingStyle := r.theme.Style(value.NodeHeading)
	var b strings.Builder
	b.WriteString(tableRow(headerCells, widths, headingStyle) + "\n")
	b.WriteString(tableSeparator(widths) + "\n")
	for _, row := range rowCells {
		b.WriteString(tableRow(row, widths, lipgloss.NewStyle()) + "\n")
	}
	return b.String()
}

func tableRow(cells []string, widths []int, style lipgloss.Style) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		padded[i] = style.Render(cell) + strings.Repeat(" ", w-lipgloss.Width(cell))
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func tableSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

// inlineChildren renders a run of inline siblings to a single string,
// the inline analogue of service.OutputEngine.RenderHTML's []*value.Node
// case.
func (r *TermRenderer) inlineChildren(nodes []*value.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.inline(n))
	}
	return b.String()
}

func (r *TermRenderer) inline(n *value.Node) string {
	if n.IsEmpty() {
		return ""
	}

	switch n.Type {
	case value.NodeText:
		return r.theme.Style(value.NodeText).Render(n.Content)
	case value.NodeStrong:
		return r.theme.Style(value.NodeStrong).Render(r.inlineChildren(n.Children))
	case value.NodeEm:
		return r.theme.Style(value.NodeEm).Render(r.inlineChildren(n.Children))
	case value.NodeU:
		return r.theme.Style(value.NodeU).Render(r.inlineChildren(n.Children))
	case value.NodeDel:
		return r.theme.Style(value.NodeDel).Render(r.inlineChildren(n.Children))
	case value.NodeInlineCode:
		return r.theme.Style(value.NodeInlineCode).Render(n.Content)
	case value.NodeLink:
		return r.theme.Style(value.NodeLink).Render(r.inlineChildren(n.Children) + " (" + n.Target + ")")
	case value.NodeImage:
		return r.theme.Style(value.NodeLink).Render("[image: " + n.Alt + "](" + n.Target + ")")
	case value.NodeBR, value.NodeNewline:
		return "\n"
	default:
		return r.inlineChildren(n.Children)
	}
}

// wrap hard-wraps text to the renderer's configured width using
// lipgloss, a no-op when width is 0.
func (r *TermRenderer) wrap(text string) string {
	if r.width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(r.width).Render(text)
}

// Tree renders nodes as a plain, indented dump of the parsed structure,
// one line per node, used by the `tree` command. Position is included
// only when a node carries one; no built-in rule sets it.
func Tree(nodes []*value.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeTreeNode(&b, n, 0)
	}
	return b.String()
}

func writeTreeNode(b *strings.Builder, n *value.Node, depth int) {
	if n.IsEmpty() {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s%s\n", indent, n.Type, treeAnnotation(n))

	for _, c := range n.Children {
		writeTreeNode(b, c, depth+1)
	}
	for _, item := range n.Items {
		fmt.Fprintf(b, "%s  item\n", indent)
		for _, c := range item {
			writeTreeNode(b, c, depth+2)
		}
	}
	for _, row := range n.Header {
		for _, c := range row {
			writeTreeNode(b, c, depth+1)
		}
	}
	for _, row := range n.Cells {
		for _, cell := range row {
			for _, c := range cell {
				writeTreeNode(b, c, depth+1)
			}
		}
	}
}

func treeAnnotation(n *value.Node) string {
	var parts []string
	if n.Content != "" {
		parts = append(parts, fmt.Sprintf("content=%q", n.Content))
	}
	if n.Level != 0 {
		parts = append(parts, fmt.Sprintf("level=%d", n.Level))
	}
	if n.Target != "" {
		parts = append(parts, fmt.Sprintf("target=%q", n.Target))
	}
	if n.Position != nil {
		parts = append(parts, fmt.Sprintf("pos=%d:%d", n.Position.Line, n.Position.Column))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
