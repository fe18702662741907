// Package value holds the immutable data shapes produced and consumed by
// the rulemd pipeline: parsed AST nodes, the element-tree render target,
// and the mutable parse state threaded through rule dispatch.
package value

// NodeType identifies which rule produced a Node and which renderer entry
// the output engine must dispatch to. It doubles as the map key rules are
// registered under in a RuleTable.
type NodeType string

const (
	NodeArray          NodeType = "Array"
	NodeText           NodeType = "text"
	NodeHeading        NodeType = "heading"
	NodeParagraph      NodeType = "paragraph"
	NodeBlockQuote     NodeType = "blockQuote"
	NodeList           NodeType = "list"
	NodeCodeBlock      NodeType = "codeBlock"
	NodeHR             NodeType = "hr"
	NodeBR             NodeType = "br"
	NodeNewline        NodeType = "newline"
	NodeLink           NodeType = "link"
	NodeImage          NodeType = "image"
	NodeEm             NodeType = "em"
	NodeStrong         NodeType = "strong"
	NodeU              NodeType = "u"
	NodeDel            NodeType = "del"
	NodeInlineCode     NodeType = "inlineCode"
	NodeTable          NodeType = "table"
	NodeTableSeparator NodeType = "table_separator"
	NodeDef            NodeType = "def"
)

// Align is a table column alignment, or AlignNone for an unspecified
// column.
type Align string

const (
	AlignNone   Align = ""
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Node is a tagged sum type over every AST node shape the default rule
// table produces. Only the fields relevant to Type are populated; the
// rest hold their zero value. Custom rule tables built with ParserFor may
// stash additional per-node data in Extra.
//
// Node is always handled by pointer (*Node) once produced by a rule's
// Parse, never copied by value: reflink/refimage nodes are registered
// into ParseState.Refs and back-patched in place by a later def, so the
// same node that a def resolves must be the one already spliced into its
// parent's Children/Items/Header/Cells.
type Node struct {
	Type NodeType

	// text, inlineCode(raw), def title/target share Content as the raw string.
	Content string

	// paragraph, blockQuote, em, strong, u, del, link, heading: nested content.
	Children []*Node

	// heading, lheading(rewritten to heading)
	Level int

	// list
	Ordered bool
	Start   *int
	Items   [][]*Node

	// codeBlock / fence
	Lang *string

	// link / image / autolink / mailto / url / reflink / refimage
	Target string
	Title  *string
	Alt    string

	// def
	DefName string

	// table
	Header [][]*Node
	Align  []Align
	Cells  [][][]*Node

	// Position is populated only when ParseState.TrackPositions is set;
	// it is not part of the spec's documented node shapes.
	Position *Position

	Extra map[string]any
}

// Position is an optional source-location annotation, off by default.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Text builds a bare text node, the shape the catch-all Text rule and
// Escape rule both emit.
func Text(content string) *Node {
	return &Node{Type: NodeText, Content: content}
}

// IsEmpty reports whether n is nil or the zero Node (used by callers
// walking optional child slots).
func (n *Node) IsEmpty() bool {
	return n == nil || n.Type == ""
}
