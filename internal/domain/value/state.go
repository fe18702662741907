package value

// Capture is a single rule match: the full matched text at Groups[0] and
// any parenthesized submatches after it. Offset must be 0 when a Capture
// is handed back to the parse engine — every rule's regex is required to
// anchor at the current source position with ^.
type Capture struct {
	Groups []string
	Offset int
}

// FullMatch returns the entire matched span (Groups[0]), or "" for a nil
// capture used to represent "no previous capture yet".
func (c *Capture) FullMatch() string {
	if c == nil || len(c.Groups) == 0 {
		return ""
	}
	return c.Groups[0]
}

// Group returns submatch i, or "" if it wasn't captured or doesn't exist.
func (c *Capture) Group(i int) string {
	if c == nil || i < 0 || i >= len(c.Groups) {
		return ""
	}
	return c.Groups[i]
}

// LinkDef is a registered `[ref]: target "title"` definition.
type LinkDef struct {
	Target string
	Title  *string
}

// ParseState is the single mutable value threaded through every rule
// invocation during one top-level Parse call. It is never shared across
// concurrent parses: each call to the engine's entry points constructs a
// fresh State.
type State struct {
	// Inline selects whether inline-only or block-only rules are eligible.
	Inline bool

	// List is true while parsing the content of a list item, which lets
	// the list rule recognize a nested list without requiring a
	// block-start position.
	List bool

	// InTable is true while an inline parse is running over one table
	// row/cell, enabling the transient tableSeparator rule.
	InTable bool

	// DisableAutoBlockNewlines suppresses the "\n\n" the outer block
	// parse normally appends so the trailing paragraph/rule can close.
	DisableAutoBlockNewlines bool

	// TrackPositions is a flag a rule may read to stamp Node.Position.
	// No built-in rule reads it, so Node.Position stays nil either way.
	// Off by default.
	TrackPositions bool

	// PreviousCapture is the capture most recently consumed at the
	// current nesting level; the list rule uses it as a lookbehind to
	// confirm it is at a line boundary.
	PreviousCapture *Capture

	// Defs holds every `[ref]: target` definition seen so far, keyed by
	// a lowercased, whitespace-collapsed reference name.
	Defs map[string]LinkDef

	// Refs holds every reflink/refimage node awaiting (or already
	// resolved against, in case of a later redefinition) a Defs entry,
	// keyed the same way.
	Refs map[string][]*Node

	// Extra is a caller-supplied escape hatch for state the built-in
	// rules never read, e.g. a structured-output consumer's path key.
	Extra map[string]any
}

// NewState returns a State with its maps initialized and Inline=false
// (block mode), the default entry point's starting mode.
func NewState() *State {
	return &State{
		Defs: make(map[string]LinkDef),
		Refs: make(map[string][]*Node),
	}
}

// Clone returns a shallow copy of s suitable for a reentrant sub-parse
// that must not leak its own previousCapture/inline changes back up
// without an explicit save/restore — callers still follow the
// save-field/mutate/restore-field discipline spec.md §5 describes; Clone
// exists for call sites (CLI batch rendering, ParserFor-built parsers)
// that want a fresh top-level state seeded from shared defaults.
func (s *State) Clone() *State {
	clone := &State{
		Inline:                   s.Inline,
		List:                     s.List,
		InTable:                  s.InTable,
		DisableAutoBlockNewlines: s.DisableAutoBlockNewlines,
		TrackPositions:           s.TrackPositions,
		Defs:                     make(map[string]LinkDef, len(s.Defs)),
		Refs:                     make(map[string][]*Node, len(s.Refs)),
	}
	for k, v := range s.Defs {
		clone.Defs[k] = v
	}
	for k, v := range s.Refs {
		clone.Refs[k] = append([]*Node(nil), v...)
	}
	if s.Extra != nil {
		clone.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			clone.Extra[k] = v
		}
	}
	return clone
}

// RegisterDef records a link reference definition and back-patches any
// reflink/refimage nodes already waiting on that name — including ones
// registered before this call under an *earlier* (now-superseded)
// definition, since later redefinitions are intentionally allowed to
// win per spec.md §4.8.
func (s *State) RegisterDef(name, target string, title *string) {
	if s.Defs == nil {
		s.Defs = make(map[string]LinkDef)
	}
	s.Defs[name] = LinkDef{Target: target, Title: title}
	for _, ref := range s.Refs[name] {
		ref.Target = target
		ref.Title = title
	}
}

// RegisterRef resolves node against any definition already known for
// name, then queues it so a later (or redefining) Def back-patches it
// too.
func (s *State) RegisterRef(name string, node *Node) {
	if def, ok := s.Defs[name]; ok {
		node.Target = def.Target
		node.Title = def.Title
	}
	if s.Refs == nil {
		s.Refs = make(map[string][]*Node)
	}
	s.Refs[name] = append(s.Refs[name], node)
}
