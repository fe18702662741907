package value

// Element is the host-defined element-tree record produced by the
// "elements" output format — the shape a virtual-DOM view layer expects.
// Constructing the final host element from this record is the optional
// view-element step spec.md calls out as an external collaborator;
// rulemd only builds this intermediate record.
type Element struct {
	Type  string
	Key   string
	Ref   any
	Props map[string]any
}

// NewElement builds an Element with Ref left nil, matching the reference
// shape {type, key, ref=null, props, _owner=null} from spec.md §6.
func NewElement(elementType, key string, props map[string]any) Element {
	if props == nil {
		props = map[string]any{}
	}
	return Element{Type: elementType, Key: key, Props: props}
}
