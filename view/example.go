package view

// Example is one observed layout: a fully built View tree plus the
// pre-computed AnchorID index shared by every later stage. The index order
// is fixed: pre-order over views, then the fixed Attributes order within
// each view.
type Example struct {
	Root    *View
	Anchors []AnchorID
	byID    map[AnchorID]*View
}

// NewExample builds an Example from an already-constructed View tree,
// computing the canonical anchor index once.
func NewExample(root *View) *Example {
	views := Preorder(root, nil)
	anchors := make([]AnchorID, 0, len(views)*numAttributes)
	byID := make(map[AnchorID]*View, len(views)*numAttributes)
	for _, v := range views {
		for _, attr := range Attributes {
			id := AnchorID{View: v.Name, Attr: attr}
			anchors = append(anchors, id)
			byID[id] = v
		}
	}
	return &Example{Root: root, Anchors: anchors, byID: byID}
}

// Views returns every view in the example, in pre-order.
func (e *Example) Views() []*View {
	return Preorder(e.Root, nil)
}

// Resolve returns the View backing an AnchorID, or ErrUnknownAnchor.
func (e *Example) Resolve(id AnchorID) (*View, error) {
	v, ok := e.byID[id]
	if !ok {
		return nil, ErrUnknownAnchor
	}
	return v, nil
}

// Anchor resolves id to a full Anchor, or ErrUnknownAnchor.
func (e *Example) Anchor(id AnchorID) (Anchor, error) {
	v, err := e.Resolve(id)
	if err != nil {
		return Anchor{}, err
	}
	return Anchor{ID: id, View: v}, nil
}
