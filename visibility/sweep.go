package visibility

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/layoutsynth/view"
)

// Compute runs the sweep-line visibility algorithm over every example and
// unions the resulting anchor pairs onto the shared AnchorID space.
// It returns ErrNoExamples if examples is empty.
func Compute(examples []*view.Example) (*Relation, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}
	rel := newRelationState()
	for _, ex := range examples {
		if err := sweepExample(ex, rel); err != nil {
			return nil, err
		}
	}
	return rel, nil
}

// sweepEntry is one element of a sorted sweep sequence: an edge plus the
// view it belongs to (needed to detect "different views" and to emit the
// center anchor of each).
type sweepEntry struct {
	viewName string
	attr     attrKind
	value    *big.Rat // this edge's own position (top/bottom or left/right)
	center   *big.Rat // the orthogonal-axis center (center_y or center_x)
}

func sweepExample(ex *view.Example, rel *Relation) error {
	descendants := view.Descendants(ex.Root)
	if len(descendants) == 0 {
		return nil // no interior pairs possible; nothing to mark
	}

	hEdges, vEdges := make([]edge, 0, len(descendants)*2), make([]edge, 0, len(descendants)*2)
	for _, v := range descendants {
		cy := v.Rect.CenterY()
		cx := v.Rect.CenterX()
		hEdges = append(hEdges,
			edge{anchorView: v.Name, anchorAttr: attrTop, lo: v.Rect.Left, hi: v.Rect.Right, centerOrtho: cy, edgeValue: v.Rect.Top},
			edge{anchorView: v.Name, anchorAttr: attrBottom, lo: v.Rect.Left, hi: v.Rect.Right, centerOrtho: cy, edgeValue: v.Rect.Bottom},
		)
		vEdges = append(vEdges,
			edge{anchorView: v.Name, anchorAttr: attrLeft, lo: v.Rect.Top, hi: v.Rect.Bottom, centerOrtho: cx, edgeValue: v.Rect.Left},
			edge{anchorView: v.Name, anchorAttr: attrRight, lo: v.Rect.Top, hi: v.Rect.Bottom, centerOrtho: cx, edgeValue: v.Rect.Right},
		)
	}
	sortEdgesForInsertion(hEdges)
	sortEdgesForInsertion(vEdges)
	hTree := newIntervalTree(hEdges)
	vTree := newIntervalTree(vEdges)

	root := ex.Root
	rootTop := sweepEntry{viewName: root.Name, attr: attrTop, value: root.Rect.Top, center: root.Rect.CenterY()}
	rootBottom := sweepEntry{viewName: root.Name, attr: attrBottom, value: root.Rect.Bottom, center: root.Rect.CenterY()}
	rootLeft := sweepEntry{viewName: root.Name, attr: attrLeft, value: root.Rect.Left, center: root.Rect.CenterX()}
	rootRight := sweepEntry{viewName: root.Name, attr: attrRight, value: root.Rect.Right, center: root.Rect.CenterX()}

	allViews := ex.Views()
	xs := eventCoords(allViews, true)
	ys := eventCoords(allViews, false)

	// Vertical sweep lines x=c: query horizontal edges, sort, frame with
	// root's top/bottom, mark visible pairs + center_y promotion.
	for _, x := range xs {
		entries := toEntries(hTree.stabbing(x))
		if err := sweepLine(entries, rootTop, rootBottom, rel, false); err != nil {
			return err
		}
	}

	// Horizontal sweep lines y=c: query vertical edges, sort, frame with
	// root's left/right, mark visible pairs + center_x promotion.
	for _, y := range ys {
		entries := toEntries(vTree.stabbing(y))
		if err := sweepLine(entries, rootLeft, rootRight, rel, true); err != nil {
			return err
		}
	}

	return nil
}

func toEntries(edges []edge) []sweepEntry {
	out := make([]sweepEntry, len(edges))
	for i, e := range edges {
		out[i] = sweepEntry{viewName: e.anchorView, attr: e.anchorAttr, value: e.edgeValue, center: e.centerOrtho}
	}
	return out
}

// sortEdgesForInsertion fixes a deterministic insertion order for the
// interval tree: by lo, then hi, then view name, then attribute kind.
func sortEdgesForInsertion(edges []edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if c := a.lo.Cmp(b.lo); c != 0 {
			return c < 0
		}
		if c := a.hi.Cmp(b.hi); c != 0 {
			return c < 0
		}
		if a.anchorView != b.anchorView {
			return a.anchorView < b.anchorView
		}
		return a.anchorAttr < b.anchorAttr
	})
}

// eventCoords collects every {left,right} (xAxis true: x events) or
// {top,bottom} (xAxis false: y events) of every view, including the root's,
// deduplicated and sorted ascending.
func eventCoords(views []*view.View, xAxis bool) []*big.Rat {
	seen := make(map[string]*big.Rat)
	for _, v := range views {
		if xAxis {
			seen[v.Rect.Left.RatString()] = v.Rect.Left
			seen[v.Rect.Right.RatString()] = v.Rect.Right
		} else {
			seen[v.Rect.Top.RatString()] = v.Rect.Top
			seen[v.Rect.Bottom.RatString()] = v.Rect.Bottom
		}
	}
	out := make([]*big.Rat, 0, len(seen))
	for _, r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

// sweepLine sorts one sweep line's collected entries by (center, value,
// viewName), frames the sequence with the root's two orthogonal edges,
// and marks every adjacent cross-view pair visible. horizontalSweep
// selects which view-level promotion map (view_visible_h/v) receives the
// center-anchor promotion.
func sweepLine(entries []sweepEntry, frameLo, frameHi sweepEntry, rel *Relation, horizontalSweep bool) error {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if c := a.center.Cmp(b.center); c != 0 {
			return c < 0
		}
		if c := a.value.Cmp(b.value); c != 0 {
			return c < 0
		}
		return a.viewName < b.viewName
	})

	full := make([]sweepEntry, 0, len(entries)+2)
	full = append(full, frameLo)
	full = append(full, entries...)
	full = append(full, frameHi)

	for i := 0; i+1 < len(full); i++ {
		a, b := full[i], full[i+1]
		if a.viewName == b.viewName && a.attr == b.attr {
			return ErrDuplicateSweepEntry
		}
		if a.viewName == b.viewName {
			continue // same view's own two edges are adjacent; not a cross-view pair
		}
		idA, idB := anchorFor(a), anchorFor(b)
		rel.addAnchorPair(idA, idB)
		rel.promoteViewPair(a.viewName, b.viewName, horizontalSweep)

		// Additionally mark the two views' orthogonal-axis center anchors
		// visible to each other: center_y for a
		// vertical sweep (horizontalSweep==false), center_x for a
		// horizontal sweep.
		centerAttr := view.AttrCenterY
		if horizontalSweep {
			centerAttr = view.AttrCenterX
		}
		rel.addAnchorPair(
			view.AnchorID{View: a.viewName, Attr: centerAttr},
			view.AnchorID{View: b.viewName, Attr: centerAttr},
		)
	}
	return nil
}

func anchorFor(e sweepEntry) view.AnchorID {
	var attr view.Attribute
	switch e.attr {
	case attrTop:
		attr = view.AttrTop
	case attrBottom:
		attr = view.AttrBottom
	case attrLeft:
		attr = view.AttrLeft
	case attrRight:
		attr = view.AttrRight
	}
	return view.AnchorID{View: e.viewName, Attr: attr}
}
