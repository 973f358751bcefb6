package instantiate

import "github.com/katalvlaran/layoutsynth/view"

// Context bundles the reference example's view tree and the precomputed
// visibility relation so every predicate has O(1) access to what it
// needs. All predicates are pure functions of (Context, i, j).
type Context struct {
	Example  *view.Example
	Parent   map[string]string   // view name -> parent view name (root absent)
	Siblings map[string][]string // view name -> sibling names (same parent, order preserved)
	Visible  visibilityRelation
}

// visibilityRelation is the subset of visibility.Relation's API the
// instantiator needs; declared locally so this package's exported Context
// shape does not name visibility's concrete type, and kept as an
// interface so tests can supply a fake relation without constructing
// real geometry.
type visibilityRelation interface {
	AnchorsVisible(a, b view.AnchorID) bool
	ViewsVisibleHorizontal(a, b string) bool
	ViewsVisibleVertical(a, b string) bool
}

// NewContext builds a Context from the reference example and its
// precomputed visibility relation.
func NewContext(ex *view.Example, rel visibilityRelation) *Context {
	ctx := &Context{
		Example:  ex,
		Parent:   make(map[string]string),
		Siblings: make(map[string][]string),
		Visible:  rel,
	}
	for _, v := range ex.Views() {
		for _, child := range v.Children {
			ctx.Parent[child.Name] = v.Name
		}
		if len(v.Children) > 0 {
			names := make([]string, len(v.Children))
			for i, c := range v.Children {
				names[i] = c.Name
			}
			for _, c := range v.Children {
				ctx.Siblings[c.Name] = names
			}
		}
	}
	return ctx
}

func (c *Context) sameView(i, j view.AnchorID) bool { return i.View == j.View }

func (c *Context) sameAttribute(i, j view.AnchorID) bool { return i.Attr == j.Attr }

// parentOf reports whether the view of j is a direct child of the view
// of i.
func (c *Context) parentOf(i, j view.AnchorID) bool {
	parent, ok := c.Parent[j.View]
	return ok && parent == i.View
}

// sibling reports whether i and j's views are distinct children of the
// same parent.
func (c *Context) sibling(i, j view.AnchorID) bool {
	if i.View == j.View {
		return false
	}
	pi, oki := c.Parent[i.View]
	pj, okj := c.Parent[j.View]
	return oki && okj && pi == pj
}

func bothSize(i, j view.AnchorID) bool { return i.Attr.IsSize() && j.Attr.IsSize() }

func bothPosition(i, j view.AnchorID) bool { return i.Attr.IsPosition() && j.Attr.IsPosition() }

func bothHorizontal(i, j view.AnchorID) bool { return i.Attr.IsHorizontal() && j.Attr.IsHorizontal() }

func bothVertical(i, j view.AnchorID) bool { return i.Attr.IsVertical() && j.Attr.IsVertical() }

func oneHoneV(i, j view.AnchorID) bool { return i.Attr.IsHorizontal() != j.Attr.IsHorizontal() }

// dualType reports whether the unordered pair of attributes is exactly
// {left,right} or {top,bottom}.
func dualType(i, j view.AnchorID) bool {
	dual, ok := i.Attr.Dual()
	return ok && dual == j.Attr
}

func (c *Context) visible(i, j view.AnchorID) bool {
	return c.Visible != nil && c.Visible.AnchorsVisible(i, j)
}

func (c *Context) viewVisibleH(i, j view.AnchorID) bool {
	return c.Visible != nil && c.Visible.ViewsVisibleHorizontal(i.View, j.View)
}

func (c *Context) viewVisibleV(i, j view.AnchorID) bool {
	return c.Visible != nil && c.Visible.ViewsVisibleVertical(i.View, j.View)
}
