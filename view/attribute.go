package view

// Attribute enumerates the eight anchorable quantities of a Rect. The
// numeric order below is the fixed, documented attribute order used
// everywhere a deterministic per-view iteration is required (template
// instantiation, anchor indexing): Left, Top, Right, Bottom, CenterX,
// CenterY, Width, Height.
type Attribute int

const (
	AttrLeft Attribute = iota
	AttrTop
	AttrRight
	AttrBottom
	AttrCenterX
	AttrCenterY
	AttrWidth
	AttrHeight

	numAttributes = int(AttrHeight) + 1
)

// Attributes is the fixed, documented enumeration order. Every per-view
// anchor loop ranges over this slice rather than re-deriving the order, so
// that determinism holds even if the enum grows.
var Attributes = [numAttributes]Attribute{
	AttrLeft, AttrTop, AttrRight, AttrBottom,
	AttrCenterX, AttrCenterY, AttrWidth, AttrHeight,
}

// String returns the lowercase wire-form name of the attribute.
func (a Attribute) String() string {
	switch a {
	case AttrLeft:
		return "left"
	case AttrTop:
		return "top"
	case AttrRight:
		return "right"
	case AttrBottom:
		return "bottom"
	case AttrCenterX:
		return "center_x"
	case AttrCenterY:
		return "center_y"
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	default:
		return "unknown"
	}
}

// IsHorizontal reports whether a belongs to the horizontal axis family
// {left, right, center_x, width}.
func (a Attribute) IsHorizontal() bool {
	switch a {
	case AttrLeft, AttrRight, AttrCenterX, AttrWidth:
		return true
	default:
		return false
	}
}

// IsVertical reports whether a belongs to the vertical axis family
// {top, bottom, center_y, height}.
func (a Attribute) IsVertical() bool {
	return !a.IsHorizontal()
}

// IsSize reports whether a is a size attribute {width, height}.
func (a Attribute) IsSize() bool {
	return a == AttrWidth || a == AttrHeight
}

// IsPosition reports whether a is one of the six position attributes
// (everything that is not a size attribute).
func (a Attribute) IsPosition() bool {
	return !a.IsSize()
}

// Dual returns the dual attribute for the LTRB pairs: (right,left) and
// (bottom,top). The second return value is false for every other
// attribute, since only those two pairs are "dual" per spec.
func (a Attribute) Dual() (Attribute, bool) {
	switch a {
	case AttrLeft:
		return AttrRight, true
	case AttrRight:
		return AttrLeft, true
	case AttrTop:
		return AttrBottom, true
	case AttrBottom:
		return AttrTop, true
	default:
		return a, false
	}
}

// SameAxis reports whether a and b both lie in the horizontal family or
// both lie in the vertical family.
func SameAxis(a, b Attribute) bool {
	return a.IsHorizontal() == b.IsHorizontal()
}
