package constraint

// ConstraintKind tags the shape category of a Constraint. Each kind fixes
// which of (a,b) are free parameters versus which are pinned to a
// canonical value.
type ConstraintKind int

const (
	// KindSizeConstant: size = b. a is pinned to 0 (a is meaningless).
	KindSizeConstant ConstraintKind = iota

	// KindSizeAspectRatio: w = a*h (same view, one horizontal one
	// vertical size attribute). b is pinned to 0.
	KindSizeAspectRatio

	// KindSizeRatio: child.size = a*parent.size (same axis family). b is
	// pinned to 0.
	KindSizeRatio

	// KindPosOffset: position = position + b (parent-child same
	// attribute, or sibling dual-attribute pair). a is pinned to 1.
	KindPosOffset

	// KindPosAlignment: sibling position = sibling position + b, same
	// attribute, b left free to absorb small measurement tolerance. a is
	// pinned to 1.
	KindPosAlignment
)

// kindNames is the lowercase wire-form name of each kind, as it appears
// in the output JSON's "kind" field.
var kindNames = [...]string{
	KindSizeConstant:    "size_constant",
	KindSizeAspectRatio: "size_aspect_ratio",
	KindSizeRatio:       "size_ratio",
	KindPosOffset:       "pos_ltrb_offset",
	KindPosAlignment:    "pos_alignment",
}

// String returns the lowercase wire-form name of k.
func (k ConstraintKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind parses the lowercase wire-form name back into a ConstraintKind.
func ParseKind(s string) (ConstraintKind, error) {
	for i, name := range kindNames {
		if name == s {
			return ConstraintKind(i), nil
		}
	}
	return 0, ErrUnknownKind
}

// IsConstantForm reports whether k fixes a=0 and leaves b free (a pure
// "size equals constant" shape).
func (k ConstraintKind) IsConstantForm() bool {
	return k == KindSizeConstant
}

// IsMulOnlyForm reports whether k fixes b=0 and leaves a free.
func (k ConstraintKind) IsMulOnlyForm() bool {
	return k == KindSizeAspectRatio || k == KindSizeRatio
}

// IsAddOnlyForm reports whether k fixes a=1 and leaves b free.
func (k ConstraintKind) IsAddOnlyForm() bool {
	return k == KindPosOffset || k == KindPosAlignment
}

// IsGeneralForm reports whether k leaves both a and b free. No template
// emitted by the instantiator currently needs this, but the bit exists so
// a future general-linear-fit kind can be added without reshaping the
// taxonomy.
func (k ConstraintKind) IsGeneralForm() bool {
	return !k.IsConstantForm() && !k.IsMulOnlyForm() && !k.IsAddOnlyForm()
}

// HasX reports whether constraints of this kind carry an X anchor
// (Linear form) as opposed to being purely Constant.
func (k ConstraintKind) HasX() bool {
	return k != KindSizeConstant
}
