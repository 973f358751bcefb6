package constraint

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/view"
)

// Constraint is either a Constant form (`Y op B`) or a Linear form
// (`Y op A*X + B`), tagged by Kind. Fields A and B are nil while the
// constraint is still a template (parameters not yet bound by the
// learner); IsTemplate reports exactly this condition.
type Constraint struct {
	Kind        ConstraintKind
	Y           view.AnchorID
	X           *view.AnchorID // nil for Constant-form kinds
	A           *big.Rat       // nil if unbound; canonical default 1
	B           *big.Rat       // nil if unbound; canonical default 0
	Op          Op
	Priority    Priority
	SampleCount int
	IsFalsified bool
}

// NewTemplate builds an unbound template of the given kind relating Y
// (and X, for linear kinds) with comparison op. It returns
// ErrAxisMismatch if the kind is linear, requires axis purity, and X/Y
// are on different axes.
//
// KindSizeAspectRatio is the one deliberate exception: it relates a
// horizontal and a vertical size attribute on the same view (width vs
// height), so it is explicitly exempt from the axis-purity check that
// governs every other linear kind. The SMT driver accounts for this by
// solving the horizontal axis first and substituting its resolved values
// before solving the vertical axis (see smt/partition.go).
func NewTemplate(kind ConstraintKind, y view.AnchorID, x *view.AnchorID, op Op) (Constraint, error) {
	if kind.HasX() {
		if x == nil {
			return Constraint{}, ErrMalformedDict
		}
		if kind != KindSizeAspectRatio && !view.SameAxis(x.Attr, y.Attr) {
			return Constraint{}, ErrAxisMismatch
		}
	} else {
		x = nil
	}
	return Constraint{Kind: kind, Y: y, X: x, Op: op}, nil
}

// IsTemplate reports whether c's numeric parameters are still unbound.
func (c Constraint) IsTemplate() bool {
	return c.A == nil || c.B == nil
}

// Subst returns a new, concretized Constraint with A and B bound, leaving
// the receiver untouched: subst is a pure function.
func (c Constraint) Subst(a, b *big.Rat, sampleCount int) Constraint {
	out := c
	out.A = new(big.Rat).Set(a)
	out.B = new(big.Rat).Set(b)
	out.SampleCount = sampleCount
	return out
}

// WithPriority returns a copy of c with Priority set to p.
func (c Constraint) WithPriority(p Priority) Constraint {
	out := c
	out.Priority = p
	return out
}

// Evaluate returns the rational value of the constraint's right-hand side
// (b, or a*x+b) given a lookup function for anchor values. It returns
// ErrUnboundTemplate if c is still a template.
func (c Constraint) Evaluate(value func(view.AnchorID) (*big.Rat, error)) (*big.Rat, error) {
	if c.IsTemplate() {
		return nil, ErrUnboundTemplate
	}
	if !c.Kind.HasX() {
		return new(big.Rat).Set(c.B), nil
	}
	xVal, err := value(*c.X)
	if err != nil {
		return nil, err
	}
	rhs := new(big.Rat).Mul(c.A, xVal)
	rhs.Add(rhs, c.B)
	return rhs, nil
}

// Satisfied reports whether the constraint holds for yVal against its
// evaluated right-hand side, using the comparison operator Op.
func Satisfied(op Op, yVal, rhs *big.Rat) bool {
	cmp := yVal.Cmp(rhs)
	switch op {
	case OpEq:
		return cmp == 0
	case OpLe:
		return cmp <= 0
	case OpGe:
		return cmp >= 0
	default:
		return false
	}
}

// Key returns a value usable to deduplicate templates: the tuple of
// (Kind, Y, X, Op). Two templates with the same Key are considered the
// same candidate shape.
type Key struct {
	Kind ConstraintKind
	Y    view.AnchorID
	X    view.AnchorID
	HasX bool
	Op   Op
}

// KeyOf computes the dedup key for c.
func KeyOf(c Constraint) Key {
	k := Key{Kind: c.Kind, Y: c.Y, Op: c.Op}
	if c.X != nil {
		k.X = *c.X
		k.HasX = true
	}
	return k
}
