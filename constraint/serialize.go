package constraint

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/layoutsynth/view"
)

// Dict is the JSON-friendly dict form of a concrete Constraint, matching
// the "constraints" array entries of the output schema:
// {y, op, [x], [a], b, strength, kind}. Fields tagged omitempty-by-value
// (X, A) are left as empty strings when the constraint has no such part.
type Dict struct {
	Y        string `json:"y"`
	Op       string `json:"op"`
	X        string `json:"x,omitempty"`
	A        string `json:"a,omitempty"`
	B        string `json:"b"`
	Strength string `json:"strength"`
	Kind     string `json:"kind"`
}

// ratString renders r in "3/4" form, or "5" when it is an integer — the
// two accepted rational-string forms.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadRational, s)
	}
	return r, nil
}

// ToDict converts a concrete (non-template) Constraint to its dict form.
// It returns ErrUnboundTemplate if c is still a template.
func (c Constraint) ToDict() (Dict, error) {
	if c.IsTemplate() {
		return Dict{}, ErrUnboundTemplate
	}
	d := Dict{
		Y:        c.Y.String(),
		Op:       c.Op.String(),
		B:        ratString(c.B),
		Strength: c.Priority.String(),
		Kind:     c.Kind.String(),
	}
	if c.X != nil {
		d.X = c.X.String()
	}
	if c.Kind.IsMulOnlyForm() || c.Kind.IsGeneralForm() {
		d.A = ratString(c.A)
	}
	return d, nil
}

func parseAnchorID(s string) (view.AnchorID, error) {
	// "view.attr" — split on the final '.': attribute names never
	// contain '.', so a view name that does still parses.
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			attr, err := parseAttribute(s[i+1:])
			if err != nil {
				return view.AnchorID{}, err
			}
			return view.AnchorID{View: s[:i], Attr: attr}, nil
		}
	}
	return view.AnchorID{}, fmt.Errorf("%w: %q", ErrMalformedDict, s)
}

func parseAttribute(s string) (view.Attribute, error) {
	for _, a := range view.Attributes {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown attribute %q", ErrMalformedDict, s)
}

// FromDict parses a Dict back into a concrete Constraint. ToDict and
// FromDict round-trip every field the Dict carries (kind, op, strength,
// y, x, a, b); SampleCount and IsFalsified are not part of the Dict, so
// FromDict returns them as zero values.
func FromDict(d Dict) (Constraint, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return Constraint{}, err
	}
	op, err := ParseOp(d.Op)
	if err != nil {
		return Constraint{}, err
	}
	priority, err := ParsePriority(d.Strength)
	if err != nil {
		return Constraint{}, err
	}
	y, err := parseAnchorID(d.Y)
	if err != nil {
		return Constraint{}, err
	}
	b, err := parseRat(d.B)
	if err != nil {
		return Constraint{}, err
	}

	c := Constraint{Kind: kind, Y: y, Op: op, Priority: priority, B: b}

	if kind.HasX() {
		if d.X == "" {
			return Constraint{}, fmt.Errorf("%w: kind %s requires x", ErrMalformedDict, kind)
		}
		x, err := parseAnchorID(d.X)
		if err != nil {
			return Constraint{}, err
		}
		c.X = &x
	}

	switch {
	case kind.IsMulOnlyForm() || kind.IsGeneralForm():
		if d.A == "" {
			return Constraint{}, fmt.Errorf("%w: kind %s requires a", ErrMalformedDict, kind)
		}
		a, err := parseRat(d.A)
		if err != nil {
			return Constraint{}, err
		}
		c.A = a
	case kind.IsAddOnlyForm():
		c.A = big.NewRat(1, 1)
	default: // constant form
		c.A = big.NewRat(0, 1)
	}

	return c, nil
}
