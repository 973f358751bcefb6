package constraint

import "errors"

var (
	// ErrAxisMismatch indicates a Linear constraint's X and Y attributes
	// lie in different axis families (horizontal vs vertical). This is an
	// internal geometry error: a bug in the instantiator, never a symptom
	// of bad input.
	ErrAxisMismatch = errors.New("constraint: x and y attributes are on different axes")

	// ErrZeroSlope indicates a Linear constraint was given a=0, which
	// degenerates it to a Constant form; templates must not construct
	// Linear constraints this way.
	ErrZeroSlope = errors.New("constraint: linear constraint requires a != 0")

	// ErrUnboundTemplate indicates Subst or Evaluate was called against a
	// constraint whose parameters are not yet concretized.
	ErrUnboundTemplate = errors.New("constraint: constraint is still a template")

	// ErrMalformedDict indicates FromDict received a map missing a
	// required key or holding a value of the wrong shape.
	ErrMalformedDict = errors.New("constraint: malformed dict form")

	// ErrUnknownOp indicates a string did not match "=", "≤", or "≥".
	ErrUnknownOp = errors.New("constraint: unknown comparison operator")

	// ErrUnknownPriority indicates a string did not match a known Priority.
	ErrUnknownPriority = errors.New("constraint: unknown priority")

	// ErrUnknownKind indicates a string did not match a known ConstraintKind.
	ErrUnknownKind = errors.New("constraint: unknown constraint kind")

	// ErrBadRational indicates a rational-string field ("3/4", "5") failed
	// to parse.
	ErrBadRational = errors.New("constraint: malformed rational string")
)
