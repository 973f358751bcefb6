package learn

import "errors"

var (
	// ErrUnknownMethod indicates an unrecognized learning_method value.
	ErrUnknownMethod = errors.New("learn: unknown learning method")

	// ErrNoConsistentFit documents the non-fatal "no candidate survived
	// fitting" outcome for a template. It is never returned from Learn —
	// this case surfaces as an empty inner candidate slice, not an error —
	// but is kept as a named sentinel so callers and
	// tests can refer to the condition by name.
	ErrNoConsistentFit = errors.New("learn: no rational fit is consistent with all examples")

	// ErrDivisionByZero indicates a mul-only template was observed with a
	// zero x value, which cannot imply any ratio. Caught internally by
	// Learn and turned into a falsified, empty-candidate outcome for that
	// template rather than propagated.
	ErrDivisionByZero = errors.New("learn: division by zero in mul-only template")

	// ErrInsufficientSamples indicates a general-form template was given
	// fewer than two examples with distinct x values, so its 2x2 linear
	// system is underdetermined.
	ErrInsufficientSamples = errors.New("learn: general-form template requires two examples with distinct x values")
)
