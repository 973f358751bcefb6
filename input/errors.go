package input

import "errors"

// Sentinel errors for the input package. Callers should branch with
// errors.Is, never by comparing strings.
var (
	// ErrUnknownFormat indicates an input_format value other than
	// "default" or "bench".
	ErrUnknownFormat = errors.New("input: unknown format")

	// ErrMissingRect indicates a default-format view with no rect, or a
	// bench-format view missing any of left/top/width/height.
	ErrMissingRect = errors.New("input: view has neither rect nor left/top/width/height")

	// ErrMalformedRect indicates a default-format rect that is not
	// exactly four numbers.
	ErrMalformedRect = errors.New("input: rect must have exactly four numbers")

	// ErrNoExamples indicates the top-level examples/train array was
	// empty or absent.
	ErrNoExamples = errors.New("input: no examples in input")

	// ErrInvalidNumber indicates a JSON number could not be parsed as an
	// exact rational.
	ErrInvalidNumber = errors.New("input: invalid number literal")
)
