package instantiate

import "errors"

var (
	// ErrNoExamples indicates Instantiate was called with zero examples.
	ErrNoExamples = errors.New("instantiate: no examples provided")

	// ErrUnknownMethod indicates an unrecognized instantiation_method value.
	ErrUnknownMethod = errors.New("instantiate: unknown instantiation method")
)
