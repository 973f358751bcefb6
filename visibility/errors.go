package visibility

import "errors"

var (
	// ErrNoExamples indicates Compute was called with zero examples.
	ErrNoExamples = errors.New("visibility: no examples provided")

	// ErrDuplicateSweepEntry is an internal assertion failure: two
	// consecutive sweep-line entries resolved to the same anchor. This can
	// only indicate a bug in geometry construction, never a symptom of bad
	// input.
	ErrDuplicateSweepEntry = errors.New("visibility: consecutive sweep entries share an anchor (internal)")
)
