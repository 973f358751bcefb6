package pipeline

import "errors"

var (
	// ErrUnknownPruningMethod indicates an option string matched neither
	// "baseline" nor "hierarchical".
	ErrUnknownPruningMethod = errors.New("pipeline: unknown pruning method")
)
