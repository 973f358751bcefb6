package decompose

import "errors"

var (
	// ErrChildBoundsUnresolved indicates a subtree's pruner result left one
	// of a child's left/top/width/height anchors unresolved, so no
	// conformance bounds could be formed to push the child onto the
	// worklist.
	ErrChildBoundsUnresolved = errors.New("decompose: child anchor bounds unresolved after pruning parent subtree")
)
