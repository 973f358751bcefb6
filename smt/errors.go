package smt

import "errors"

var (
	// ErrInfeasible indicates no subset of candidates (not even the empty
	// subset, if axioms themselves conflict with bounds) satisfies the
	// layout axioms at every sampled conformance.
	ErrInfeasible = errors.New("smt: no candidate subset is feasible at every sampled conformance")

	// ErrAmbiguityLimitExceeded indicates the CEGIS unambiguity refinement
	// loop exhausted its blocked-combination budget without finding a
	// selector assignment that uniquely determines every target anchor.
	ErrAmbiguityLimitExceeded = errors.New("smt: exceeded refinement limit without a unique placement")

	// ErrSolverUnknown indicates the branch-and-bound search was aborted
	// by a context deadline before it could establish feasibility either
	// way.
	ErrSolverUnknown = errors.New("smt: solver deadline exceeded before a result was established")

	// ErrAxisAmbiguous indicates a candidate constraint touched both
	// horizontal and vertical attributes without being the one kind
	// (KindSizeAspectRatio) permitted to do so — a hard partitioning
	// error.
	ErrAxisAmbiguous = errors.New("smt: candidate constraint is ambiguous between horizontal and vertical partitions")
)
