// Package view defines the immutable view hierarchy that the synthesizer
// observes: a tree of named, axis-aligned rectangles, plus the anchor
// vocabulary (the eight scalar quantities derived from a rectangle) used by
// every later stage of the pipeline.
//
// A View is built once from example input and never mutated afterward.
// Parent back-references are non-owning (a plain pointer into the same
// arena the builder constructed, wired only once, after every child is
// built) so the tree can be traversed in either direction without risking a
// cycle: the builder wires parents after children are built and never
// touches them again.
//
// Views across multiple examples of the same layout must be structurally
// isomorphic — same tree shape, same names at each position — because the
// rest of the pipeline assumes a single shared AnchorID space. Validate
// checks that invariant once, up front, so every downstream package can
// assume it holds.
//
// Coordinates are exact rationals (*big.Rat): the learning and SMT stages
// both require exact arithmetic, so view standardizes on math/big at the
// boundary rather than pushing float64 drift through the whole pipeline.
package view
