// Package decompose drives the pruner (package smt) top-down through a
// view's tree: solve the root subtree, propagate the
// pruner's resolved child anchor values down as the next subtree's
// conformance bounds, repeat until every subtree has been solved.
package decompose
