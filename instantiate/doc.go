// Package instantiate enumerates every candidate constraint *shape*
// (template) justified by the geometric topology of the example views:
// aspect ratios, parent-relative size ratios, position offsets,
// sibling alignment, and constant sizes.
//
// Two instantiation flavors are offered, matching the
// "instantiation_method" option. MethodNumpy emits templates with a flat
// double loop over the anchor×anchor cross product, mirroring the
// teacher's matrix-flavored packages (matrix/ops) in spirit: every pair
// is visited, predicates are bitmask tests. MethodProlog instead walks
// the view tree once, visiting same-view / parent-child / sibling
// relationships directly as they're discovered — a declarative,
// pattern-matching style closer to the logic-programming original. Both
// flavors delegate the actual shape tests to the same five Rule closures
// (rule_*.go) and finish with the same deterministic sort, so they always
// agree on the final template set.
//
// Each template shape lives in its own file (rule_aspect.go,
// rule_sizeratio.go, rule_offset.go, rule_alignment.go, rule_constant.go),
// following a one-file-per-constructible-variant convention.
package instantiate
