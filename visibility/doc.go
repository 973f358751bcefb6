// Package visibility determines which anchor pairs are geometrically
// "visible" to one another: whether a straight orthogonal scan line can
// be cast from one anchor to the other without crossing any view's
// interior. Only visible pairs participate in sibling position
// constraints, which prunes the template space from O(n²)
// to near-linear in practice.
//
// The algorithm is a sweep-line over two augmented-BST interval trees
// (horizontal edges keyed by [left,right], vertical edges keyed by
// [top,bottom]), using hand-rolled, stdlib-only data structures: no
// interval-tree or segment-tree library is a good fit for this small,
// fixed shape, so visibility's trees are plain pointer-node BSTs
// (interval_tree.go) augmented with each subtree's largest endpoint.
//
// Visibility is computed once per call over the union of all examples
// each example's geometry is swept independently
// and the resulting pairs are unioned onto the shared AnchorID space.
package visibility
