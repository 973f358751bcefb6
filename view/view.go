package view

// View is a single node in an observed layout: a name unique within its
// example, a rectangle, and an ordered list of children. Parent is a
// non-owning back-reference wired once by Build, after all children exist,
// and never mutated again — there is no path by which a cycle can form.
type View struct {
	Name     string
	Rect     Rect
	Children []*View
	Parent   *View
}

// Spec is the plain-data shape used to build a View tree: no parent
// pointers, no validation performed yet. Builders (the input package, or
// tests) construct a tree of Spec values and hand it to Build.
type Spec struct {
	Name     string
	Rect     Rect
	Children []Spec
}

// Build validates and constructs an immutable View tree from spec,
// wiring parent back-references after children are built. It returns
// ErrEmptyName or ErrDuplicateName if any view in the tree is misnamed.
func Build(spec Spec) (*View, error) {
	seen := make(map[string]struct{})
	root, err := build(spec, nil, seen)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func build(spec Spec, parent *View, seen map[string]struct{}) (*View, error) {
	if spec.Name == "" {
		return nil, ErrEmptyName
	}
	if _, dup := seen[spec.Name]; dup {
		return nil, ErrDuplicateName
	}
	seen[spec.Name] = struct{}{}

	v := &View{Name: spec.Name, Rect: spec.Rect, Parent: parent}
	v.Children = make([]*View, 0, len(spec.Children))
	for _, childSpec := range spec.Children {
		child, err := build(childSpec, v, seen)
		if err != nil {
			return nil, err
		}
		v.Children = append(v.Children, child)
	}
	return v, nil
}

// Preorder appends v and every descendant, in pre-order (parent before
// children, children in input order), to dst and returns the extended
// slice. This is the single canonical traversal order used to build the
// anchor index (Example.Anchors) and hence every deterministic iteration
// downstream.
func Preorder(v *View, dst []*View) []*View {
	dst = append(dst, v)
	for _, child := range v.Children {
		dst = append(dst, Preorder(child, nil)...)
	}
	return dst
}

// Descendants returns every node reachable from v excluding v itself, in
// pre-order. Used by the visibility engine, which explicitly excludes the
// root from the interval trees it builds.
func Descendants(v *View) []*View {
	all := Preorder(v, nil)
	if len(all) == 0 {
		return nil
	}
	return all[1:]
}

// Find returns the descendant of v (or v itself) named name, or nil.
func Find(v *View, name string) *View {
	if v.Name == name {
		return v
	}
	for _, child := range v.Children {
		if found := Find(child, name); found != nil {
			return found
		}
	}
	return nil
}
