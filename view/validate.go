package view

import "fmt"

// Validate checks that every pair of examples in a single synthesis
// call has isomorphic view trees under a default,
// order-sensitive comparison that includes names. It returns
// ErrNoExamples if examples is empty, or ErrNonIsomorphic (wrapped with
// the offending example index and view name) on the first mismatch found.
func Validate(examples []*Example) error {
	if len(examples) == 0 {
		return ErrNoExamples
	}
	reference := examples[0]
	for i := 1; i < len(examples); i++ {
		if err := sameShape(reference.Root, examples[i].Root); err != nil {
			return fmt.Errorf("view: example %d: %w: %v", i, ErrNonIsomorphic, err)
		}
	}
	return nil
}

// sameShape compares two view trees for structural isomorphism: same
// name, same number of children, each child pair recursively isomorphic
// in the same (order-sensitive) position. Rectangles are intentionally
// not compared — examples are expected to differ in geometry, that
// variation is exactly what synthesis learns from.
func sameShape(a, b *View) error {
	if a.Name != b.Name {
		return fmt.Errorf("name mismatch %q vs %q", a.Name, b.Name)
	}
	if len(a.Children) != len(b.Children) {
		return fmt.Errorf("view %q: child count %d vs %d", a.Name, len(a.Children), len(b.Children))
	}
	for i := range a.Children {
		if err := sameShape(a.Children[i], b.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
