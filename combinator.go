package evostrat

// Union appends every element of b onto a, preserving a's order and
// appending b's order (spec.md §4.3). It reserves capacity for b's size
// first, then consumes b via IntoIter. O(|b|).
func Union[S Set[T], T any](manager SetManager[S], a, b S) (S, error) {
	var zero S
	if err := manager.Reserve(a, b.Size()); err != nil {
		return zero, &SetManagerError{Op: "reserve", Cause: err}
	}
	for x, err := range b.IntoIter() {
		if err != nil {
			return zero, &SetError{Op: "iterate", Cause: err}
		}
		if err := a.Add(x); err != nil {
			return zero, &SetError{Op: "add", Cause: err}
		}
	}
	return a, nil
}

// Merge performs a classical two-pointer merge of a and b, both already
// sorted under less(x, y) meaning "x before y" (spec.md §4.3). It is stable
// between a and b: ties (neither less(x,y) nor less(y,x)) favor a. Allocates
// a fresh Set of capacity |a|+|b| via manager.
//
// Both inputs are drained into memory first (IntoIter consumes them anyway)
// so the merge itself is a plain, allocation-free two-pointer walk.
func Merge[S Set[T], T any](manager SetManager[S], a, b S, less func(x, y T) bool) (S, error) {
	var zero S

	itemsA, err := drain[T](a)
	if err != nil {
		return zero, err
	}
	itemsB, err := drain[T](b)
	if err != nil {
		return zero, err
	}

	target, err := manager.MakeSet(len(itemsA) + len(itemsB))
	if err != nil {
		return zero, &SetManagerError{Op: "make_set", Cause: err}
	}

	i, j := 0, 0
	for i < len(itemsA) || j < len(itemsB) {
		var value T
		switch {
		case j >= len(itemsB):
			value = itemsA[i]
			i++
		case i >= len(itemsA):
			value = itemsB[j]
			j++
		case less(itemsB[j], itemsA[i]):
			// b strictly precedes a: take b. Any other relation
			// (including ties) favors a, keeping the merge stable.
			value = itemsB[j]
			j++
		default:
			value = itemsA[i]
			i++
		}
		if err := target.Add(value); err != nil {
			return zero, &SetError{Op: "add", Cause: err}
		}
	}

	return target, nil
}

// drain collects every element of s, consuming it, surfacing the first
// iteration error (if any) wrapped as a *SetError.
func drain[T any](s Set[T]) ([]T, error) {
	items := make([]T, 0, s.Size())
	for x, err := range s.IntoIter() {
		if err != nil {
			return nil, &SetError{Op: "iterate", Cause: err}
		}
		items = append(items, x)
	}
	return items, nil
}
