// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

// Reductions and exports over the flattened reading order.

// ToStack flattens the scroll into a single stack in forward reading
// order: reverse(before), then the focus item if present, then after.
// The after side is shared as the tail of the result.
func (s Scroll[A]) ToStack() *Stack[A] {
	out := s.after
	if item, ok := s.focus.Get(); ok {
		out = out.Push(item)
	}
	for node := s.before; node != nil; node = node.rest {
		out = out.Push(node.top)
	}
	return out
}

// ToSlice returns the items in forward reading order as a plain slice.
func (s Scroll[A]) ToSlice() []A {
	return s.ToStack().ToSlice()
}

// FoldFrom reduces all items onto an initial accumulator, processing
// the reading order in direction d. Total: an empty scroll returns
// initial unchanged.
func FoldFrom[A, Acc any](s Scroll[A], initial Acc, d Direction, combine func(Acc, A) Acc) Acc {
	// ToStack is forward reading order top-first, so the scroll
	// direction maps straight onto the stack traversal order.
	return FoldStackFrom(s.ToStack(), initial, d, combine)
}

// FoldOnto reduces in direction d, seeding the accumulator from the
// first item processed via base. Requires a focused item, matching the
// guarantee the Fold family needs that at least one element exists;
// returns [ErrFocusIsGap] otherwise.
func FoldOnto[A, Acc any](s Scroll[A], d Direction, base func(A) Acc, combine func(Acc, A) Acc) (Acc, error) {
	if s.focus.IsNone() {
		var zero Acc
		return zero, ErrFocusIsGap
	}
	flat := s.ToStack()
	if d == Backward {
		flat = flat.Reverse()
	}
	first, _ := flat.Top()
	rest, _ := flat.Pop()
	acc := base(first)
	for node := rest; node != nil; node = node.rest {
		acc = combine(acc, node.top)
	}
	return acc, nil
}

// Fold reduces in direction d, seeding the accumulator from the first
// item processed. Returns [ErrFocusIsGap] when the focus is a gap.
func Fold[A any](s Scroll[A], d Direction, combine func(A, A) A) (A, error) {
	return FoldOnto(s, d, func(item A) A { return item }, combine)
}
