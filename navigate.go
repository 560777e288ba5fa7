// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

// Cursor movement over a Scroll.
//
// Every move that can run off an end returns Option[Scroll[A]]: None
// means no valid destination existed and the caller keeps whatever
// fallback it likes, typically the pre-move value via GetOr.

// toItemNearest is the one-step cursor move: the nearest item on the d
// side becomes the focus, and the old focus — if it held an item — lands
// nearest on the opposite side. Moving off a gap simply drops the gap.
// Fails when the d side is empty.
func (s Scroll[A]) toItemNearest(d Direction) (Scroll[A], bool) {
	side := s.Side(d)
	item, ok := side.Top()
	if !ok {
		return Scroll[A]{}, false
	}
	tail, _ := side.Pop()
	next := s.withSide(d, tail)
	if old, filled := s.focus.Get(); filled {
		opp := d.Opposite()
		next = next.withSide(opp, next.Side(opp).Push(old))
	}
	next.focus = Some(item)
	return next, true
}

// To moves the focus to the given location.
//
// AtFocus succeeds only when the focus currently holds an item.
// AtSide(d, n) walks n+1 single steps in d, failing as soon as a step
// has nowhere to go; AtSide(d, 0) is the nearest item in d.
func (s Scroll[A]) To(loc Location) Option[Scroll[A]] {
	if loc.IsFocus() {
		if s.focus.IsNone() {
			return None[Scroll[A]]()
		}
		return Some(s)
	}
	d, index, _ := loc.SideIndex()
	if index < 0 {
		return None[Scroll[A]]()
	}
	cur := s
	for step := 0; step <= index; step++ {
		next, ok := cur.toItemNearest(d)
		if !ok {
			return None[Scroll[A]]()
		}
		cur = next
	}
	return Some(cur)
}

// ToGap steps the cursor into the gap adjacent to the focus in
// direction d. The focused item stays where it is, which puts it
// nearest on the opposite side; To(AtSide(d.Opposite(), 0)) moves back
// onto it. Returns [ErrFocusIsGap] when the focus is already a gap.
func (s Scroll[A]) ToGap(d Direction) (Scroll[A], error) {
	item, ok := s.focus.Get()
	if !ok {
		return s, ErrFocusIsGap
	}
	opp := d.Opposite()
	out := s.withSide(opp, s.Side(opp).Push(item))
	out.focus = None[A]()
	return out, nil
}

// ToEnd moves the focus onto the farthest item in direction d, with all
// other items on the opposite side. A scroll with no items collapses to
// [Empty]. Idempotent per direction.
func (s Scroll[A]) ToEnd(d Direction) Scroll[A] {
	if d == Backward {
		return s.Mirror().ToEnd(Forward).Mirror()
	}
	items := s.ToSlice()
	if len(items) == 0 {
		return Empty[A]()
	}
	var before *Stack[A]
	for _, item := range items[:len(items)-1] {
		before = before.Push(item)
	}
	return Scroll[A]{before: before, focus: Some(items[len(items)-1])}
}

// ToEndGap moves the focus to the gap one step past the farthest item
// in direction d. Always valid: with no items at all the result is the
// same empty scroll ToEnd degenerates to.
func (s Scroll[A]) ToEndGap(d Direction) Scroll[A] {
	end := s.ToEnd(d)
	out, err := end.ToGap(d)
	if err != nil {
		return end
	}
	return out
}

// ToWhere scans in direction d for an item satisfying the predicate,
// starting with the current focus. The index passed to the predicate
// counts steps taken from the starting position, so the current focus —
// when it holds an item — is tested at index 0. Gaps are stepped
// through, not tested. Returns the scroll focused on the first match,
// or None when the scan runs off the end.
func (s Scroll[A]) ToWhere(d Direction, pred func(index int, item A) bool) Option[Scroll[A]] {
	cur := s
	for index := 0; ; index++ {
		if item, ok := cur.focus.Get(); ok && pred(index, item) {
			return Some(cur)
		}
		next, ok := cur.toItemNearest(d)
		if !ok {
			return None[Scroll[A]]()
		}
		cur = next
	}
}

// FocusDrag drags the focus slot past its nearest neighbor in
// direction d: the neighbor pops off the d side and lands nearest on
// the opposite side while the cursor keeps its contents, item or gap.
// Repeated drags carry the same focus further and further. Item count
// and multiset of elements are preserved; only the swapped pair changes
// order. Fails when the d side has no neighbor to drag past.
func (s Scroll[A]) FocusDrag(d Direction) Option[Scroll[A]] {
	side := s.Side(d)
	item, ok := side.Top()
	if !ok {
		return None[Scroll[A]]()
	}
	tail, _ := side.Pop()
	opp := d.Opposite()
	out := s.withSide(d, tail)
	out = out.withSide(opp, out.Side(opp).Push(item))
	return Some(out)
}
