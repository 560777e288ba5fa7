// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

import "fmt"

// Scroll is a persistent sequence with a movable focus.
//
// Elements live on two independent [Stack] sides flanking a focus slot:
// before holds the elements behind the cursor nearest-first, after holds
// the elements ahead of it nearest-first, and the focus is an [Option]
// that is either an item or a gap. Reading order is reverse(before),
// then the focus item if present, then after.
//
// Scroll is a value type. Every operation returns a new Scroll built
// from the old one's fields, sharing untouched side structure; nothing
// is ever mutated in place, so values may be shared freely across
// goroutines without locking.
type Scroll[A any] struct {
	before *Stack[A]
	focus  Option[A]
	after  *Stack[A]
}

// Empty returns the scroll with no elements and a gap focus.
func Empty[A any]() Scroll[A] {
	return Scroll[A]{}
}

// Only returns a scroll focused on a single item with both sides empty.
func Only[A any](item A) Scroll[A] {
	return Scroll[A]{focus: Some(item)}
}

// FromStack returns a scroll focused on the stack's top element with
// the remaining elements on the forward side. An empty stack gives
// [Empty].
func FromStack[A any](s *Stack[A]) Scroll[A] {
	top, ok := s.Top()
	if !ok {
		return Empty[A]()
	}
	rest, _ := s.Pop()
	return Scroll[A]{focus: Some(top), after: rest}
}

// FromSlice returns a scroll focused on the first element with the
// remaining elements on the forward side. An empty slice gives [Empty].
func FromSlice[A any](items []A) Scroll[A] {
	return FromStack(StackOf(items...))
}

// Focus returns the focus slot: Some of the focused item, or None when
// the focus is a gap.
func (s Scroll[A]) Focus() Option[A] {
	return s.focus
}

// FocusItem returns the focused item, or [ErrFocusIsGap] when the focus
// is a gap.
func (s Scroll[A]) FocusItem() (A, error) {
	item, ok := s.focus.Get()
	if !ok {
		var zero A
		return zero, ErrFocusIsGap
	}
	return item, nil
}

// Side returns the elements on the d side, nearest-first.
func (s Scroll[A]) Side(d Direction) *Stack[A] {
	if d == Backward {
		return s.before
	}
	return s.after
}

// withSide returns s with the d side replaced.
func (s Scroll[A]) withSide(d Direction, side *Stack[A]) Scroll[A] {
	if d == Backward {
		s.before = side
	} else {
		s.after = side
	}
	return s
}

// Len returns the total number of items, counting the focus when it
// holds one. O(n) — both sides are traversed, there is no cached count.
func (s Scroll[A]) Len() int {
	n := s.before.Len() + s.after.Len()
	if s.focus.IsSome() {
		n++
	}
	return n
}

// IsEmpty reports whether the scroll holds no items at all.
func (s Scroll[A]) IsEmpty() bool {
	return s.focus.IsNone() && s.before == nil && s.after == nil
}

// Mirror swaps the two sides, reversing the reading direction. O(1):
// the sides are independent persistent stacks, so swapping the two
// references is enough. Mirror is an involution.
func (s Scroll[A]) Mirror() Scroll[A] {
	return Scroll[A]{before: s.after, focus: s.focus, after: s.before}
}

// String implements fmt.Stringer.
func (s Scroll[A]) String() string {
	return fmt.Sprintf("scroll(before=%v focus=%v after=%v)", s.before, s.focus, s.after)
}
