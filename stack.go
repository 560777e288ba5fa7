// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

import (
	"fmt"
	"strings"
)

// Stack is a persistent singly-linked sequence accessed at the top.
// A nil *Stack is the empty stack; every operation treats nil receivers
// as empty and returns new values, sharing tail structure with the
// input wherever elements are untouched.
//
// Inside a [Scroll], each side is a Stack ordered nearest-first: the top
// is the element closest to the focus.
type Stack[A any] struct {
	top  A
	rest *Stack[A]
}

// StackOf builds a stack from the given items, first item on top.
// With no items it returns the empty (nil) stack.
func StackOf[A any](items ...A) *Stack[A] {
	return (*Stack[A])(nil).PushAll(items)
}

// Push returns a new stack with item on top. The receiver is shared as
// the tail of the result.
func (s *Stack[A]) Push(item A) *Stack[A] {
	return &Stack[A]{top: item, rest: s}
}

// PushAll returns a new stack with all items prepended, preserving
// slice order: items[0] ends up on top.
func (s *Stack[A]) PushAll(items []A) *Stack[A] {
	out := s
	for i := len(items) - 1; i >= 0; i-- {
		out = out.Push(items[i])
	}
	return out
}

// Top returns the top element and true, or zero and false when empty.
func (s *Stack[A]) Top() (A, bool) {
	if s == nil {
		var zero A
		return zero, false
	}
	return s.top, true
}

// Pop returns the stack below the top element and true, or nil and
// false when empty.
func (s *Stack[A]) Pop() (*Stack[A], bool) {
	if s == nil {
		return nil, false
	}
	return s.rest, true
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[A]) IsEmpty() bool {
	return s == nil
}

// Len returns the number of elements. O(n).
func (s *Stack[A]) Len() int {
	n := 0
	for node := s; node != nil; node = node.rest {
		n++
	}
	return n
}

// Reverse returns a stack with the elements in opposite order. O(n),
// no sharing with the receiver.
func (s *Stack[A]) Reverse() *Stack[A] {
	var out *Stack[A]
	for node := s; node != nil; node = node.rest {
		out = out.Push(node.top)
	}
	return out
}

// ToSlice returns the elements top-first as a plain slice.
func (s *Stack[A]) ToSlice() []A {
	if s == nil {
		return nil
	}
	out := make([]A, 0, s.Len())
	for node := s; node != nil; node = node.rest {
		out = append(out, node.top)
	}
	return out
}

// String implements fmt.Stringer, rendering top-first.
func (s *Stack[A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for node := s; node != nil; node = node.rest {
		if node != s {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", node.top)
	}
	b.WriteByte(']')
	return b.String()
}

// FoldStackFrom reduces the stack onto an initial accumulator.
// Forward processes top to bottom, Backward bottom to top.
func FoldStackFrom[A, Acc any](s *Stack[A], initial Acc, d Direction, combine func(Acc, A) Acc) Acc {
	if d == Backward {
		s = s.Reverse()
	}
	acc := initial
	for node := s; node != nil; node = node.rest {
		acc = combine(acc, node.top)
	}
	return acc
}

// MapStack applies a function to every element, preserving order.
func MapStack[A, B any](s *Stack[A], f func(A) B) *Stack[B] {
	var out *Stack[B]
	for node := s.Reverse(); node != nil; node = node.rest {
		out = out.Push(f(node.top))
	}
	return out
}
