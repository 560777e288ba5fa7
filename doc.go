// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scroll provides persistent, purely functional sequence
// structures built around a focus cursor.
//
// The core type [Scroll] is a sequence with a movable focus slot.
// Unlike a flat list with an integer cursor, a Scroll keeps the
// elements on either side of the focus as two independent persistent
// stacks, so single-step cursor moves, insertion at the cursor and
// reversing the view direction are all cheap structural operations.
// The focus slot itself is an [Option]: it either holds an item or is
// a gap — an empty but still addressable cursor position, such as the
// position one past the last element.
//
// # Reading Order
//
// A Scroll's three fields are the before side (nearest-first), the
// focus slot, and the after side (nearest-first). Flattened reading
// order is reverse(before), then the focus item if present, then
// after. [Scroll.ToStack] and [Scroll.ToSlice] export that order;
// [FromSlice] and [FromStack] rebuild a scroll focused on the first
// element.
//
// # Navigation
//
// Moves are named by [Direction] — [Backward] toward the before side,
// [Forward] toward the after side:
//
//   - [Scroll.To]: jump to a [Location] ([AtFocus] or [AtSide])
//   - [Scroll.ToGap]: step into the gap adjacent to the focused item
//   - [Scroll.ToEnd], [Scroll.ToEndGap]: jump to the farthest item, or
//     one gap past it
//   - [Scroll.ToWhere]: scan for the first item matching a predicate
//   - [Scroll.FocusDrag]: drag the focus slot past its neighbor,
//     swapping their order
//   - [Scroll.Mirror]: swap the two sides — an O(1) view reversal
//
// # Failure Semantics
//
// Navigation that can run off an end returns Option[Scroll]; None
// means no valid destination existed. There are no panics and no
// exceptions — the idiomatic pattern is to chain a move with a
// fallback:
//
//	s = s.To(scroll.AtSide(scroll.Forward, 0)).GetOr(s)
//
// The only error value is [ErrFocusIsGap], returned by the operations
// that need a focused item ([Scroll.FocusItem], [Scroll.ToGap],
// [Fold], [FoldOnto]) when the focus is a gap.
//
// # Persistence
//
// All three types — [Option], [Stack], [Scroll] — are immutable
// values. Every operation builds a new value and shares untouched
// sub-structure with the old one: pushing onto a side shares the whole
// previous side as a tail, [Scroll.ToStack] shares the after side, and
// [Scroll.Mirror] merely swaps two references. Old versions remain
// valid indefinitely, and values may be shared across goroutines
// without locking because nothing is ever written in place.
//
// # Example
//
//	s := scroll.Only(5).SideAlter(scroll.Forward, func(side *scroll.Stack[int]) *scroll.Stack[int] {
//		return side.PushAll([]int{1, 2, 3})
//	})
//	s.ToSlice() // [5 1 2 3]
//
//	end := s.ToEnd(scroll.Forward)
//	item, _ := end.FocusItem() // 3
package scroll
