// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

// Bulk alteration and transformation.
//
// SideAlter and FocusAlter are the two primitives through which callers
// insert, delete and batch-edit; FocusSidesMap is the general map all
// element transformations reduce to.

// SideAlter replaces the d side with f applied to it. f may shrink,
// grow, reorder or clear the side; the focus and the opposite side are
// untouched.
func (s Scroll[A]) SideAlter(d Direction, f func(*Stack[A]) *Stack[A]) Scroll[A] {
	return s.withSide(d, f(s.Side(d)))
}

// FocusAlter replaces the focus slot with f applied to it. Plugging a
// gap, clearing the focus and rewriting the focused item are all this
// one operation.
func (s Scroll[A]) FocusAlter(f func(Option[A]) Option[A]) Scroll[A] {
	s.focus = f(s.focus)
	return s
}

// FocusSidesMap independently transforms the focus slot and the two
// sides. fSide is told which side it is transforming, so behavior may
// differ per side.
func FocusSidesMap[A, B any](
	s Scroll[A],
	fFocus func(Option[A]) Option[B],
	fSide func(Direction, *Stack[A]) *Stack[B],
) Scroll[B] {
	return Scroll[B]{
		before: fSide(Backward, s.before),
		focus:  fFocus(s.focus),
		after:  fSide(Forward, s.after),
	}
}

// Map applies f to every item. The [Location] tells f where the item
// sits: the focus slot, or a zero-based nearest-first index on one
// side.
func Map[A, B any](s Scroll[A], f func(Location, A) B) Scroll[B] {
	return FocusSidesMap(s,
		func(focus Option[A]) Option[B] {
			return MapOption(focus, func(item A) B {
				return f(AtFocus(), item)
			})
		},
		func(d Direction, side *Stack[A]) *Stack[B] {
			index := 0
			return MapStack(side, func(item A) B {
				mapped := f(AtSide(d, index), item)
				index++
				return mapped
			})
		},
	)
}
