// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

import "strconv"

// Direction selects one of the two sides of a [Scroll]: the elements
// before the focus (Backward) or after it (Forward).
type Direction int

const (
	// Backward points toward the elements before the focus.
	Backward Direction = iota
	// Forward points toward the elements after the focus.
	Forward
)

// Opposite returns the other direction. It is an involution:
// d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Location identifies a position inside a [Scroll]: either the focus
// slot itself, or the index-th item on one side (index 0 is the item
// nearest the focus).
//
// Location is a two-case sum encoded as a tagged struct: exactly one of
// the focus case and the side case holds.
type Location struct {
	atFocus bool
	side    Direction
	index   int
}

// AtFocus returns the location of the focus slot.
func AtFocus() Location {
	return Location{atFocus: true}
}

// AtSide returns the location of the item at the given zero-based index
// on the d side, counted from the focus outward.
func AtSide(d Direction, index int) Location {
	return Location{side: d, index: index}
}

// IsFocus reports whether the location is the focus slot.
func (l Location) IsFocus() bool {
	return l.atFocus
}

// SideIndex returns the side and index of a side location.
// ok is false when the location is the focus slot.
func (l Location) SideIndex() (d Direction, index int, ok bool) {
	if l.atFocus {
		return 0, 0, false
	}
	return l.side, l.index, true
}

// String implements fmt.Stringer.
func (l Location) String() string {
	if l.atFocus {
		return "focus"
	}
	return l.side.String() + " " + strconv.Itoa(l.index)
}
