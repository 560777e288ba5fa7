// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

import "fmt"

// Option represents a value that is either present (Some) or absent (None).
//
// A Scroll's focus slot is an Option: None is a gap, Some is the focused
// item. Navigation results are Options too — an absent result means the
// requested move had no valid destination, and the caller picks a fallback
// with [Option.GetOr] or [Option.Or].
type Option[A any] struct {
	filled bool
	value  A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{filled: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the value is present.
func (o Option[A]) IsSome() bool {
	return o.filled
}

// IsNone reports whether the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.filled
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.filled {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOr returns the value if present, otherwise the fallback.
func (o Option[A]) GetOr(fallback A) A {
	if o.filled {
		return o.value
	}
	return fallback
}

// Or returns o if present, otherwise alt.
func (o Option[A]) Or(alt Option[A]) Option[A] {
	if o.filled {
		return o
	}
	return alt
}

// String implements fmt.Stringer.
func (o Option[A]) String() string {
	if o.filled {
		return fmt.Sprintf("some(%v)", o.value)
	}
	return "none"
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.filled {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.filled {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.filled {
		return f(o.value)
	}
	return None[B]()
}
