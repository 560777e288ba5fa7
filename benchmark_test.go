// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/scroll"
)

func benchScroll(n int) scroll.Scroll[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	s := scroll.FromSlice(items)
	// park the cursor mid-sequence so both sides are populated
	return s.To(scroll.AtSide(scroll.Forward, n/2)).GetOr(s)
}

// BenchmarkMirror shows the O(1) view reversal: timings stay flat as
// the scroll grows.
func BenchmarkMirror(b *testing.B) {
	for _, n := range []int{10, 1_000, 100_000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			s := benchScroll(n)
			for b.Loop() {
				sinkScroll = s.Mirror()
			}
		})
	}
}

// BenchmarkStep measures the single-step cursor move.
func BenchmarkStep(b *testing.B) {
	s := benchScroll(1_000)
	loc := scroll.AtSide(scroll.Forward, 0)
	for b.Loop() {
		_ = s.To(loc)
	}
}

// BenchmarkToStack measures flattening with a shared after tail.
func BenchmarkToStack(b *testing.B) {
	for _, n := range []int{10, 1_000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			s := benchScroll(n)
			for b.Loop() {
				_ = s.ToStack()
			}
		})
	}
}

// BenchmarkFocusDrag measures the neighbor swap.
func BenchmarkFocusDrag(b *testing.B) {
	s := benchScroll(1_000)
	for b.Loop() {
		_ = s.FocusDrag(scroll.Backward)
	}
}

// BenchmarkToEnd measures the full flatten-and-resplit jump.
func BenchmarkToEnd(b *testing.B) {
	s := benchScroll(1_000)
	for b.Loop() {
		_ = s.ToEnd(scroll.Forward)
	}
}
