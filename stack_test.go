// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/scroll"
)

func TestStackOf(t *testing.T) {
	require.True(t, scroll.StackOf[int]().IsEmpty())
	require.Equal(t, []int{1, 2, 3}, scroll.StackOf(1, 2, 3).ToSlice())
}

func TestStackPush(t *testing.T) {
	s := scroll.StackOf(2, 3)
	pushed := s.Push(1)
	require.Equal(t, []int{1, 2, 3}, pushed.ToSlice())
	// the receiver is untouched
	require.Equal(t, []int{2, 3}, s.ToSlice())
}

func TestStackPushAll(t *testing.T) {
	s := scroll.StackOf(4).PushAll([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3, 4}, s.ToSlice())

	require.Equal(t, []int{5}, scroll.StackOf(5).PushAll(nil).ToSlice())
}

func TestStackTopPop(t *testing.T) {
	s := scroll.StackOf(1, 2)

	top, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, 1, top)

	rest, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, []int{2}, rest.ToSlice())

	var empty *scroll.Stack[int]
	_, ok = empty.Top()
	require.False(t, ok)
	_, ok = empty.Pop()
	require.False(t, ok)
}

func TestStackLen(t *testing.T) {
	require.Equal(t, 0, scroll.StackOf[int]().Len())
	require.Equal(t, 3, scroll.StackOf(1, 2, 3).Len())
}

func TestStackReverse(t *testing.T) {
	require.Equal(t, []int{3, 2, 1}, scroll.StackOf(1, 2, 3).Reverse().ToSlice())
	require.True(t, scroll.StackOf[int]().Reverse().IsEmpty())
}

func TestStackString(t *testing.T) {
	require.Equal(t, "[1 2 3]", scroll.StackOf(1, 2, 3).String())
	require.Equal(t, "[]", scroll.StackOf[int]().String())
}

func TestFoldStackFrom(t *testing.T) {
	s := scroll.StackOf("a", "b", "c")

	topFirst := scroll.FoldStackFrom(s, "", scroll.Forward, func(acc, item string) string {
		return acc + item
	})
	require.Equal(t, "abc", topFirst)

	bottomFirst := scroll.FoldStackFrom(s, "", scroll.Backward, func(acc, item string) string {
		return acc + item
	})
	require.Equal(t, "cba", bottomFirst)

	require.Equal(t, 7, scroll.FoldStackFrom(scroll.StackOf[int](), 7, scroll.Forward, func(acc, item int) int {
		return acc + item
	}))
}

func TestMapStack(t *testing.T) {
	doubled := scroll.MapStack(scroll.StackOf(1, 2, 3), func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, doubled.ToSlice())
	require.True(t, scroll.MapStack(scroll.StackOf[int](), func(v int) int { return v }).IsEmpty())
}

func TestStackSharing(t *testing.T) {
	// Push shares the receiver as the tail: popping the pushed stack
	// yields the original stack value, not a copy.
	base := scroll.StackOf(2, 3)
	pushed := base.Push(1)
	tail, ok := pushed.Pop()
	require.True(t, ok)
	require.Same(t, base, tail)
}
