package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContains(t *testing.T) {
	b := New(130)
	b.Add(0)
	b.Add(64)
	b.Add(129)
	require.True(t, b.Contains(0))
	require.True(t, b.Contains(64))
	require.True(t, b.Contains(129))
	require.False(t, b.Contains(1))
	require.False(t, b.Contains(63))
}

func TestEqualAndCopy(t *testing.T) {
	a := New(70)
	b := New(70)
	a.Add(5)
	a.Add(69)
	require.False(t, Equal(a, b))
	Copy(b, a)
	require.True(t, Equal(a, b))
}

func TestUnionIntersect(t *testing.T) {
	a := New(8)
	b := New(8)
	a.Add(1)
	a.Add(2)
	b.Add(2)
	b.Add(3)

	UnionInto(a, b)
	require.True(t, a.Contains(1))
	require.True(t, a.Contains(2))
	require.True(t, a.Contains(3))

	c := New(8)
	c.Add(2)
	c.Add(3)
	IntersectInto(a, c)
	require.False(t, a.Contains(1))
	require.True(t, a.Contains(2))
	require.True(t, a.Contains(3))
}

func TestSetAllAndComplementPreserveEquality(t *testing.T) {
	a := New(70)
	b := New(70)
	a.SetAll()
	b.SetAll()
	require.True(t, Equal(a, b), "padding bits of the final word must match across equal-capacity sets")

	a.Complement()
	b.Complement()
	require.True(t, Equal(a, b))
	require.False(t, a.Contains(0))
}

func TestEach(t *testing.T) {
	b := New(200)
	want := []int{0, 1, 63, 64, 65, 127, 128, 199}
	for _, i := range want {
		b.Add(i)
	}
	var got []int
	b.Each(func(i int) { got = append(got, i) })
	require.Equal(t, want, got)
}

func TestArenaViewsShareBackingStorageButAreIndependent(t *testing.T) {
	arena := NewArena(3, 10)
	v0 := arena.View(0)
	v1 := arena.View(1)
	v0.Add(5)
	require.True(t, v0.Contains(5))
	require.False(t, v1.Contains(5))
}
