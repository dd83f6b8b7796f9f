package domfront

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tacfg/internal/dom"
	"tacfg/internal/ir"
	"tacfg/internal/testir"
)

func members(t *testing.T, f *Frontiers, n int) []int {
	t.Helper()
	var got []int
	f.Of(ir.BlockId(n)).Each(func(i int) { got = append(got, i) })
	return got
}

func TestStraightLineHasEmptyFrontiers(t *testing.T) {
	cfg := testir.Straight(4)
	tree := dom.BuildCHK(cfg)
	df := Compute(cfg, tree)
	for i := 0; i < 4; i++ {
		require.Empty(t, members(t, df, i), "block %d", i)
	}
}

func TestDiamondFrontiers(t *testing.T) {
	cfg := testir.Diamond()
	tree := dom.BuildCHK(cfg)
	df := Compute(cfg, tree)
	require.Equal(t, []int{3}, members(t, df, 1))
	require.Equal(t, []int{3}, members(t, df, 2))
	require.Empty(t, members(t, df, 0))
	require.Empty(t, members(t, df, 3))
}

func TestSimpleLoopFrontiers(t *testing.T) {
	cfg := testir.SimpleLoop()
	tree := dom.BuildCHK(cfg)
	df := Compute(cfg, tree)
	require.Equal(t, []int{1}, members(t, df, 1))
	require.Equal(t, []int{1}, members(t, df, 2))
}
