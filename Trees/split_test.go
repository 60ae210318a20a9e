package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreap_SplitMerge(t *testing.T) {
	tree := New[int64, uint32](0, 13)
	a := make([]int64, 3000)
	for i := range a {
		a[i] = int64(rg.Intn(400)) - 200
		tree.Insert(a[i])
	}
	slices.Sort(a)
	sum, size := tree.Sum(), tree.Size()
	for _, pivot := range []int64{-1000, -200, -1, 0, 1, 57, 199, 200, 1000} {
		lo, hi := tree.Split(pivot)
		require.Zero(t, tree.Size())
		cut, _ := slices.BinarySearch(a, pivot)
		require.Equal(t, a[:cut], lo.Values(), "pivot %d", pivot)
		require.Equal(t, a[cut:], hi.Values(), "pivot %d", pivot)
		require.Equal(t, size, lo.Size()+hi.Size())
		require.Equal(t, sum, lo.Sum()+hi.Sum())

		require.NoError(t, tree.Merge(lo, hi))
		mustCheck(t, tree)
		require.Equal(t, sum, tree.Sum())
		require.Equal(t, size, tree.Size())
		require.Equal(t, a, values(tree))
	}
}

func TestTreap_SplitEmpty(t *testing.T) {
	tree := New[int64, uint32](0, 14)
	lo, hi := tree.Split(5)
	assert.Zero(t, lo.Size())
	assert.Zero(t, hi.Sum())
	assert.Empty(t, lo.Values())
	require.NoError(t, tree.Merge(lo, hi))
	mustCheck(t, tree)
}

func TestTreap_MergeRejects(t *testing.T) {
	tree := New[int64, uint32](0, 15)
	for v := range int64(20) {
		tree.Insert(v)
	}
	lo, hi := tree.Split(10)

	other := New[int64, uint32](0, 15)
	olo, _ := other.Split(0)
	assert.ErrorIs(t, tree.Merge(olo, hi), ErrForeignPiece)
	assert.ErrorIs(t, tree.Merge(hi, lo), ErrOverlap)
	assert.Zero(t, tree.Size())

	require.NoError(t, tree.Merge(lo, hi))
	assert.ErrorIs(t, tree.Merge(lo, hi), ErrNotDetached)
	mustCheck(t, tree)
	assert.Equal(t, uint32(20), tree.Size())
}

func TestTreap_SplitKeepsEqualRight(t *testing.T) {
	tree := New[int64, uint32](0, 16)
	for _, v := range []int64{1, 3, 3, 3, 5} {
		tree.Insert(v)
	}
	lo, hi := tree.Split(3)
	assert.Equal(t, []int64{1}, lo.Values())
	assert.Equal(t, []int64{3, 3, 3, 5}, hi.Values())
	mx, _ := lo.Maximum()
	mn, _ := hi.Minimum()
	assert.Equal(t, int64(1), mx)
	assert.Equal(t, int64(3), mn)
	require.NoError(t, tree.Merge(lo, hi))
	mustCheck(t, tree)
}

func TestTreap_DetachedHandles(t *testing.T) {
	tree := New[int64, uint32](0, 17)
	hs := make([]uint32, 10)
	for v := range int64(10) {
		hs[v] = tree.Insert(v)
	}
	lo, hi := tree.Split(5)
	mustCheck(t, tree)
	assert.ErrorIs(t, tree.RemoveAt(hi.root), ErrStaleHandle)
	for _, h := range hs {
		assert.ErrorIs(t, tree.RemoveAt(h), ErrStaleHandle)
	}
	mustCheck(t, tree)
	assert.Zero(t, tree.Size())
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, lo.Values())
	assert.Equal(t, []int64{5, 6, 7, 8, 9}, hi.Values())

	require.NoError(t, tree.Merge(lo, hi))
	mustCheck(t, tree)
	require.NoError(t, tree.RemoveAt(hs[7]))
	mustCheck(t, tree)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 8, 9}, values(tree))
	assert.Equal(t, int64(38), tree.Sum())
}

func TestTreap_MergeOnlyLastSplit(t *testing.T) {
	tree := New[int64, uint32](0, 18)
	for v := range int64(10) {
		tree.Insert(v)
	}
	lo, hi := tree.Split(5)
	require.ErrorIs(t, tree.Merge(lo, lo), ErrForeignPiece)
	require.ErrorIs(t, tree.Merge(hi, hi), ErrForeignPiece)
	mustCheck(t, tree)
	require.NoError(t, tree.Merge(lo, hi))
	mustCheck(t, tree)
	assert.Equal(t, uint32(10), tree.Size())
}
