package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchesAddAndList(t *testing.T) {
	w := newWatches(8)
	w.addBinary(Lit(2), Lit(4))
	w.addClause(Lit(2), 100, Lit(6))

	list := w.list(Lit(2))
	require.Len(t, list, 2)
	require.True(t, list[0].isBinary)
	require.Equal(t, Lit(4), list[0].other)
	require.False(t, list[1].isBinary)
	require.Equal(t, int32(100), list[1].handle)
	require.Equal(t, Lit(6), list[1].blocker)
}

func TestWatchesRemoveBinary(t *testing.T) {
	w := newWatches(8)
	w.addBinary(Lit(2), Lit(4))
	w.addBinary(Lit(2), Lit(6))
	w.removeBinary(Lit(2), Lit(4))

	list := w.list(Lit(2))
	require.Len(t, list, 1)
	require.Equal(t, Lit(6), list[0].other)
}

func TestWatchesRemoveClause(t *testing.T) {
	w := newWatches(8)
	w.addClause(Lit(2), 10, Lit(6))
	w.addClause(Lit(2), 20, Lit(8))
	w.removeClause(Lit(2), 10)

	list := w.list(Lit(2))
	require.Len(t, list, 1)
	require.Equal(t, int32(20), list[0].handle)
}

func TestWatchesRemoveAllHandlesFrom(t *testing.T) {
	w := newWatches(8)
	w.addBinary(Lit(2), Lit(4))
	w.addClause(Lit(2), 10, Lit(6))
	w.addClause(Lit(2), 40, Lit(8))
	w.removeAllHandlesFrom(30)

	list := w.list(Lit(2))
	require.Len(t, list, 2, "binary watch and the handle below base survive")
	for _, e := range list {
		require.False(t, !e.isBinary && e.handle >= 30)
	}
}

func TestWatchesGrow(t *testing.T) {
	w := newWatches(2)
	w.grow(20)
	require.GreaterOrEqual(t, len(w.lists), 2*(20+1))
	w.addBinary(Lit(30), Lit(2))
	require.Len(t, w.list(Lit(30)), 1)
}
