package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lits(xs ...int32) []Lit {
	out := make([]Lit, len(xs))
	for i, x := range xs {
		out[i] = Lit(x)
	}
	return out
}

func TestClausePoolAllocateAndRead(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6), false)
	require.Equal(t, 3, p.length(h))
	require.Equal(t, Lit(2), p.lit(h, 0))
	require.Equal(t, Lit(4), p.lit(h, 1))
	require.Equal(t, Lit(6), p.lit(h, 2))
	require.False(t, p.isLearned(h))
}

func TestClausePoolLearnedBoundary(t *testing.T) {
	p := newClausePool(64)
	h1 := p.allocate(lits(2, 4, 6), false)
	h2 := p.allocate(lits(8, 10, 12), true)
	require.False(t, p.isLearned(h1))
	require.True(t, p.isLearned(h2))
	require.Panics(t, func() { p.allocate(lits(1, 3, 5), false) })
}

func TestClausePoolSwapAndMark(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6), false)
	p.swapLits(h, 0, 2)
	require.Equal(t, Lit(6), p.lit(h, 0))
	require.Equal(t, Lit(2), p.lit(h, 2))

	require.False(t, p.marked(h))
	p.setMark(h, true)
	require.True(t, p.marked(h))
	require.Equal(t, 3, p.length(h), "mark bit must not corrupt the length field")
	p.setMark(h, false)
	require.False(t, p.marked(h))
}

func TestClausePoolShrinkKeepsPrefix(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6, 8, 10), false)
	p.shrink(h, 3)
	require.Equal(t, 3, p.length(h))
	require.Equal(t, Lit(2), p.lit(h, 0))
	require.Equal(t, Lit(6), p.lit(h, 2))
}

func TestClausePoolActivityRoundTrip(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6), true)
	p.setActivity(h, 3.5)
	require.InDelta(t, 3.5, float64(p.activity(h)), 1e-6)
}

func TestClausePoolSignatureRoundTrip(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6), false)
	p.setSignature(h, 0xABCD1234)
	require.Equal(t, uint32(0xABCD1234), p.signature(h))
}

func TestClausePoolForEachSkipsPadding(t *testing.T) {
	p := newClausePool(64)
	h1 := p.allocate(lits(2, 4, 6, 8, 10), false)
	h2 := p.allocate(lits(12, 14, 16), false)
	p.shrink(h1, 2)
	p.delete(h2)
	h3 := p.allocate(lits(18, 20, 22), false)

	var seen []int32
	p.forEach(func(h int32) { seen = append(seen, h) })
	require.Equal(t, []int32{h1, h3}, seen, "h1 stays live at its shrunk length; its freed tail and h2 are padding")
}

func TestClausePoolCompactRelocatesAndReportsMarks(t *testing.T) {
	p := newClausePool(64)
	h1 := p.allocate(lits(2, 4, 6), false)
	h2 := p.allocate(lits(8, 10, 12), false)
	h3 := p.allocate(lits(14, 16, 18), false)
	p.setMark(h2, true)
	p.delete(h1)

	type move struct {
		old, new int32
		marked   bool
	}
	var moves []move
	p.compact(0, func(oldH, newH int32, marked bool) {
		moves = append(moves, move{oldH, newH, marked})
	})

	require.Len(t, moves, 2)
	require.Equal(t, h2, moves[0].old)
	require.True(t, moves[0].marked)
	require.Equal(t, h3, moves[1].old)
	require.False(t, moves[1].marked)

	require.Equal(t, Lit(8), p.lit(moves[0].new, 0))
	require.Equal(t, Lit(14), p.lit(moves[1].new, 0))
	require.False(t, p.marked(moves[0].new), "compact must clear the mark bit on the move")
	require.Zero(t, p.paddingWords)
}

func TestClausePoolClampCapacityToShrinksOversizedArena(t *testing.T) {
	p := newClausePool(64)
	p.allocate(lits(2, 4, 6), false) // len(p.words) == 8 (padded to alignment)

	// Simulate what compact() leaves behind after deleting a large batch
	// of learned clauses: the live tail is small again, but the backing
	// array's capacity is still sized for everything that was ever
	// appended, since slicing down length never shrinks capacity.
	grown := append(p.words, make([]int32, 2000)...)
	p.words = grown[:8]
	require.Greater(t, cap(p.words), 8)

	p.clampCapacityTo(8)
	require.LessOrEqual(t, cap(p.words), 8)
	require.Equal(t, Lit(2), p.lit(0, 0), "live content survives the reallocation")
}

func TestClausePoolClampCapacityToLeavesUndersizedArenaAlone(t *testing.T) {
	p := newClausePool(8)
	h := p.allocate(lits(2, 4, 6), false)
	before := cap(p.words)

	p.clampCapacityTo(1000)
	require.Equal(t, before, cap(p.words))
	require.Equal(t, Lit(2), p.lit(h, 0))
}

func TestClausePoolFirstClauseLearnedAtHandleZero(t *testing.T) {
	p := newClausePool(64)
	h := p.allocate(lits(2, 4, 6), true)
	require.Zero(t, h)
	require.True(t, p.isLearned(h), "handle 0 must not be mistaken for the no-learned-clauses-yet sentinel")
}

func TestClausePoolCompactPreservesLearnedBoundary(t *testing.T) {
	p := newClausePool(64)
	problem := p.allocate(lits(2, 4, 6), false)
	learned1 := p.allocate(lits(8, 10, 12), true)
	learned2 := p.allocate(lits(14, 16, 18), true)
	p.delete(learned1)
	_ = problem

	var newLearnedHandle int32 = -1
	p.compact(0, func(oldH, newH int32, marked bool) {
		if oldH == learned2 {
			newLearnedHandle = newH
		}
	})
	require.True(t, p.isLearned(newLearnedHandle))
	require.False(t, p.isLearned(0))
}
