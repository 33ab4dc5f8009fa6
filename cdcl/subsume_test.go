package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClauseSignatureIsSubsetOfSuperset(t *testing.T) {
	a := []Lit{2, 4}
	b := []Lit{2, 4, 6}
	require.True(t, subsumes(a, b, clauseSignature(a), clauseSignature(b)))
	require.False(t, subsumes(b, a, clauseSignature(b), clauseSignature(a)))
}

func TestSubsumesRejectsNonSubset(t *testing.T) {
	a := []Lit{2, 8}
	b := []Lit{2, 4, 6}
	require.False(t, subsumes(a, b, clauseSignature(a), clauseSignature(b)))
}

func TestSelfSubsumeDropFindsResolvingLiteral(t *testing.T) {
	// a = (¬x v y), target = (x v y v z): resolving on x drops x from target.
	a := []Lit{Var(1).Lit(true), Var(2).Lit(false)}
	target := []Lit{Var(1).Lit(false), Var(2).Lit(false), Var(3).Lit(false)}
	x, ok := selfSubsumeDrop(a, target)
	require.True(t, ok)
	require.Equal(t, Var(1).Lit(false), x)
}

func TestSelfSubsumeDropNoMatch(t *testing.T) {
	a := []Lit{Var(1).Lit(true), Var(4).Lit(false)}
	target := []Lit{Var(1).Lit(false), Var(2).Lit(false), Var(3).Lit(false)}
	_, ok := selfSubsumeDrop(a, target)
	require.False(t, ok)
}

func TestRemoveLit(t *testing.T) {
	c := []Lit{2, 4, 6}
	out := removeLit(c, 4)
	require.Equal(t, []Lit{2, 6}, out)
}

func TestSubsumeAndStrengthenAppliesSelfSubsumptionAcrossOppositePolarity(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()

	// C = (¬a v b), D = (a v b v c): resolving on a drops a from D. Both
	// occurrence lists for a's variable are singletons on opposite sides
	// (occ[¬a]={C}, occ[a]={D}), so the pair is only ever found by
	// scanning the negated occurrence list, never the same-literal one.
	sn := &snapshot{longs: [][]Lit{
		{a.Lit(true), b.Lit(false)},
		{a.Lit(false), b.Lit(false), c.Lit(false)},
	}}

	conflict := s.subsumeAndStrengthen(sn)
	require.False(t, conflict)
	require.Len(t, sn.longs, 0, "the ternary clause shrank to a binary once a was dropped")
	require.Len(t, sn.bins, 2, "the original binary plus the shrunk former-ternary clause")
	require.Contains(t, sn.bins, canonBin(a.Lit(true), b.Lit(false)))
	require.Contains(t, sn.bins, canonBin(b.Lit(false), c.Lit(false)))
}

func TestSubsumeAndStrengthenRemovesSubsumedClause(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()

	sn := &snapshot{longs: [][]Lit{
		{a.Lit(false), b.Lit(false)},
		{a.Lit(false), b.Lit(false), c.Lit(false)},
	}}

	conflict := s.subsumeAndStrengthen(sn)
	require.False(t, conflict)
	require.Len(t, sn.bins, 1, "the ternary clause was subsumed away, leaving only the binary")
}
