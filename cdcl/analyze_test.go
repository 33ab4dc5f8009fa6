package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAnalyzeSingleDecisionYieldsUnitLearnt sets up (¬a ∨ b) ∧ (¬a ∨ ¬b):
// deciding a true forces b true and then immediately conflicts, all
// within decision level 1, so first-UIP resolution should collapse the
// whole conflict down to the unit clause ¬a.
func TestAnalyzeSingleDecisionYieldsUnitLearnt(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	mustAddClause(t, s, a.Lit(true), b.Lit(false))
	mustAddClause(t, s, a.Lit(true), b.Lit(true))

	s.trail.pushLevel()
	require.True(t, s.enqueue(a.Lit(false), Antecedent{Tag: DecisionAntecedent}))
	confl, ok := s.propagate()
	require.False(t, ok)

	learnt, btLevel, lbd := s.analyze(confl)
	require.Equal(t, []Lit{a.Lit(true)}, learnt)
	require.Equal(t, int32(0), btLevel)
	require.Equal(t, 1, lbd)
}

func TestComputeLBDCountsDistinctLevels(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()

	s.trail.pushLevel()
	s.trail.assign(a.Lit(false), Antecedent{Tag: DecisionAntecedent})
	s.trail.pushLevel()
	s.trail.assign(b.Lit(false), Antecedent{Tag: DecisionAntecedent})
	s.trail.assign(c.Lit(false), Antecedent{Tag: BinaryAntecedent, Datum: int32(b.Lit(false))})

	lbd := s.computeLBD([]Lit{a.Lit(false), b.Lit(false), c.Lit(false)})
	require.Equal(t, 2, lbd, "b and c share a decision level")
}

func TestMinimizeLearntDropsRedundantLiteral(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()

	// a is a decision; b is implied by a via a binary clause. Marking a
	// as seen stands for ¬a already being in the learnt clause; c only
	// fills the asserting slot at index 0, which minimization never
	// inspects. The literal for b is redundant, since b's whole reason
	// (a) is already covered.
	s.trail.pushLevel()
	s.trail.assign(a.Lit(false), Antecedent{Tag: DecisionAntecedent})
	s.trail.assign(b.Lit(false), Antecedent{Tag: BinaryAntecedent, Datum: int32(a.Lit(true))})

	gen := s.seenGen + 1
	s.seenGen = gen
	s.seenMark[a] = gen

	learnt := []Lit{c.Lit(true), b.Lit(true)}
	out := s.minimizeLearnt(learnt, gen)
	require.Equal(t, []Lit{c.Lit(true)}, out)
}
