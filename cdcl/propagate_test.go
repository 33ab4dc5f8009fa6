package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropagateBinaryClauseForcesLiteral(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	mustAddClause(t, s, a.Lit(true), b.Lit(false)) // a -> b

	require.True(t, s.enqueue(a.Lit(false), Antecedent{Tag: DecisionAntecedent}))
	_, ok := s.propagate()
	require.True(t, ok)
	require.Equal(t, True, s.Value(b))
}

func TestPropagateDetectsBinaryConflict(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	mustAddClause(t, s, a.Lit(true), b.Lit(false)) // a -> b
	require.True(t, s.enqueue(b.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	require.True(t, s.enqueue(a.Lit(false), Antecedent{Tag: DecisionAntecedent}))

	confl, ok := s.propagate()
	require.False(t, ok)
	require.True(t, confl.isBinary)
}

func TestPropagateLongClauseForcesLastLiteral(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()
	mustAddClause(t, s, a.Lit(false), b.Lit(false), c.Lit(false))

	require.True(t, s.enqueue(a.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	require.True(t, s.enqueue(b.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	_, ok := s.propagate()
	require.True(t, ok)
	require.Equal(t, True, s.Value(c))
}

func TestPropagateLongClauseConflict(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()
	mustAddClause(t, s, a.Lit(false), b.Lit(false), c.Lit(false))

	require.True(t, s.enqueue(a.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	require.True(t, s.enqueue(b.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	require.True(t, s.enqueue(c.Lit(true), Antecedent{Tag: DecisionAntecedent}))

	confl, ok := s.propagate()
	require.False(t, ok)
	require.False(t, confl.isBinary)
	litsFound := s.conflictLits(confl, nil)
	require.ElementsMatch(t, []Lit{a.Lit(false), b.Lit(false), c.Lit(false)}, litsFound)
}

func TestReasonLitsForClauseAntecedentPutsPropagatedLiteralFirst(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	c := s.NewVar()
	mustAddClause(t, s, a.Lit(false), b.Lit(false), c.Lit(false))

	require.True(t, s.enqueue(a.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	require.True(t, s.enqueue(b.Lit(true), Antecedent{Tag: DecisionAntecedent}))
	_, ok := s.propagate()
	require.True(t, ok)

	reason := s.reasonLits(c, nil)
	require.Equal(t, c.Lit(false), reason[0])
}
