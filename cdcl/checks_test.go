package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckInvariantsPassesOnFreshSolver(t *testing.T) {
	s := NewSolver(0, nil)
	s.NewVar()
	require.NotPanics(t, func() { s.checkInvariants() })
}

func TestCheckInvariantsPassesAfterSolvingSat(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	b := s.NewVar()
	mustAddClause(t, s, a.Lit(false), b.Lit(false))
	require.Equal(t, Sat, s.Solve())
	require.NotPanics(t, func() { s.checkInvariants() })
}

func TestCheckValuesInRangeCatchesCorruption(t *testing.T) {
	s := NewSolver(0, nil)
	a := s.NewVar()
	s.trail.value[a] = 5 // not one of the four legal Value states
	require.Panics(t, func() { s.checkValuesInRange() })
}
