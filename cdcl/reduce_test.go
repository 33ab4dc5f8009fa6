package cdcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpClauseActivityBumpsLearnedClause(t *testing.T) {
	s := NewSolver(0, nil)
	h := s.pool.allocate(lits(2, 4, 6), true)
	s.clauseActivityInc = 1

	s.bumpClauseActivity(h)
	require.InDelta(t, 1.0, float64(s.pool.activity(h)), 1e-6)
}

func TestBumpClauseActivityIgnoresProblemClauseHandle(t *testing.T) {
	s := NewSolver(0, nil)
	h := s.pool.allocate(lits(2, 4, 6), false)
	s.pool.setSignature(h, 0xCAFEBABE)

	s.bumpClauseActivity(h)

	require.Equal(t, uint32(0xCAFEBABE), s.pool.signature(h), "a problem clause's signature word must survive a stray activity bump")
}
