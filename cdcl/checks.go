package cdcl

import "fmt"

// checkInvariants runs a battery of consistency checks over the current
// solver state and panics on the first violation found. It is not called
// on any hot path; it exists for tests and for debugging a suspected
// solver bug, where an O(n) sweep is an acceptable price for catching a
// corrupted trail or watch list right where it happened.
func (s *Solver) checkInvariants() {
	s.checkValuesInRange()
	s.checkTrailLevels()
	s.checkWatchedLiteralsUnassignedOrTrue()
}

// checkValuesInRange verifies every variable holds one of the
// four legal Value states. valueOf's own definition already guarantees
// the l/l.Not() XOR symmetry for whatever is stored here; what actually
// needs checking is that nothing wrote a value outside {UndefFalse,
// UndefTrue, False, True} in the first place.
func (s *Solver) checkValuesInRange() {
	for v := Var(0); v <= s.nVars; v++ {
		if s.trail.value[v] > True {
			panic(fmt.Sprintf("cdcl: illegal value %d for var %d", s.trail.value[v], v))
		}
	}
}

func (s *Solver) checkTrailLevels() {
	level := int32(0)
	seenLevels := 0
	for _, l := range s.trail.assigned {
		v := l.Var()
		lvl := s.trail.levelOf(v)
		if lvl < level {
			panic(fmt.Sprintf("cdcl: trail out of level order at var %d", v))
		}
		if lvl > level {
			level = lvl
			seenLevels++
		}
	}
	if seenLevels != len(s.trail.limits) && seenLevels != len(s.trail.limits)+1 {
		panic("cdcl: trail level count disagrees with limits")
	}
}

// checkWatchedLiteralsUnassignedOrTrue verifies that for every long
// clause, at least one of its first two literals is not currently false,
// the invariant unit propagation depends on to guarantee it never misses
// a forced literal.
func (s *Solver) checkWatchedLiteralsUnassignedOrTrue() {
	s.pool.forEach(func(h int32) {
		if s.pool.length(h) < 2 {
			return
		}
		l0, l1 := s.pool.lit(h, 0), s.pool.lit(h, 1)
		if s.trail.valueOf(l0) == False && s.trail.valueOf(l1) == False {
			panic(fmt.Sprintf("cdcl: both watched literals false in clause %d", h))
		}
	})
}
