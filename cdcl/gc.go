package cdcl

// locked reports whether the pooled clause at h is currently serving as
// the reason for an assigned variable: such a clause must survive
// reduction and, if compacted, have that variable's antecedent rewritten
// to its new handle.
func (s *Solver) locked(h int32) bool {
	v := s.pool.lit(h, 0).Var()
	ante := s.trail.antecedent[v]
	return s.trail.value[v].Assigned() && ante.Tag == ClauseAntecedent && ante.Datum == h
}

// compactPool runs a compaction sweep starting at base (0 for a full GC
// across problem and learned clauses, pool.learnedBase for a learned-only
// GC), fixing up antecedents and watch vectors so the move is invisible
// to the rest of the solver.
func (s *Solver) compactPool(base int32) {
	byHandle := make(map[int32]int32, len(s.learned))
	for i, m := range s.learned {
		if m.handle >= base {
			byHandle[m.handle] = int32(i)
		}
	}
	s.pool.forEachFrom(base, func(h int32) {
		s.pool.setMark(h, s.locked(h))
	})

	s.watches.removeAllHandlesFrom(base)

	newLearned := s.learned[:0]
	s.pool.compact(base, func(oldH, newH int32, marked bool) {
		if marked {
			v := s.pool.lit(newH, 0).Var()
			s.trail.antecedent[v] = Antecedent{Tag: ClauseAntecedent, Datum: newH}
		}
		if i, ok := byHandle[oldH]; ok {
			newLearned = append(newLearned, learnedMeta{handle: newH, lbd: s.learned[i].lbd})
		}
	})
	s.learned = newLearned

	s.pool.forEachFrom(base, func(h int32) {
		s.watchClause(h)
	})
}

// maybeCompact triggers compactPool when the pool's padding has grown
// past the point where it is cheaper to sweep than to keep tolerating
// fragmentation.
func (s *Solver) maybeCompact() {
	if s.pool.shouldGC() {
		s.compactPool(0)
	}
}
