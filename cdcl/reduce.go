package cdcl

import "sort"

// reduceDatabase discards a fraction of the least active learned clauses,
// leaving alone anything locked (currently a reason) or precious (LBD at
// or below the keep threshold). It compacts the pool afterwards if
// deletions left enough padding to be worth sweeping.
func (s *Solver) reduceDatabase() {
	kept := s.learned[:0]
	var candidates []learnedMeta
	for _, m := range s.learned {
		if int(m.lbd) <= s.params.keepLBD || s.locked(m.handle) {
			kept = append(kept, m)
			continue
		}
		candidates = append(candidates, m)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return s.pool.activity(candidates[i].handle) < s.pool.activity(candidates[j].handle)
	})

	nRemove := len(candidates) * s.params.reduceFraction / 32
	for i := 0; i < nRemove; i++ {
		h := candidates[i].handle
		s.unwatchClause(h)
		s.pool.delete(h)
	}
	kept = append(kept, candidates[nRemove:]...)
	s.learned = kept

	s.reduces++
	s.nextReduce = s.conflicts + int64(s.params.reduceInterval) + s.reduces*int64(s.params.reduceDelta)

	s.maybeCompact()
}

// bumpVarActivity increases v's activity by the current increment,
// rescaling every activity down if the increment threatens to overflow.
func (s *Solver) bumpVarActivity(v Var) {
	s.heap.bump(v, s.varActivityInc)
	if s.heap.activityOf(v) > 1e100 {
		s.heap.rescale(1e100)
		s.varActivityInc /= 1e100
	}
}

func (s *Solver) decayVarActivity() {
	s.varActivityInc /= s.params.varDecay
}

// bumpClauseActivity increases a learned clause's activity, rescaling
// every learned clause's activity down if it threatens to overflow the
// float32 the pool stores it in. h may name a problem clause (any
// ClauseAntecedent handle reaches here, and problem clauses are watched
// the same way learned ones are), in which case there is no activity to
// bump: that header word holds a preprocessing signature instead, and
// writing an activity into it would silently corrupt that field.
func (s *Solver) bumpClauseActivity(h int32) {
	if !s.pool.isLearned(h) {
		return
	}
	act := s.pool.activity(h) + float32(s.clauseActivityInc)
	s.pool.setActivity(h, act)
	if act > 1e30 {
		for _, m := range s.learned {
			s.pool.setActivity(m.handle, s.pool.activity(m.handle)*1e-30)
		}
		s.clauseActivityInc *= 1e-30
	}
}

func (s *Solver) decayClauseActivity() {
	s.clauseActivityInc /= float64(s.params.clauseDecay)
}
