package cdcl

// maxPreprocessRounds bounds how many times the pure-literal, equivalence,
// subsumption and elimination passes are repeated; each pass only removes
// or shrinks clauses, so the process is monotone and terminates on its
// own, but a round cap keeps a pathological instance from spending
// unbounded time before search even starts.
const maxPreprocessRounds = 8

// Preprocess runs the inprocessing pipeline once, before any decision has
// been made: pure-literal fixing, equivalence substitution over the
// binary implication graph, subsumption and self-subsuming resolution,
// and bounded variable elimination, repeated to a fixpoint. It is opt-in
// and may be called again later (after Reset, before the next Solve) to
// re-simplify whatever problem clauses remain. It is an error to call it
// once any clause has been learned.
func (s *Solver) Preprocess() error {
	if s.trail.decisionLevel() != 0 {
		return &InvalidStateError{Op: "Preprocess", State: "mid-search"}
	}
	if s.searchStarted {
		return &InvalidStateError{Op: "Preprocess", State: "already searched"}
	}
	if s.state == stateUnsat {
		return nil
	}

	if _, ok := s.propagate(); !ok {
		s.state = stateUnsat
		return nil
	}

	sn := s.takeSnapshot()
	for _, l := range s.trail.assigned {
		if l == TrueLit {
			continue
		}
		if _, conflict := sn.removeSatisfiedBy(l); conflict {
			s.state = stateUnsat
			return nil
		}
	}

	for round := 0; round < maxPreprocessRounds; round++ {
		before := len(sn.bins) + len(sn.longs)

		if s.eliminatePureLiterals(sn) {
			s.state = stateUnsat
			return nil
		}
		if s.substituteEquivalences(sn) {
			s.state = stateUnsat
			return nil
		}
		if s.subsumeAndStrengthen(sn) {
			s.state = stateUnsat
			return nil
		}
		if s.eliminateVariables(sn) {
			s.state = stateUnsat
			return nil
		}

		if len(sn.bins)+len(sn.longs) == before {
			break
		}
	}

	s.rebuildFromSnapshot(sn)
	s.unitsAtLastSimplify = len(s.trail.assigned)
	s.binariesAtLastSimplify = s.nBinaries
	return nil
}

// shouldSimplify reports whether enough new level-0 facts have
// accumulated since the last simplification pass to justify another one.
func (s *Solver) shouldSimplify() bool {
	newUnits := len(s.trail.assigned) - s.unitsAtLastSimplify
	newBins := s.nBinaries - s.binariesAtLastSimplify
	return newUnits >= s.params.simplifyInterval || newBins >= s.params.simplifyBinDelta
}

// sccSimplifyLive checks the current binary implication graph for a
// strongly connected component containing a literal and its negation
// (unsatisfiable) or tied to the reserved true/false literal (forces every
// other member of the component). Unlike substituteEquivalences it never
// rewrites a long clause or removes a variable: a live clause handle may
// be the antecedent of an assigned trail literal, and reallocating it
// mid-search would corrupt that reference. It only ever adds trail
// assignments, which is always safe at decision level 0.
func (s *Solver) sccSimplifyLive() bool {
	sn := &snapshot{bins: make(map[binPair]struct{})}
	for l := Lit(0); int(l) < len(s.watches.lists); l++ {
		for _, w := range s.watches.lists[l] {
			if w.isBinary {
				sn.bins[canonBin(l, w.other)] = struct{}{}
			}
		}
	}
	if len(sn.bins) == 0 {
		return false
	}

	for _, comp := range s.findImplicationSCCs(sn) {
		set := make(map[Lit]bool, len(comp))
		for _, l := range comp {
			set[l] = true
		}
		for _, l := range comp {
			if set[l.Not()] {
				return true
			}
		}
		hasTrue, hasFalse := set[TrueLit], set[FalseLit]
		if !hasTrue && !hasFalse {
			continue
		}
		for _, l := range comp {
			if l == TrueLit || l == FalseLit {
				continue
			}
			forced := l
			if hasFalse {
				forced = l.Not()
			}
			switch s.trail.valueOf(forced) {
			case True:
				continue
			case False:
				return true
			}
			if !s.enqueue(forced, Antecedent{Tag: UnitAntecedent}) {
				return true
			}
		}
	}
	return false
}

// simplify is the cheap in-search counterpart to Preprocess: called only
// at decision level 0, it runs a live equivalence check over the binary
// implication graph, deletes clauses already satisfied by a permanent
// assignment, and shrinks clauses that contain a permanently falsified
// literal, without touching the full elimination machinery that requires
// rebuilding the whole database.
func (s *Solver) simplify() {
	if s.sccSimplifyLive() {
		s.state = stateUnsat
		return
	}
	if _, ok := s.propagate(); !ok {
		s.state = stateUnsat
		return
	}

	var toDelete []int32
	scratch := make([]Lit, 0, 8)

	s.pool.forEach(func(h int32) {
		n := s.pool.length(h)
		lits := scratch[:0]
		satisfied := false
		for i := 0; i < n; i++ {
			l := s.pool.lit(h, i)
			if s.trail.levelOf(l.Var()) != 0 || !s.trail.value[l.Var()].Assigned() {
				lits = append(lits, l)
				continue
			}
			if s.trail.valueOf(l) == True {
				satisfied = true
				break
			}
		}
		if satisfied {
			if !s.locked(h) {
				toDelete = append(toDelete, h)
			}
			return
		}
		if len(lits) == n {
			return
		}
		if len(lits) >= 3 {
			s.unwatchClause(h)
			for i, l := range lits {
				s.pool.setLit(h, i, l)
			}
			s.pool.shrink(h, len(lits))
			s.watchClause(h)
			return
		}
		if s.locked(h) {
			return
		}
		toDelete = append(toDelete, h)
		switch len(lits) {
		case 0:
			s.state = stateUnsat
		case 1:
			s.enqueue(lits[0], Antecedent{Tag: UnitAntecedent})
		case 2:
			s.watchBinary(lits[0], lits[1])
		}
	})

	if len(toDelete) > 0 {
		dead := make(map[int32]bool, len(toDelete))
		for _, h := range toDelete {
			s.unwatchClause(h)
			s.pool.delete(h)
			dead[h] = true
		}
		kept := s.learned[:0]
		for _, m := range s.learned {
			if !dead[m.handle] {
				kept = append(kept, m)
			}
		}
		s.learned = kept
	}

	s.unitsAtLastSimplify = len(s.trail.assigned)
	s.binariesAtLastSimplify = s.nBinaries
	s.maybeCompact()
}
