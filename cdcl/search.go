package cdcl

// restartMargin scales the slow LBD average in the restart test: a
// restart is considered once the fast average exceeds restartMargin times
// the slow one, K = 1 - 1/16 - 1/32 = 0.90625.
const restartMargin = 0.90625

// Solve runs the CDCL search loop until it reaches a definite Sat or
// Unsat, or until the configured conflict budget (see
// Params.SetConflictBudget) is exhausted, in which case it returns
// Unknown without disturbing the trail or clause database. A later call
// to Solve, after raising the budget, resumes the search exactly where
// it left off. Calling Solve again after it has returned Unsat returns
// Unsat immediately; Reset clears that state.
func (s *Solver) Solve() Status {
	if s.state == stateUnsat {
		return Unsat
	}
	s.searchStarted = true

	for {
		confl, ok := s.propagate()
		if !ok {
			if s.trail.decisionLevel() == 0 {
				s.state = stateUnsat
				return Unsat
			}
			s.onConflict(confl)
			if s.params.conflictBudget > 0 && s.conflicts >= s.params.conflictBudget {
				return Unknown
			}
			continue
		}

		if s.trail.decisionLevel() == 0 && s.shouldSimplify() {
			s.simplify()
		}

		lit, hasDecision := s.pickDecisionLiteral()
		if !hasDecision {
			s.state = stateSolved
			s.reconstructModel()
			return Sat
		}
		s.decisions++
		s.trail.pushLevel()
		if lvl := s.trail.decisionLevel(); lvl > s.maxDepth {
			s.maxDepth = lvl
		}
		s.enqueue(lit, Antecedent{Tag: DecisionAntecedent})
	}
}

// unassignForBacktrack reinserts a popped variable's decision candidacy.
// The trail itself already restored the variable's saved-phase undef
// value (see trail.undoToLevel), so there is nothing else to record here.
func (s *Solver) unassignForBacktrack(l Lit) {
	v := l.Var()
	if !s.eliminated[v] {
		s.heap.insert(v)
	}
}

func (s *Solver) onConflict(confl Conflict) {
	s.conflicts++
	learnt, btLevel, lbd := s.analyze(confl)
	s.ema.sample(lbd)
	s.trail.undoToLevel(btLevel, s.unassignForBacktrack)
	s.truncateStash(btLevel)
	s.addLearnedClause(learnt, lbd)
	s.decayVarActivity()
	s.decayClauseActivity()

	if s.conflicts >= s.nextReduce && len(s.learned) > 0 {
		s.reduceDatabase()
	}
	if s.ema.shouldRestart(s.params.restartInterval, restartMargin, s.trail.decisionLevel()) {
		lvl := s.partialRestartLevel()
		s.trail.undoToLevel(lvl, s.unassignForBacktrack)
		s.truncateStash(lvl)
		s.ema.noteRestart()
		s.restarts++
	}

	if s.params.verbosity > 0 {
		active := int(s.nVars)
		for v := Var(1); v <= s.nVars; v++ {
			if s.eliminated[v] || s.substituted[v] != 0 {
				active--
			}
		}
		var avgLBD, avgLen float64
		if s.nLearntEver > 0 {
			avgLBD = s.sumLBD / float64(s.nLearntEver)
			avgLen = float64(s.sumLearntLits) / float64(s.nLearntEver)
		}
		s.log("c conflicts=%d restarts=%d active=%d binaries=%d problem=%d learned=%d avgLBD=%.2f avgLen=%.2f maxDepth=%d\n",
			s.conflicts, s.restarts, active, s.nBinaries, s.pool.nProblem, len(s.learned), avgLBD, avgLen, s.maxDepth)
	}
}

// partialRestartLevel finds the shallowest decision level whose variables
// all have activity below the most active currently unassigned variable,
// and returns level-1 (the level to backtrack to, exclusive of that
// level's own decision). It returns 0 (a full restart) if there is no
// unassigned variable left to compare against, or if no level qualifies.
func (s *Solver) partialRestartLevel() int32 {
	if s.heap.empty() {
		return 0
	}
	ax := s.heap.activityOf(s.heap.heap[0])
	n := s.trail.decisionLevel()
	for lvl := int32(1); lvl <= n; lvl++ {
		if s.levelActivityAllBelow(lvl, ax) {
			return lvl - 1
		}
	}
	return 0
}

// levelActivityAllBelow reports whether every variable assigned at
// decision level lvl has activity strictly less than ax.
func (s *Solver) levelActivityAllBelow(lvl int32, ax float64) bool {
	start := s.trail.limits[lvl-1]
	end := int32(len(s.trail.assigned))
	if lvl < s.trail.decisionLevel() {
		end = s.trail.limits[lvl]
	}
	for i := start; i < end; i++ {
		if s.heap.activityOf(s.trail.assigned[i].Var()) >= ax {
			return false
		}
	}
	return true
}

// pickDecisionLiteral pops the next branching variable off the activity
// heap, with a small chance of picking a uniformly random unassigned
// variable instead, and applies its saved phase: the trail's own undef
// value already records whether the variable was last true or false, so
// picking the matching literal is implicit phase saving. It reports
// false when every variable is already assigned.
func (s *Solver) pickDecisionLiteral() (Lit, bool) {
	if s.heap.empty() {
		return 0, false
	}
	var v Var
	if s.params.randomness > 0 && s.rng.Float64() < s.params.randomness {
		v = s.heap.heap[s.rng.Intn(len(s.heap.heap))]
		s.heap.remove(v)
	} else {
		v = s.heap.popMax()
	}
	signed := s.trail.value[v] == UndefFalse
	return v.Lit(signed), true
}
