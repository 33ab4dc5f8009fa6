package cdcl

// analyze walks the implication graph back from a conflict to the first
// unique implication point, producing an asserting learned clause (its
// negated UIP literal at index 0), the level to backtrack to, and the
// clause's LBD (the number of distinct decision levels among its
// literals, used both to grade the clause for reduction and to feed the
// restart trackers).
func (s *Solver) analyze(confl Conflict) (learnt []Lit, btLevel int32, lbd int) {
	s.seenGen++
	gen := s.seenGen
	seen := s.seenMark

	learnt = append(s.learntScratch[:0], TrueLit) // placeholder for the UIP literal
	counter := 0
	idx := len(s.trail.assigned) - 1

	if !confl.isBinary {
		s.bumpClauseActivity(confl.handle)
	}
	lits := s.conflictLits(confl, s.reasonScratch1[:0])
	var p Lit
	for {
		for _, q := range lits {
			v := q.Var()
			if seen[v] == gen {
				continue
			}
			seen[v] = gen
			lvl := s.trail.levelOf(v)
			if lvl == 0 {
				continue
			}
			s.bumpVarActivity(v)
			if lvl >= s.trail.decisionLevel() {
				counter++
			} else {
				learnt = append(learnt, q)
			}
		}
		for seen[s.trail.assigned[idx].Var()] != gen {
			idx--
		}
		p = s.trail.assigned[idx]
		idx--
		counter--
		if counter == 0 {
			break
		}
		if ante := s.trail.antecedent[p.Var()]; ante.Tag == ClauseAntecedent {
			s.bumpClauseActivity(ante.Datum)
		}
		lits = s.reasonLits(p.Var(), s.reasonScratch1[:0])[1:]
	}
	learnt[0] = p.Not()

	learnt = s.minimizeLearnt(learnt, gen)

	btLevel = 0
	for _, l := range learnt[1:] {
		if lvl := s.trail.levelOf(l.Var()); lvl > btLevel {
			btLevel = lvl
		}
	}

	lbd = s.computeLBD(learnt)
	return learnt, btLevel, lbd
}

// minimizeLearnt drops literals from learnt[1:] whose presence is
// subsumed by the reason clauses of the other literals already in the
// clause: a literal is redundant if every literal in its own reason,
// transitively, is either at decision level 0 or already part of the
// conflict's dependency closure.
func (s *Solver) minimizeLearnt(learnt []Lit, gen uint32) []Lit {
	out := learnt[:1]
	for _, l := range learnt[1:] {
		if !s.literalRedundant(l, gen) {
			out = append(out, l)
		}
	}
	return out
}

func (s *Solver) literalRedundant(l Lit, gen uint32) bool {
	v := l.Var()
	ante := s.trail.antecedent[v]
	if ante.Tag == DecisionAntecedent || ante.Tag == NoAntecedent {
		return false
	}
	stack := s.minimizeStack[:0]
	stack = append(stack, v)
	for top := 0; top < len(stack); top++ {
		cur := stack[top]
		reason := s.reasonLits(cur, s.reasonScratch2[:0])
		for _, q := range reason[1:] {
			qv := q.Var()
			if s.trail.levelOf(qv) == 0 || s.seenMark[qv] == gen {
				continue
			}
			qa := s.trail.antecedent[qv]
			if qa.Tag == DecisionAntecedent || qa.Tag == NoAntecedent {
				// The walk failed: unmark what it marked, so later
				// literals do not count these variables as covered.
				for _, w := range stack[1:] {
					s.seenMark[w] = 0
				}
				s.minimizeStack = stack[:0]
				return false
			}
			s.seenMark[qv] = gen
			stack = append(stack, qv)
		}
	}
	s.minimizeStack = stack[:0]
	return true
}

// computeLBD counts the distinct decision levels represented in lits.
func (s *Solver) computeLBD(lits []Lit) int {
	s.lbdGen++
	gen := s.lbdGen
	n := 0
	for _, l := range lits {
		lvl := s.trail.levelOf(l.Var())
		if lvl == 0 {
			continue
		}
		if s.lbdSeen[lvl] != gen {
			s.lbdSeen[lvl] = gen
			n++
		}
	}
	return n
}
