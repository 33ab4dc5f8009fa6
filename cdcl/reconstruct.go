package cdcl

// reconstructModel fills in the value of every variable removed by
// preprocessing once search has found a satisfying assignment for what
// remains: substituted variables copy their representative's value, and
// eliminated variables replay the elimination log in reverse so each
// step only ever depends on variables already decided.
func (s *Solver) reconstructModel() {
	for v := Var(1); v <= s.nVars; v++ {
		if s.substituted[v] != 0 {
			s.trail.value[v] = s.trail.valueOf(s.substitutionRoot(v))
		}
	}
	for i := len(s.elimLog) - 1; i >= 0; i-- {
		step := s.elimLog[i]
		satisfied := true
		for _, c := range step.clauses {
			lit := step.v.Lit(step.sign)
			clauseSat := false
			for _, l := range c {
				if l == lit {
					continue
				}
				if s.valueOfReconstructed(l) == True {
					clauseSat = true
					break
				}
			}
			if !clauseSat {
				satisfied = false
				break
			}
		}
		if satisfied {
			s.trail.value[step.v] = boolValue(step.sign)
		} else {
			s.trail.value[step.v] = boolValue(!step.sign)
		}
	}
}

// valueOfReconstructed reads a literal's value while reconstruction is
// still in progress. A step's clauses were copied when its variable was
// eliminated, so they only mention variables still present at that
// point: ones eliminated later, which the reverse replay has already
// filled in, or ones never eliminated.
func (s *Solver) valueOfReconstructed(l Lit) Value {
	return s.trail.valueOf(l)
}

// substitutionRoot walks v's chain of SUBST replacements to the literal
// that actually carries a trail value. Each inprocessing round only ever
// records one hop (v was tied to rep in that round's equivalence classes),
// so a variable eliminated across several rounds needs its chain followed
// to the end rather than resolved after a single lookup.
func (s *Solver) substitutionRoot(v Var) Lit {
	l := v.Lit(false)
	for {
		r := s.substituted[l.Var()]
		if r == 0 {
			return l
		}
		if l.Signed() {
			r = r.Not()
		}
		l = r
	}
}

func boolValue(true_ bool) Value {
	if true_ {
		return True
	}
	return False
}
