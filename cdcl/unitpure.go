package cdcl

// propagateUnits drains a worklist of forced literals against sn,
// applying each one and collecting any further literals it forces. It
// reports conflict=true if the clause set collapses to false.
func (s *Solver) propagateUnits(sn *snapshot, worklist []Lit) (conflict bool) {
	for len(worklist) > 0 {
		l := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if s.trail.valueOf(l) == True {
			continue
		}
		if s.trail.valueOf(l) == False {
			return true
		}
		s.enqueue(l, Antecedent{Tag: UnitAntecedent})

		forced, confl := sn.removeSatisfiedBy(l)
		if confl {
			return true
		}
		worklist = append(worklist, forced...)
	}
	return false
}

// eliminatePureLiterals repeatedly fixes variables that occur with only
// one polarity across the surviving clause set, since such a variable can
// always be set to satisfy every clause that mentions it.
func (s *Solver) eliminatePureLiterals(sn *snapshot) (conflict bool) {
	for {
		occ := sn.occurrences()
		var worklist []Lit
		for v := Var(1); v <= s.nVars; v++ {
			if s.trail.value[v].Assigned() || s.eliminated[v] || s.substituted[v] != 0 {
				continue
			}
			pos, neg := occ[v.Lit(false)], occ[v.Lit(true)]
			switch {
			case pos > 0 && neg == 0:
				worklist = append(worklist, v.Lit(false))
			case neg > 0 && pos == 0:
				worklist = append(worklist, v.Lit(true))
			}
		}
		if len(worklist) == 0 {
			return false
		}
		for _, l := range worklist {
			if s.trail.valueOf(l) == True {
				continue
			}
			s.enqueue(l, Antecedent{Tag: PureAntecedent})
			forced, confl := sn.removeSatisfiedBy(l)
			if confl {
				return true
			}
			if s.propagateUnits(sn, forced) {
				return true
			}
		}
	}
}
