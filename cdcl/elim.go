package cdcl

// elimStep records enough of variable v's removed clauses to recover its
// value once every other variable has been decided: clauses holds every
// original clause that contained the literal v.Lit(sign), copied before
// elimination. If all of them are already satisfied by the rest of the
// model, v can be set so that v.Lit(sign) is false; otherwise v must be
// set so that v.Lit(sign) is true.
type elimStep struct {
	v       Var
	sign    bool
	clauses [][]Lit
}

func (sn *snapshot) clausesWith(l Lit) [][]Lit {
	var out [][]Lit
	for pair := range sn.bins {
		if pair[0] == l || pair[1] == l {
			out = append(out, []Lit{pair[0], pair[1]})
		}
	}
	for _, c := range sn.longs {
		if containsLit(c, l) {
			out = append(out, append([]Lit(nil), c...))
		}
	}
	return out
}

func (sn *snapshot) removeClausesMentioning(v Var) {
	pos, neg := v.Lit(false), v.Lit(true)
	for pair := range sn.bins {
		if pair[0].Var() == v || pair[1].Var() == v {
			delete(sn.bins, pair)
		}
	}
	kept := sn.longs[:0]
	for _, c := range sn.longs {
		if containsLit(c, pos) || containsLit(c, neg) {
			continue
		}
		kept = append(kept, c)
	}
	sn.longs = kept
}

func resolve(p []Lit, pLit Lit, n []Lit, nLit Lit) ([]Lit, bool) {
	seen := make(map[Lit]bool, len(p)+len(n))
	out := make([]Lit, 0, len(p)+len(n)-2)
	for _, l := range p {
		if l == pLit {
			continue
		}
		if seen[l.Not()] {
			return nil, false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range n {
		if l == nLit {
			continue
		}
		if seen[l.Not()] {
			return nil, false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, true
}

// eliminateVariables performs bounded variable elimination: a variable
// whose positive and negative occurrences would not blow up the clause
// count too badly is removed by replacing every clause that mentions it
// with the resolvents of its positive and negative occurrences.
func (s *Solver) eliminateVariables(sn *snapshot) (conflict bool) {
	occ := sn.occurrences()
	var cands []elimCandidate
	for v := Var(1); v <= s.nVars; v++ {
		if s.trail.value[v].Assigned() || s.eliminated[v] || s.substituted[v] != 0 {
			continue
		}
		p, n := occ[v.Lit(false)], occ[v.Lit(true)]
		if p == 0 && n == 0 {
			continue
		}
		cands = append(cands, elimCandidate{v: v, cost: p * n})
	}
	orderElimCandidates(cands)

	for _, cand := range cands {
		v := cand.v
		if s.trail.value[v].Assigned() || s.eliminated[v] || s.substituted[v] != 0 {
			continue
		}
		pos := sn.clausesWith(v.Lit(false))
		neg := sn.clausesWith(v.Lit(true))
		if len(pos) == 0 && len(neg) == 0 {
			continue
		}
		cheap := len(pos) <= 1 || len(neg) <= 1
		if !cheap && len(pos) > s.params.varElimSkip && len(neg) > s.params.varElimSkip {
			continue
		}

		resolvents := make([][]Lit, 0, len(pos)*len(neg))
		aborted := false
		for _, p := range pos {
			for _, n := range neg {
				r, ok := resolve(p, v.Lit(false), n, v.Lit(true))
				if !ok {
					continue // tautological resolvent, safely dropped
				}
				if len(r) > s.params.resClauseLimit {
					aborted = true
					break
				}
				resolvents = append(resolvents, r)
			}
			if aborted {
				break
			}
		}
		// The non-trivial resolvents must not outnumber the original
		// clauses mentioning x, or elimination would grow the database.
		if aborted || len(resolvents) > len(pos)+len(neg) {
			continue
		}

		posLits, negLits := 0, 0
		for _, c := range pos {
			posLits += len(c)
		}
		for _, c := range neg {
			negLits += len(c)
		}
		step := elimStep{v: v}
		if posLits <= negLits {
			step.sign, step.clauses = false, pos
		} else {
			step.sign, step.clauses = true, neg
		}
		s.elimLog = append(s.elimLog, step)
		s.eliminated[v] = true
		s.heap.remove(v)

		sn.removeClausesMentioning(v)

		var forced []Lit
		for _, r := range resolvents {
			switch len(r) {
			case 0:
				return true
			case 1:
				forced = append(forced, r[0])
			case 2:
				sn.bins[canonBin(r[0], r[1])] = struct{}{}
			default:
				sn.longs = append(sn.longs, r)
			}
		}
		if s.propagateUnits(sn, forced) {
			return true
		}
	}
	return false
}
