package cdcl

// A preprocessing pass works over a plain, in-memory copy of the problem
// clause set rather than the live pool and watch vectors: it is far
// simpler to reason about correctness for equivalence substitution,
// subsumption and resolution-based elimination when clauses are just
// slices of literals, and the one-shot cost of copying in and rebuilding
// out is negligible next to the passes themselves.
type binPair [2]Lit

func canonBin(a, b Lit) binPair {
	if a > b {
		a, b = b, a
	}
	return binPair{a, b}
}

// snapshot is the mutable clause set a preprocessing round operates on.
type snapshot struct {
	bins  map[binPair]struct{}
	longs [][]Lit
}

// takeSnapshot copies every problem clause (there must be no learned
// clauses yet) out of the pool and binary watch vectors.
func (s *Solver) takeSnapshot() *snapshot {
	sn := &snapshot{bins: make(map[binPair]struct{})}
	for l := Lit(0); int(l) < len(s.watches.lists); l++ {
		for _, w := range s.watches.lists[l] {
			if w.isBinary {
				sn.bins[canonBin(l, w.other)] = struct{}{}
			}
		}
	}
	s.pool.forEach(func(h int32) {
		n := s.pool.length(h)
		lits := make([]Lit, n)
		for i := 0; i < n; i++ {
			lits[i] = s.pool.lit(h, i)
		}
		sn.longs = append(sn.longs, lits)
	})
	return sn
}

// rebuildFromSnapshot wipes the pool and every clause watch, then
// reattaches the (simplified) clause set in sn. Binary watches are
// rebuilt from sn.bins and long clauses reallocated in the pool.
func (s *Solver) rebuildFromSnapshot(sn *snapshot) {
	for l := Lit(0); int(l) < len(s.watches.lists); l++ {
		s.watches.lists[l] = nil
	}
	s.pool = newClausePool(4 * len(sn.longs))
	s.learned = nil

	for pair := range sn.bins {
		s.watchBinary(pair[0], pair[1])
	}
	for _, lits := range sn.longs {
		h := s.pool.allocate(lits, false)
		s.watchClause(h)
	}
}

// occurrences counts, for every literal, how many surviving clauses
// mention it.
func (sn *snapshot) occurrences() map[Lit]int {
	occ := make(map[Lit]int)
	for pair := range sn.bins {
		occ[pair[0]]++
		occ[pair[1]]++
	}
	for _, c := range sn.longs {
		for _, l := range c {
			occ[l]++
		}
	}
	return occ
}

// removeSatisfiedBy deletes every clause containing l (it is now true)
// and shortens every clause containing l.Not(), returning literals that
// became forced as a result and reporting a conflict if some clause was
// falsified outright.
func (sn *snapshot) removeSatisfiedBy(l Lit) (forced []Lit, conflict bool) {
	notL := l.Not()

	for pair := range sn.bins {
		if pair[0] == l || pair[1] == l {
			delete(sn.bins, pair)
			continue
		}
		if pair[0] == notL {
			forced = append(forced, pair[1])
			delete(sn.bins, pair)
		} else if pair[1] == notL {
			forced = append(forced, pair[0])
			delete(sn.bins, pair)
		}
	}

	kept := sn.longs[:0]
	for _, c := range sn.longs {
		satisfied := false
		idx := -1
		for i, lit := range c {
			if lit == l {
				satisfied = true
				break
			}
			if lit == notL {
				idx = i
			}
		}
		if satisfied {
			continue
		}
		if idx == -1 {
			kept = append(kept, c)
			continue
		}
		c = append(c[:idx], c[idx+1:]...)
		switch len(c) {
		case 0:
			return forced, true
		case 1:
			forced = append(forced, c[0])
		default:
			kept = append(kept, c)
		}
	}
	sn.longs = kept
	return forced, false
}

// replaceLiteral substitutes every occurrence of from with to across the
// whole snapshot (from's variable is being eliminated in favor of to by
// equivalence substitution), dropping clauses that become tautological
// and deduplicating literals within a clause.
func (sn *snapshot) replaceLiteral(from, to Lit) (forced []Lit, conflict bool) {
	newBins := make(map[binPair]struct{}, len(sn.bins))
	for pair := range sn.bins {
		a, b := pair[0], pair[1]
		if a == from {
			a = to
		} else if a == from.Not() {
			a = to.Not()
		}
		if b == from {
			b = to
		} else if b == from.Not() {
			b = to.Not()
		}
		if a == b.Not() {
			continue // tautology
		}
		if a == b {
			forced = append(forced, a)
			continue
		}
		newBins[canonBin(a, b)] = struct{}{}
	}
	sn.bins = newBins

	kept := sn.longs[:0]
	for _, c := range sn.longs {
		tautology := false
		for i, l := range c {
			if l == from {
				c[i] = to
			} else if l == from.Not() {
				c[i] = to.Not()
			}
		}
		seen := make(map[Lit]bool, len(c))
		out := c[:0]
		for _, l := range c {
			if seen[l.Not()] {
				tautology = true
				break
			}
			if seen[l] {
				continue
			}
			seen[l] = true
			out = append(out, l)
		}
		if tautology {
			continue
		}
		switch len(out) {
		case 0:
			return forced, true
		case 1:
			forced = append(forced, out[0])
		case 2:
			newBins2 := canonBin(out[0], out[1])
			sn.bins[newBins2] = struct{}{}
		default:
			kept = append(kept, out)
		}
	}
	sn.longs = kept
	return forced, false
}
