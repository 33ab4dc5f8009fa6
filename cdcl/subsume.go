package cdcl

// clauseSignature is a cheap 32-bit filter over a clause's literals: if
// A's signature has a bit set that B's signature lacks, A cannot possibly
// be a literal subset of B, so the expensive membership check can be
// skipped.
func clauseSignature(c []Lit) uint32 {
	var m uint32
	for _, l := range c {
		m |= 1 << (uint32(l) & 31)
	}
	return m
}

func containsLit(c []Lit, l Lit) bool {
	for _, m := range c {
		if m == l {
			return true
		}
	}
	return false
}

// subsumes reports whether a's literals are all present in b, using the
// precomputed signatures to reject most non-subset pairs in O(1).
func subsumes(a, b []Lit, sigA, sigB uint32) bool {
	if len(a) > len(b) || sigA&^sigB != 0 {
		return false
	}
	for _, l := range a {
		if !containsLit(b, l) {
			return false
		}
	}
	return true
}

// selfSubsumeDrop looks for the literal x in target such that
// a \ {¬x} is a subset of target \ {x}; if found, x can be dropped from
// target without changing satisfiability (self-subsuming resolution).
func selfSubsumeDrop(a, target []Lit) (Lit, bool) {
	for _, x := range target {
		if !containsLit(a, x.Not()) {
			continue
		}
		match := true
		for _, m := range a {
			if m == x.Not() {
				continue
			}
			if !containsLit(target, m) {
				match = false
				break
			}
		}
		if match {
			return x, true
		}
	}
	return 0, false
}

// subsumeAndStrengthen removes clauses subsumed by a shorter clause and
// drops self-subsumed literals, iterating to a fixpoint bounded by a
// small number of rounds since each round is quadratic in the local
// occurrence lists.
func (s *Solver) subsumeAndStrengthen(sn *snapshot) (conflict bool) {
	for round := 0; round < 4; round++ {
		clauses := make([][]Lit, 0, len(sn.bins)+len(sn.longs))
		for pair := range sn.bins {
			clauses = append(clauses, []Lit{pair[0], pair[1]})
		}
		for _, c := range sn.longs {
			clauses = append(clauses, c)
		}
		sigs := make([]uint32, len(clauses))
		occ := make(map[Lit][]int)
		for i, c := range clauses {
			sigs[i] = clauseSignature(c)
			for _, l := range c {
				occ[l] = append(occ[l], i)
			}
		}

		changed := false
		alive := make([]bool, len(clauses))
		for i := range clauses {
			alive[i] = true
		}
		var forced []Lit

		for i, ci := range clauses {
			if !alive[i] {
				continue
			}
			rarest := ci[0]
			for _, l := range ci[1:] {
				if len(occ[l]) < len(occ[rarest]) {
					rarest = l
				}
			}
			if len(occ[rarest]) > s.params.subsumeSkip {
				continue
			}
			for _, j := range occ[rarest] {
				if j == i || !alive[j] {
					continue
				}
				cj := clauses[j]
				if subsumes(ci, cj, sigs[i], sigs[j]) {
					alive[j] = false
					changed = true
					continue
				}
				if subsumes(cj, ci, sigs[j], sigs[i]) {
					alive[i] = false
					changed = true
					break
				}
				if x, ok := selfSubsumeDrop(ci, cj); ok {
					clauses[j] = removeLit(cj, x)
					sigs[j] = clauseSignature(clauses[j])
					changed = true
					if len(clauses[j]) == 1 {
						forced = append(forced, clauses[j][0])
						alive[j] = false
					} else if len(clauses[j]) == 0 {
						return true
					}
				}
			}

			// Self-subsuming resolution's pivot literal appears with
			// opposite sign in the two clauses, so a resolving partner
			// for ci is found among clauses containing rarest.Not(), not
			// rarest itself; occ[rarest] alone can never surface them.
			if len(occ[rarest.Not()]) <= s.params.subsumeSkip {
				for _, j := range occ[rarest.Not()] {
					if j == i || !alive[j] {
						continue
					}
					cj := clauses[j]
					if x, ok := selfSubsumeDrop(ci, cj); ok {
						clauses[j] = removeLit(cj, x)
						sigs[j] = clauseSignature(clauses[j])
						changed = true
						if len(clauses[j]) == 1 {
							forced = append(forced, clauses[j][0])
							alive[j] = false
						} else if len(clauses[j]) == 0 {
							return true
						}
					}
				}
			}
		}

		sn.bins = make(map[binPair]struct{})
		sn.longs = sn.longs[:0]
		for i, c := range clauses {
			if !alive[i] {
				continue
			}
			switch len(c) {
			case 2:
				sn.bins[canonBin(c[0], c[1])] = struct{}{}
			default:
				sn.longs = append(sn.longs, c)
			}
		}
		if s.propagateUnits(sn, forced) {
			return true
		}
		if !changed {
			break
		}
	}
	return false
}

func removeLit(c []Lit, l Lit) []Lit {
	out := make([]Lit, 0, len(c)-1)
	for _, m := range c {
		if m != l {
			out = append(out, m)
		}
	}
	return out
}
