package cdcl

// findImplicationSCCs computes the strongly connected components of the
// binary implication graph (an edge ¬a -> b for every binary clause
// (a, b)) using Tarjan's algorithm, run iteratively with an explicit
// stack so the recursion depth never depends on the number of variables.
// Components of size 1 are omitted; every other component is a set of
// literals that must all take the same truth value in any model.
func (s *Solver) findImplicationSCCs(sn *snapshot) [][]Lit {
	n := int32(2 * (s.nVars + 1))
	adj := make([][]Lit, n)
	for pair := range sn.bins {
		a, b := pair[0], pair[1]
		adj[a.Not()] = append(adj[a.Not()], b)
		adj[b.Not()] = append(adj[b.Not()], a)
	}

	index := make([]int32, n)
	lowlink := make([]int32, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	var tstack []int32
	counter := int32(0)
	var sccs [][]Lit

	type frame struct {
		v Lit
		i int
	}

	for start := int32(0); start < n; start++ {
		if visited[start] {
			continue
		}
		work := []frame{{Lit(start), 0}}
		visited[start] = true
		index[start] = counter
		lowlink[start] = counter
		counter++
		tstack = append(tstack, start)
		onStack[start] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			if top.i < len(adj[v]) {
				w := adj[v][top.i]
				top.i++
				if !visited[w] {
					visited[w] = true
					index[w] = counter
					lowlink[w] = counter
					counter++
					tstack = append(tstack, int32(w))
					onStack[w] = true
					work = append(work, frame{w, 0})
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var comp []Lit
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					comp = append(comp, Lit(w))
					if Lit(w) == v {
						break
					}
				}
				if len(comp) > 1 {
					sccs = append(sccs, comp)
				}
			}
		}
	}
	return sccs
}

// substituteEquivalences finds equivalence classes of literals via the
// binary implication graph and eliminates every variable but one
// representative per class, rewriting the whole clause set. A class that
// contains a literal and its negation makes the problem unsatisfiable; a
// class that contains the permanently true or false literal of the
// reserved variable forces every other member instead of substituting it.
func (s *Solver) substituteEquivalences(sn *snapshot) (conflict bool) {
	claimed := make([]bool, s.nVars+1)
	sccs := s.findImplicationSCCs(sn)

	for _, comp := range sccs {
		unclaimed := comp[:0]
		for _, l := range comp {
			if !claimed[l.Var()] {
				unclaimed = append(unclaimed, l)
			}
		}
		if len(unclaimed) < 2 {
			continue
		}
		comp = unclaimed

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

		for _, l := range comp {
			claimed[l.Var()] = true
		}

		if hasTrue || hasFalse {
			var forced []Lit
			for _, l := range comp {
				if l == TrueLit || l == FalseLit {
					continue
				}
				if hasTrue {
					forced = append(forced, l)
				} else {
					forced = append(forced, l.Not())
				}
			}
			for _, l := range forced {
				fl, cf := sn.removeSatisfiedBy(l)
				if cf {
					return true
				}
				if s.propagateUnits(sn, append([]Lit{l}, fl...)) {
					return true
				}
			}
			continue
		}

		rep := comp[0]
		for _, l := range comp[1:] {
			if l < rep {
				rep = l
			}
		}
		for _, l := range comp {
			if l == rep {
				continue
			}
			v := l.Var()
			if l.Signed() {
				s.substituted[v] = rep.Not()
			} else {
				s.substituted[v] = rep
			}
			forced, cf := sn.replaceLiteral(l, rep)
			if cf {
				return true
			}
			if s.propagateUnits(sn, forced) {
				return true
			}
		}
	}
	return false
}
