package cdcl

// Conflict describes the clause found fully falsified during unit
// propagation. Exactly one of the binary or pool representations is
// meaningful, selected by isBinary.
type Conflict struct {
	isBinary bool
	l1, l2   Lit   // both currently false, binary case
	handle   int32 // pool handle, long-clause case
}

// conflictLits returns the falsified clause as a literal slice, appending
// into dst to avoid an allocation on the hot conflict-analysis path.
func (s *Solver) conflictLits(c Conflict, dst []Lit) []Lit {
	if c.isBinary {
		return append(dst, c.l1, c.l2)
	}
	n := s.pool.length(c.handle)
	for i := 0; i < n; i++ {
		dst = append(dst, s.pool.lit(c.handle, i))
	}
	return dst
}

// reasonLits appends the literals of the clause that forced v's current
// value into dst, with the propagated literal first, matching the
// invariant that a pooled antecedent clause keeps its implied literal at
// position 0.
func (s *Solver) reasonLits(v Var, dst []Lit) []Lit {
	ante := s.trail.antecedent[v]
	self := v.Lit(s.trail.value[v] == False)
	switch ante.Tag {
	case BinaryAntecedent:
		return append(dst, self, Lit(ante.Datum))
	case ClauseAntecedent:
		n := s.pool.length(ante.Datum)
		for i := 0; i < n; i++ {
			dst = append(dst, s.pool.lit(ante.Datum, i))
		}
		return dst
	case StackedAntecedent:
		cl := s.stash[ante.Datum]
		return append(dst, cl.lits...)
	default:
		return append(dst, self)
	}
}

// enqueue binds l to true with the given antecedent. It reports false if
// l was already bound to false (a conflict the caller must detect through
// other means; enqueue itself never fabricates a Conflict value).
func (s *Solver) enqueue(l Lit, ante Antecedent) bool {
	val := s.trail.valueOf(l)
	if val.Assigned() {
		return val == True
	}
	if s.trail.decisionLevel() == 0 {
		s.trail.assignAtLevel0(l, ante)
	} else {
		s.trail.assign(l, ante)
	}
	s.heap.remove(l.Var())
	return true
}

// watchBinary registers a binary clause (a, b) in both watch lists.
func (s *Solver) watchBinary(a, b Lit) {
	s.watches.addBinary(a, b)
	s.watches.addBinary(b, a)
	s.nBinaries++
}

// watchClause registers a pooled clause's first two literals as its
// initial pair of watches.
func (s *Solver) watchClause(h int32) {
	l0, l1 := s.pool.lit(h, 0), s.pool.lit(h, 1)
	s.watches.addClause(l0, h, l1)
	s.watches.addClause(l1, h, l0)
}

// unwatchClause drops both of h's watches. Used before deleting or
// shrinking a clause below the length that still needs two watches.
func (s *Solver) unwatchClause(h int32) {
	l0, l1 := s.pool.lit(h, 0), s.pool.lit(h, 1)
	s.watches.removeClause(l0, h)
	s.watches.removeClause(l1, h)
}

// propagate drains the trail queue, running unit propagation until a
// fixpoint or a conflict. It returns ok == false when a clause was found
// fully falsified.
func (s *Solver) propagate() (c Conflict, ok bool) {
	for s.trail.qhead < len(s.trail.assigned) {
		p := s.trail.assigned[s.trail.qhead]
		s.trail.qhead++
		falseLit := p.Not()
		ws := s.watches.lists[falseLit]
		keep := ws[:0]
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if w.isBinary {
				val := s.trail.valueOf(w.other)
				if val == True {
					keep = append(keep, w)
					continue
				}
				if val == False {
					s.watches.lists[falseLit] = append(keep, ws[i:]...)
					s.propagations++
					return Conflict{isBinary: true, l1: falseLit, l2: w.other}, false
				}
				s.enqueue(w.other, Antecedent{Tag: BinaryAntecedent, Datum: int32(falseLit)})
				keep = append(keep, w)
				continue
			}

			if s.trail.valueOf(w.blocker) == True {
				keep = append(keep, w)
				continue
			}
			h := w.handle
			if s.pool.lit(h, 0) == falseLit {
				s.pool.swapLits(h, 0, 1)
			}
			first := s.pool.lit(h, 0)
			if first != w.blocker && s.trail.valueOf(first) == True {
				keep = append(keep, clauseWatch(h, first))
				continue
			}

			length := s.pool.length(h)
			found := false
			for k := 2; k < length; k++ {
				lk := s.pool.lit(h, k)
				if s.trail.valueOf(lk) != False {
					s.pool.swapLits(h, 1, k)
					s.watches.addClause(lk, h, first)
					found = true
					break
				}
			}
			if found {
				continue
			}

			if s.trail.valueOf(first) == False {
				s.watches.lists[falseLit] = append(keep, ws[i:]...)
				s.propagations++
				return Conflict{handle: h}, false
			}
			s.enqueue(first, Antecedent{Tag: ClauseAntecedent, Datum: h})
			keep = append(keep, clauseWatch(h, first))
		}
		s.watches.lists[falseLit] = keep
		s.propagations++
	}
	return Conflict{}, true
}
