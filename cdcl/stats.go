package cdcl

// Stats is a snapshot of the search counters, useful for logging or for
// a caller that wants to report progress without parsing diagnostic text.
type Stats struct {
	Conflicts    int64
	Decisions    int64
	Propagations int64
	Restarts     int64
	Reduces      int64
	Learned      int
	Eliminated   int
	Substituted  int
}

// Stats returns the current search counters.
func (s *Solver) Stats() Stats {
	st := Stats{
		Conflicts:    s.conflicts,
		Decisions:    s.decisions,
		Propagations: s.propagations,
		Restarts:     s.restarts,
		Reduces:      s.reduces,
		Learned:      len(s.learned),
	}
	for v := Var(1); v <= s.nVars; v++ {
		if s.eliminated[v] {
			st.Eliminated++
		}
		if s.substituted[v] != 0 {
			st.Substituted++
		}
	}
	return st
}
