package cdcl

// Params gathers every tunable of the search and preprocessing
// heuristics on one struct with validated setters, so a caller can
// construct a solver's configuration once and hand it around instead of
// threading a dozen loose values.
type Params struct {
	varDecay    float64
	clauseDecay float64
	randomness  float64
	randomSeed  int64

	keepLBD        int
	reduceFraction int // 0..32, in 32nds
	reduceInterval int
	reduceDelta    int

	restartInterval int

	conflictBudget int64 // 0 means unlimited

	stackThreshold int

	varElimSkip    int
	subsumeSkip    int
	resClauseLimit int

	simplifyInterval  int
	simplifyBinDelta  int

	verbosity int
}

// NewParams returns a Params populated with reasonable defaults for
// everyday CNF instances.
func NewParams() *Params {
	return &Params{
		varDecay:        0.95,
		clauseDecay:     0.999,
		randomness:      0.02,
		randomSeed:      0xdeadbeef,
		keepLBD:         5,
		reduceFraction:  6,
		reduceInterval:  2000,
		reduceDelta:     300,
		restartInterval: 50,
		conflictBudget:  0,
		stackThreshold:  1 << 20,
		varElimSkip:     10,
		subsumeSkip:     3000,
		resClauseLimit:  20,
		simplifyInterval: 2000,
		simplifyBinDelta: 1000,
		verbosity:        0,
	}
}

// SetVarDecay sets the decay factor applied to the variable-activity
// increment on each conflict. Must be in (0, 1].
func (p *Params) SetVarDecay(d float64) error {
	if d <= 0 || d > 1 {
		return &ParameterOutOfRangeError{Name: "var_decay", Value: d}
	}
	p.varDecay = d
	return nil
}

// SetClauseDecay sets the decay factor for learned-clause activity.
// Must be in (0, 1].
func (p *Params) SetClauseDecay(d float64) error {
	if d <= 0 || d > 1 {
		return &ParameterOutOfRangeError{Name: "clause_decay", Value: d}
	}
	p.clauseDecay = d
	return nil
}

// SetRandomness sets the probability, on each decision, of picking a
// uniformly random active variable instead of the heap's top. Must be
// in [0, 1].
func (p *Params) SetRandomness(r float64) error {
	if r < 0 || r > 1 {
		return &ParameterOutOfRangeError{Name: "randomness", Value: r}
	}
	p.randomness = r
	return nil
}

// SetRandomSeed sets the seed for the decision-randomness generator.
func (p *Params) SetRandomSeed(seed int64) {
	p.randomSeed = seed
}

// SetKeepLBD sets the LBD at or below which a learned clause is
// "precious" and immune to reduction. Must be >= 1.
func (p *Params) SetKeepLBD(k int) error {
	if k < 1 {
		return &ParameterOutOfRangeError{Name: "keep_lbd", Value: k}
	}
	p.keepLBD = k
	return nil
}

// SetReduceFraction sets, in 32nds, the fraction of eligible learned
// clauses deleted on each reduction pass. Must be in [0, 32].
func (p *Params) SetReduceFraction(f int) error {
	if f < 0 || f > 32 {
		return &ParameterOutOfRangeError{Name: "reduce_fraction", Value: f}
	}
	p.reduceFraction = f
	return nil
}

// SetReduceInterval sets the initial number of conflicts between two
// reduction passes. Must be > 0.
func (p *Params) SetReduceInterval(n int) error {
	if n <= 0 {
		return &ParameterOutOfRangeError{Name: "reduce_interval", Value: n}
	}
	p.reduceInterval = n
	return nil
}

// SetReduceDelta sets the growth step added to the reduce interval after
// every pass; the step itself stays the same on every pass. Must be >= 0.
func (p *Params) SetReduceDelta(n int) error {
	if n < 0 {
		return &ParameterOutOfRangeError{Name: "reduce_delta", Value: n}
	}
	p.reduceDelta = n
	return nil
}

// SetRestartInterval sets the minimum number of conflicts between two
// restarts. Must be > 0.
func (p *Params) SetRestartInterval(n int) error {
	if n <= 0 {
		return &ParameterOutOfRangeError{Name: "restart_interval", Value: n}
	}
	p.restartInterval = n
	return nil
}

// SetConflictBudget sets the total number of conflicts (cumulative across
// calls to Solve, never reset except by Reset) a solver is allowed before
// giving up and returning Unknown. 0 means unlimited. Raising the budget
// after an Unknown result and calling Solve again resumes the search from
// exactly where it left off, since Unknown leaves the trail and clause
// database untouched. Must be >= 0.
func (p *Params) SetConflictBudget(n int64) error {
	if n < 0 {
		return &ParameterOutOfRangeError{Name: "conflict_budget", Value: n}
	}
	p.conflictBudget = n
	return nil
}

// SetStackThreshold sets the maximum LBD, beyond a learned clause is
// pushed to the secondary stash instead of the pool. Must be > 0.
func (p *Params) SetStackThreshold(n int) error {
	if n <= 0 {
		return &ParameterOutOfRangeError{Name: "stack_threshold", Value: n}
	}
	p.stackThreshold = n
	return nil
}

// SetVarElimSkip sets the occurrence-count threshold beyond which a
// variable is skipped by bounded variable elimination unless cheap.
// Must be >= 0.
func (p *Params) SetVarElimSkip(n int) error {
	if n < 0 {
		return &ParameterOutOfRangeError{Name: "var_elim_skip", Value: n}
	}
	p.varElimSkip = n
	return nil
}

// SetSubsumeSkip sets the occurrence-list length beyond which
// subsumption checks against a literal are skipped. Must be >= 0.
func (p *Params) SetSubsumeSkip(n int) error {
	if n < 0 {
		return &ParameterOutOfRangeError{Name: "subsume_skip", Value: n}
	}
	p.subsumeSkip = n
	return nil
}

// SetResClauseLimit sets the maximum literal count of a resolvent
// accepted during bounded variable elimination. Must be >= 2.
func (p *Params) SetResClauseLimit(n int) error {
	if n < 2 {
		return &ParameterOutOfRangeError{Name: "res_clause_limit", Value: n}
	}
	p.resClauseLimit = n
	return nil
}

// SetSimplifyInterval sets how many new level-0 units must accumulate
// before another simplification pass runs. Must be > 0.
func (p *Params) SetSimplifyInterval(n int) error {
	if n <= 0 {
		return &ParameterOutOfRangeError{Name: "simplify_interval", Value: n}
	}
	p.simplifyInterval = n
	return nil
}

// SetSimplifyBinDelta sets how many new binary clauses must accumulate
// before another simplification pass runs. Must be > 0.
func (p *Params) SetSimplifyBinDelta(n int) error {
	if n <= 0 {
		return &ParameterOutOfRangeError{Name: "simplify_bin_delta", Value: n}
	}
	p.simplifyBinDelta = n
	return nil
}

// SetVerbosity sets the diagnostic verbosity. 0 disables all output.
func (p *Params) SetVerbosity(v int) error {
	if v < 0 {
		return &ParameterOutOfRangeError{Name: "verbosity", Value: v}
	}
	p.verbosity = v
	return nil
}
