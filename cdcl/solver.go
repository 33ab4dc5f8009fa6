package cdcl

import (
	"fmt"
	"io"
	"math/rand"
)

// Solver is a single CDCL search instance over a set of CNF clauses.
// It is not safe for concurrent use.
type Solver struct {
	params *Params
	nVars  Var

	pool    *clausePool
	watches *watches
	heap    *varHeap
	trail   *trail

	learned []learnedMeta
	stash   []stashedClause

	varActivityInc    float64
	clauseActivityInc float64

	seenMark []uint32
	seenGen  uint32
	lbdSeen  []uint32
	lbdGen   uint32

	learntScratch  []Lit
	reasonScratch1 []Lit
	reasonScratch2 []Lit
	minimizeStack  []Var

	ema *emaTracker
	rng *rand.Rand
	out io.Writer

	nextReduce             int64
	unitsAtLastSimplify    int
	binariesAtLastSimplify int
	nBinaries              int

	eliminated   []bool // per var, true if removed by bounded variable elimination
	substituted  []Lit  // per var, representative literal if substituted away by SCC, 0 if none
	elimLog      []elimStep

	state         solverState
	searchStarted bool

	conflicts, decisions, propagations, restarts, reduces int64

	sumLBD         float64 // running total over every clause ever learned, for diagnostics
	sumLearntLits  int64
	nLearntEver    int64
	maxDepth       int32 // deepest decision level reached so far
}

// NewSolver returns a Solver ready to accept variables and clauses.
// capVars is a hint for how many variables to preallocate for; 0 picks a
// small default and the solver grows as needed regardless.
func NewSolver(capVars int, params *Params) *Solver {
	if params == nil {
		params = NewParams()
	}
	if capVars < 16 {
		capVars = 16
	}
	s := &Solver{
		params:            params,
		pool:              newClausePool(4 * capVars),
		watches:           newWatches(capVars),
		heap:              newVarHeap(capVars),
		trail:             newTrail(capVars),
		seenMark:          make([]uint32, capVars+1),
		lbdSeen:           make([]uint32, capVars+1),
		eliminated:        make([]bool, capVars+1),
		substituted:       make([]Lit, capVars+1),
		varActivityInc:    1,
		clauseActivityInc: 1,
		ema:               newEMATracker(),
		rng:               rand.New(rand.NewSource(params.randomSeed)),
		out:               io.Discard,
		state:             stateInput,
	}
	s.nextReduce = int64(params.reduceInterval)
	return s
}

// SetOutput directs diagnostic output written when verbosity is above 0.
func (s *Solver) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.out = w
}

func (s *Solver) grow(nVars Var) {
	if nVars <= s.nVars {
		return
	}
	s.watches.grow(int(nVars))
	s.heap.grow(int(nVars))
	s.trail.grow(int(nVars))
	for Var(len(s.seenMark)) <= nVars {
		s.seenMark = append(s.seenMark, 0)
		s.lbdSeen = append(s.lbdSeen, 0)
		s.eliminated = append(s.eliminated, false)
		s.substituted = append(s.substituted, 0)
	}
	s.nVars = nVars
}

// NewVar creates and returns a fresh variable.
func (s *Solver) NewVar() Var {
	s.nVars++
	s.grow(s.nVars)
	s.heap.insert(s.nVars)
	return s.nVars
}

// NewVars creates n fresh variables and returns the first one; the rest
// are the following n-1 consecutive Vars.
func (s *Solver) NewVars(n int) Var {
	first := s.nVars + 1
	for i := 0; i < n; i++ {
		s.NewVar()
	}
	return first
}

func (s *Solver) checkVar(v Var) error {
	if v < 0 || v > s.nVars {
		return &VariableOutOfRangeError{Var: v, Max: s.nVars}
	}
	return nil
}

// AddClause adds a disjunction of literals as a permanent constraint. It
// returns an error if the solver has already reached Unsat, or if any
// literal refers to a variable that was never created. Adding the empty
// clause makes the solver immediately Unsat.
func (s *Solver) AddClause(lits ...Lit) error {
	if s.state == stateUnsat {
		return &InvalidStateError{Op: "AddClause", State: "unsat"}
	}
	for _, l := range lits {
		if err := s.checkVar(l.Var()); err != nil {
			return err
		}
	}
	s.state = stateInput

	out := make([]Lit, 0, len(lits))
	seen := make(map[Lit]bool, len(lits))
	tautology := false
	for _, l := range lits {
		if seen[l.Not()] {
			tautology = true
			break
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		if s.trail.valueOf(l) == True {
			tautology = true
			break
		}
		if s.trail.valueOf(l) == False {
			continue
		}
		out = append(out, l)
	}
	if tautology {
		return nil
	}

	switch len(out) {
	case 0:
		s.state = stateUnsat
	case 1:
		if !s.enqueue(out[0], Antecedent{Tag: UnitAntecedent}) {
			s.state = stateUnsat
		}
	default:
		s.attachProblemClause(out)
	}
	return nil
}

// Value returns v's current value. Before Solve has returned Sat this is
// only meaningful for variables forced at decision level 0.
func (s *Solver) Value(v Var) Value {
	return s.trail.value[v]
}

// AllValues returns the value of every user-created variable, indexed so
// that AllValues()[v] is Value(v); index 0 is always True.
func (s *Solver) AllValues() []Value {
	out := make([]Value, s.nVars+1)
	copy(out, s.trail.value[:s.nVars+1])
	return out
}

// TrueLiterals returns the literals on the assignment trail, in
// assignment order, including the reserved TrueLit. Values that model
// reconstruction writes for eliminated or substituted variables are not
// on the trail and are not included; Value and AllValues report them.
func (s *Solver) TrueLiterals() []Lit {
	out := make([]Lit, len(s.trail.assigned))
	copy(out, s.trail.assigned)
	return out
}

// Reset drops every assignment and learned clause, returning the solver
// to accepting new problem clauses at decision level 0. Variables,
// problem clauses and previously fixed level-0 units are kept.
func (s *Solver) Reset() {
	s.trail.undoToLevel(0, func(l Lit) {
		v := l.Var()
		if !s.eliminated[v] {
			s.heap.insert(v)
		}
	})
	for _, m := range s.learned {
		s.unwatchClause(m.handle)
		s.pool.delete(m.handle)
	}
	s.learned = nil
	s.stash = nil
	s.ema = newEMATracker()
	s.varActivityInc = 1
	s.clauseActivityInc = 1
	s.conflicts, s.decisions, s.propagations, s.restarts, s.reduces = 0, 0, 0, 0, 0
	s.sumLBD, s.sumLearntLits, s.nLearntEver, s.maxDepth = 0, 0, 0, 0
	s.nextReduce = int64(s.params.reduceInterval)
	s.state = stateInput
	s.searchStarted = false
	s.compactPool(0)
	s.pool.clampCapacityTo(resetCapacityCeiling)
}

func (s *Solver) log(format string, args ...interface{}) {
	if s.params.verbosity > 0 {
		fmt.Fprintf(s.out, format, args...)
	}
}
