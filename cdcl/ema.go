package cdcl

// emaTracker drives restarts by comparing a fast and a slow exponential
// moving average of the LBD of learned clauses: when the recent (fast)
// average climbs well above the long-run (slow) average, the search is
// thrashing on hard conflicts and a restart is likely to help. This is
// the "glucose" restart policy, generalized here with a minimum number
// of conflicts between restarts and a margin factor instead of hardcoded
// constants.
type emaTracker struct {
	fast, slow   float64
	fastDecay    float64
	slowDecay    float64
	nSamples     int64
	sinceRestart int64
}

func newEMATracker() *emaTracker {
	return &emaTracker{
		fastDecay: 1.0 / 32,
		slowDecay: 1.0 / 65536,
	}
}

// sample folds a new LBD value into both averages.
func (e *emaTracker) sample(lbd int) {
	x := float64(lbd)
	e.nSamples++
	e.sinceRestart++
	if e.nSamples == 1 {
		e.fast, e.slow = x, x
		return
	}
	e.fast += (x - e.fast) * e.fastDecay
	e.slow += (x - e.slow) * e.slowDecay
}

// shouldRestart reports whether the fast average has drifted enough
// above the slow average to warrant a restart, subject to a minimum gap
// (in conflicts) between restarts, a warm-up period before the tracker
// has enough samples to be meaningful, and the current decision level
// having caught up to the fast average (a solver still shallow in the
// search tree gains little from restarting).
func (e *emaTracker) shouldRestart(minInterval int, margin float64, currentLevel int32) bool {
	if e.nSamples < 64 || e.sinceRestart < int64(minInterval) {
		return false
	}
	if float64(currentLevel) < e.fast {
		return false
	}
	return e.fast > e.slow*margin
}

func (e *emaTracker) noteRestart() {
	e.sinceRestart = 0
}
