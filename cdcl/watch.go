package cdcl

// A watch is one entry of the list attached to a literal l: something
// that must be looked at whenever l becomes false. Binary clauses are
// represented inline by their other literal so the common case never
// touches the pool; long clauses carry a handle into the pool plus a
// cached blocker literal that is checked before the clause itself is
// walked, saving a pool access whenever the blocker is already true.
type watch struct {
	isBinary bool
	other    Lit   // binary: the clause's other literal
	handle   int32 // long: pool handle
	blocker  Lit   // long: a literal of the clause likely to be true
}

func binaryWatch(other Lit) watch {
	return watch{isBinary: true, other: other}
}

func clauseWatch(handle int32, blocker Lit) watch {
	return watch{handle: handle, blocker: blocker}
}

// watches holds, for every literal, the list of watches triggered when
// that literal is falsified. Indexed by Lit directly (2*nVars+2 slots).
type watches struct {
	lists [][]watch
}

func newWatches(capVars int) *watches {
	return &watches{lists: make([][]watch, 2*(capVars+1))}
}

func (w *watches) grow(nVars int) {
	need := 2 * (nVars + 1)
	if need <= len(w.lists) {
		return
	}
	grown := make([][]watch, need)
	copy(grown, w.lists)
	w.lists = grown
}

func (w *watches) list(l Lit) []watch {
	return w.lists[l]
}

func (w *watches) addBinary(l, other Lit) {
	w.lists[l] = append(w.lists[l], binaryWatch(other))
}

func (w *watches) addClause(l Lit, handle int32, blocker Lit) {
	w.lists[l] = append(w.lists[l], clauseWatch(handle, blocker))
}

// removeBinary drops the first binary watch on l pointing at other. The
// preprocessing passes do not call it: they edit a snapshot and rebuild
// the watch lists from it afterwards.
func (w *watches) removeBinary(l, other Lit) {
	ws := w.lists[l]
	for i, e := range ws {
		if e.isBinary && e.other == other {
			ws[i] = ws[len(ws)-1]
			w.lists[l] = ws[:len(ws)-1]
			return
		}
	}
}

// removeClause drops the watch on l for the clause at handle. Used by
// unwatchClause when a clause is deleted or shrunk; compaction drops its
// watches in bulk with removeAllHandlesFrom instead.
func (w *watches) removeClause(l Lit, handle int32) {
	ws := w.lists[l]
	for i, e := range ws {
		if !e.isBinary && e.handle == handle {
			ws[i] = ws[len(ws)-1]
			w.lists[l] = ws[:len(ws)-1]
			return
		}
	}
}

// removeAllHandlesFrom drops every non-binary watch anywhere in the
// vector whose handle is >= base. Used before a compaction pass, which
// invalidates every handle at or beyond the region it sweeps.
func (w *watches) removeAllHandlesFrom(base int32) {
	for l, ws := range w.lists {
		if len(ws) == 0 {
			continue
		}
		kept := ws[:0]
		for _, e := range ws {
			if e.isBinary || e.handle < base {
				kept = append(kept, e)
			}
		}
		w.lists[l] = kept
	}
}
