package cdcl

import "sort"

// elimCandidate is one variable considered for bounded elimination, together
// with its cost estimate (the number of resolvents eliminating it would
// produce in the worst case).
type elimCandidate struct {
	v    Var
	cost int
}

// orderElimCandidates sorts candidates by ascending cost, so the cheapest
// eliminations run first and feed smaller clauses into the ones that
// follow; ties break on variable index for a deterministic order.
func orderElimCandidates(cands []elimCandidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].cost != cands[j].cost {
			return cands[i].cost < cands[j].cost
		}
		return cands[i].v < cands[j].v
	})
}
