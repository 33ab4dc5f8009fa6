package cdcl

// varHeap is a binary max-heap over variables ordered by activity,
// supporting the increase-key and arbitrary-remove operations a decision
// heuristic needs: activity only ever grows between heap operations
// (bumps), and a variable must be removable the moment it gets assigned.
type varHeap struct {
	activity []float64 // indexed by Var
	heap     []Var
	pos      []int32 // heap index of Var, -1 if absent
}

func newVarHeap(capVars int) *varHeap {
	pos := make([]int32, capVars+1)
	for i := range pos {
		pos[i] = -1
	}
	return &varHeap{
		activity: make([]float64, capVars+1),
		heap:     make([]Var, 0, capVars+1),
		pos:      pos,
	}
}

func (h *varHeap) grow(nVars int) {
	for len(h.activity) <= nVars {
		h.activity = append(h.activity, 0)
		h.pos = append(h.pos, -1)
	}
}

func (h *varHeap) contains(v Var) bool {
	return int(v) < len(h.pos) && h.pos[v] != -1
}

func (h *varHeap) activityOf(v Var) float64 {
	return h.activity[v]
}

func (h *varHeap) less(a, b Var) bool {
	return h.activity[a] > h.activity[b]
}

func (h *varHeap) percolateUp(i int) {
	v := h.heap[i]
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(v, h.heap[parent]) {
			break
		}
		h.heap[i] = h.heap[parent]
		h.pos[h.heap[parent]] = int32(i)
		i = parent
	}
	h.heap[i] = v
	h.pos[v] = int32(i)
}

func (h *varHeap) percolateDown(i int) {
	v := h.heap[i]
	n := len(h.heap)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(h.heap[right], h.heap[left]) {
			child = right
		}
		if !h.less(h.heap[child], v) {
			break
		}
		h.heap[i] = h.heap[child]
		h.pos[h.heap[i]] = int32(i)
		i = child
	}
	h.heap[i] = v
	h.pos[v] = int32(i)
}

// insert adds v to the heap. v must not already be present.
func (h *varHeap) insert(v Var) {
	h.pos[v] = int32(len(h.heap))
	h.heap = append(h.heap, v)
	h.percolateUp(len(h.heap) - 1)
}

// remove drops v from the heap if present; a no-op otherwise.
func (h *varHeap) remove(v Var) {
	i := h.pos[v]
	if i == -1 {
		return
	}
	last := len(h.heap) - 1
	h.heap[i] = h.heap[last]
	h.pos[h.heap[i]] = i
	h.heap = h.heap[:last]
	h.pos[v] = -1
	if int(i) < len(h.heap) {
		h.percolateDown(int(i))
		h.percolateUp(int(i))
	}
}

// bump increases v's activity by delta and restores the heap ordering.
func (h *varHeap) bump(v Var, delta float64) {
	h.activity[v] += delta
	if i := h.pos[v]; i != -1 {
		h.percolateUp(int(i))
	}
}

// rescale divides every activity by factor, keeping the ordering fixed.
// Called when activities threaten to overflow float64 precision.
func (h *varHeap) rescale(factor float64) {
	for v := range h.activity {
		h.activity[v] /= factor
	}
}

// popMax removes and returns the highest-activity variable. The heap
// must be non-empty.
func (h *varHeap) popMax() Var {
	top := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.pos[h.heap[0]] = 0
	h.heap = h.heap[:last]
	h.pos[top] = -1
	if len(h.heap) > 0 {
		h.percolateDown(0)
	}
	return top
}

func (h *varHeap) empty() bool {
	return len(h.heap) == 0
}
