package sat

import "github.com/rhartert/yagh"

// UnassignedOrder tracks which variables are currently unassigned, backing
// the fallback heuristic's "first unassigned variable" query (spec 4.8,
// Fallback heuristic paragraph) and the solver facade when DLIS is turned
// off. It carries no activity scoring of its own — this spec's heuristic is
// DLIS, not VSIDS, so the heap's priority is simply the variable's index,
// making Pop return the lowest-index unassigned variable in O(log n).
//
// Membership is only removed by FirstUnassigned's pops; a variable assigned
// by propagation or by a DLIS decision (rather than by being returned from
// FirstUnassigned) stays in the heap until it is popped
// and found already-assigned, at which point it is discarded rather than
// reinserted. Unassign (driven by Trail.Backtrack) always reinserts, so the
// heap's membership is always a superset of the truly-unassigned variables,
// never a subset.
type UnassignedOrder struct {
	heap *yagh.IntMap[int]
}

// NewUnassignedOrder returns an empty order.
func NewUnassignedOrder() *UnassignedOrder {
	return &UnassignedOrder{heap: yagh.New[int](0)}
}

// AddVar registers a freshly declared, unassigned variable.
func (o *UnassignedOrder) AddVar(v int) {
	o.heap.GrowBy(1)
	o.heap.Put(v, v)
}

// Unassign reinserts v into the set of candidates, called when v becomes
// Unknown again after a backtrack.
func (o *UnassignedOrder) Unassign(v int) {
	o.heap.Put(v, v)
}

// FirstUnassigned returns the lowest-index variable that is still Unknown,
// discarding stale (already-assigned) heap entries it encounters along the
// way. It returns false once no unassigned variable remains.
func (o *UnassignedOrder) FirstUnassigned(a *Assignment) (int, bool) {
	for {
		entry, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		if a.Value(entry.Elem) == Unknown {
			return entry.Elem, true
		}
		// Stale: entry.Elem was assigned by propagation since it was
		// inserted. Drop it; Unassign will reinsert on backtrack.
	}
}
