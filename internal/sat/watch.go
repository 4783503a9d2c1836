package sat

// Watch is an entry in a literal's watch list: clause identifies the long
// clause being watched, and blocker is the clause's *other* watched literal,
// used to short-circuit the scan when the clause is already satisfied
// through it.
type Watch struct {
	Clause  ClauseIndex
	Blocker Literal
}

// WatchLists is the per-literal index of watches into the long-clause
// arena. During BCP, the list for the literal being processed is detached
// with Take, scanned and rewritten with indices (not range, since watches
// may be appended to *other* lists mid-scan), then reattached with Place.
// Watches migrated to a different literal are appended directly to that
// literal's list, which is always a distinct slice from the one being
// scanned, so no aliasing hazard arises (spec section 5).
type WatchLists struct {
	lists [][]Watch
}

// Grow adds the two watch-list slots for a freshly declared variable.
func (w *WatchLists) Grow() {
	w.lists = append(w.lists, nil, nil)
}

// Add appends a watch to lit's list.
func (w *WatchLists) Add(lit Literal, watch Watch) {
	w.lists[lit] = append(w.lists[lit], watch)
}

// Take detaches lit's watch list for scanning, leaving it empty.
func (w *WatchLists) Take(lit Literal) []Watch {
	list := w.lists[lit]
	w.lists[lit] = nil
	return list
}

// Place reattaches the (possibly rewritten) watch list for lit.
func (w *WatchLists) Place(lit Literal, list []Watch) {
	w.lists[lit] = list
}
