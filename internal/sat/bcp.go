package sat

// BCP drives Boolean Constraint Propagation to a fixpoint or a conflict. It
// owns no state of its own beyond references into the trail, assignment,
// binary index, clause arena, and watch lists it was built from.
type BCP struct {
	trail      *Trail
	assignment *Assignment
	bin        *BinaryClauses
	arena      *ClauseArena
	watches    *WatchLists
}

// NewBCP wires a BCP engine to the given components.
func NewBCP(trail *Trail, assignment *Assignment, bin *BinaryClauses, arena *ClauseArena, watches *WatchLists) *BCP {
	return &BCP{trail: trail, assignment: assignment, bin: bin, arena: arena, watches: watches}
}

// Propagate repeatedly dequeues the next unpropagated literal and resolves
// it against both clause stores until the trail reaches a fixpoint (no
// unpropagated literal remains, reported as ok=false) or a clause is
// falsified (reported as the returned Conflict, ok=true). Binary
// propagation always runs before long propagation for a given literal, so a
// binary conflict short-circuits before any watchlist is scanned.
func (b *BCP) Propagate() (Conflict, bool) {
	for {
		lit, ok := b.trail.NextUnpropagated()
		if !ok {
			return Conflict{}, false
		}
		notLit := lit.Opposite()

		if conflict, hasConflict := b.propagateBinary(notLit); hasConflict {
			return conflict, true
		}
		if conflict, hasConflict := b.propagateLong(lit, notLit); hasConflict {
			return conflict, true
		}

		b.trail.IncreasePropagated()
	}
}

// propagateBinary resolves every binary clause containing notLit.
func (b *BCP) propagateBinary(notLit Literal) (Conflict, bool) {
	for _, other := range b.bin.Others(notLit) {
		switch b.assignment.LitValue(other) {
		case True:
			// Clause already satisfied through other.
		case Unknown:
			b.trail.Assign(b.assignment, other, b.trail.DecisionLevel(), Reason{
				Kind:  ReasonBinary,
				Other: notLit,
			})
		case False:
			return Conflict{Kind: ConflictBinary, Lits: [2]Literal{notLit, other}}, true
		}
	}
	return Conflict{}, false
}

// propagateLong resolves every long-clause watch registered on lit (a watch
// on lit fires when lit becomes true, since that falsifies the clause's
// watched literal notLit = lit.Opposite()) using the two-watched-literal
// scheme (spec 4.6). The watch list is detached for the duration of the
// scan and reattached (possibly rewritten) before returning, since watches
// may migrate to other literals' lists mid-scan.
func (b *BCP) propagateLong(lit, notLit Literal) (Conflict, bool) {
	list := b.watches.Take(lit)
	var keep []Watch

	for i := 0; i < len(list); i++ {
		w := list[i]

		if b.assignment.LitValue(w.Blocker) == True {
			keep = append(keep, w)
			continue
		}

		c := b.arena.Get(w.Clause)

		// Canonicalize so position 1 holds notLit and position 0 holds the
		// clause's other watched literal.
		if c.Lit(0) == notLit {
			c.SetLit(0, c.Lit(1))
			c.SetLit(1, notLit)
		}
		other := c.Lit(0)

		if b.assignment.LitValue(other) == True {
			w.Blocker = other
			keep = append(keep, w)
			continue
		}

		replaced := false
		for j := 2; j < c.Len(); j++ {
			x := c.Lit(j)
			if b.assignment.LitValue(x) != False {
				c.SetLit(1, x)
				c.SetLit(j, notLit)
				b.watches.Add(x.Opposite(), Watch{Clause: w.Clause, Blocker: other})
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}

		// No replacement: the clause is unit or conflicting on other.
		w.Blocker = other
		keep = append(keep, w)

		switch b.assignment.LitValue(other) {
		case Unknown:
			b.trail.Assign(b.assignment, other, b.trail.DecisionLevel(), Reason{
				Kind:   ReasonLong,
				Clause: w.Clause,
			})
		case False:
			keep = append(keep, list[i+1:]...)
			b.watches.Place(lit, keep)
			return Conflict{Kind: ConflictLong, Clause: w.Clause}, true
		}
	}

	b.watches.Place(lit, keep)
	return Conflict{}, false
}
