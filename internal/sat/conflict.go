package sat

// ConflictKind tags whether BCP's conflict was found in a binary clause or a
// long one.
type ConflictKind uint8

const (
	// ConflictBinary marks a conflict found while propagating a binary
	// clause; Lits holds both of its (now falsified) literals.
	ConflictBinary ConflictKind = iota
	// ConflictLong marks a conflict found while propagating a long clause;
	// Clause is the arena index of the falsified clause.
	ConflictLong
)

// Conflict is a tagged variant describing a clause all of whose literals are
// currently False, mirroring Reason's no-dynamic-dispatch design.
type Conflict struct {
	Kind   ConflictKind
	Lits   [2]Literal  // valid when Kind == ConflictBinary
	Clause ClauseIndex // valid when Kind == ConflictLong
}

// Literals returns the conflict's falsified literals.
func (c Conflict) Literals(arena *ClauseArena) []Literal {
	if c.Kind == ConflictBinary {
		return c.Lits[:]
	}
	return arena.Get(c.Clause).Literals()
}
