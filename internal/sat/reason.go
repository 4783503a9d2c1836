package sat

// ReasonKind tags why a trail step's literal was assigned.
type ReasonKind uint8

const (
	// ReasonDecision marks a speculative branching assignment.
	ReasonDecision ReasonKind = iota
	// ReasonUnit marks a root-level forced assignment from a unit clause.
	ReasonUnit
	// ReasonBinary marks an assignment forced by a binary clause; Other is
	// the clause's other (falsified) literal.
	ReasonBinary
	// ReasonLong marks an assignment forced by a long clause; Clause is the
	// arena index of the forcing clause.
	ReasonLong
)

// Reason is a tagged variant recording why a trail step's literal became
// true, avoiding any dynamic dispatch over reason kinds (spec section 9).
type Reason struct {
	Kind   ReasonKind
	Other  Literal     // valid when Kind == ReasonBinary
	Clause ClauseIndex // valid when Kind == ReasonLong
}

// FalsifiedLiterals returns the literals of reason that are falsified and
// justify the assignment: none for Decision/Unit, the other literal for
// Binary, and every literal but the asserted one for Long.
func (r Reason) FalsifiedLiterals(arena *ClauseArena) []Literal {
	switch r.Kind {
	case ReasonBinary:
		return []Literal{r.Other}
	case ReasonLong:
		return arena.Get(r.Clause).Literals()[1:]
	default:
		return nil
	}
}
