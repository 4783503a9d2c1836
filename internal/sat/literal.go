package sat

import "fmt"

// Literal represents a literal, which either represent a boolean variable or
// its negation. The packed representation is code = (varID << 1) | polarity,
// with polarity 0 for positive and 1 for negative. Literal-indexed tables are
// sized 2N for a formula over N variables.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// FromDIMACS converts a DIMACS-style signed integer into a Literal. Zero is a
// clause terminator, not a literal, and is rejected.
func FromDIMACS(v int) (Literal, error) {
	if v == 0 {
		return 0, ErrMalformedLiteral
	}
	if v < 0 {
		return NegativeLiteral(-v - 1), nil
	}
	return PositiveLiteral(v - 1), nil
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal (negation by bit flip).
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// DIMACS returns the 1-based signed DIMACS integer for l.
func (l Literal) DIMACS() int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
