package sat

// Assignment is a dense, literal-indexed ternary value store. There is one
// slot per literal (2N for N variables) so that value lookups never branch
// on polarity.
type Assignment struct {
	values []LBool
}

// Grow adds one fresh (positive, negative) literal pair, both Unknown.
func (a *Assignment) Grow() {
	a.values = append(a.values, Unknown, Unknown)
}

// NumVars returns the number of variables the assignment has been grown to.
func (a *Assignment) NumVars() int {
	return len(a.values) / 2
}

// Value returns the current value of a variable, read through its positive
// literal.
func (a *Assignment) Value(v int) LBool {
	return a.values[PositiveLiteral(v)]
}

// LitValue returns the current value of a literal (negated if l is negative).
func (a *Assignment) LitValue(l Literal) LBool {
	return a.values[l]
}

// AssignTrue sets l to True and its opposite to False.
func (a *Assignment) AssignTrue(l Literal) {
	a.values[l] = True
	a.values[l.Opposite()] = False
}

// Unassign resets both literals of variable v to Unknown.
func (a *Assignment) Unassign(v int) {
	a.values[PositiveLiteral(v)] = Unknown
	a.values[NegativeLiteral(v)] = Unknown
}
