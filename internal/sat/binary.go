package sat

// BinaryClauses is the per-literal adjacency index for binary (2-literal)
// clauses. A clause {a, b} is stored once in each literal's list, keyed by
// the *other* literal, so propagating a falsified literal is a direct scan
// with no clause object to dereference.
type BinaryClauses struct {
	byLit [][]Literal
}

// Grow adds the two adjacency slots for a freshly declared variable.
func (b *BinaryClauses) Grow() {
	b.byLit = append(b.byLit, nil, nil)
}

// Add registers clause {a, b}. Duplicate and tautological ({a, a.Opposite()})
// clauses are accepted: they cost redundant propagation work but cannot
// violate any invariant, so no effort is spent deduplicating them.
func (b *BinaryClauses) Add(a, c Literal) {
	b.byLit[a] = append(b.byLit[a], c)
	b.byLit[c] = append(b.byLit[c], a)
}

// Others returns the other-literal of every binary clause containing lit.
func (b *BinaryClauses) Others(lit Literal) []Literal {
	return b.byLit[lit]
}

// Count returns the number of binary clauses containing lit.
func (b *BinaryClauses) Count(lit Literal) int {
	return len(b.byLit[lit])
}
