package sat

import (
	"strings"
)

// ClauseIndex is a stable handle into the long-clause arena. Since this core
// never deletes clauses, an index remains valid for the lifetime of the
// solver once returned by ClauseArena.Add.
type ClauseIndex int

// Clause is a clause with three or more literals, held in the append-only
// arena. Literal order is maintained; positions 0 and 1 are always the
// clause's two watched positions (invariant I4).
type Clause struct {
	literals []Literal
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Lit returns the literal at position i.
func (c *Clause) Lit(i int) Literal {
	return c.literals[i]
}

// SetLit overwrites the literal at position i.
func (c *Clause) SetLit(i int, l Literal) {
	c.literals[i] = l
}

// Literals returns the clause's current literals. The caller must not retain
// the slice across a call that might mutate the clause (Propagate can
// reorder it).
func (c *Clause) Literals() []Literal {
	return c.literals
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseArena is the append-only store of long clauses. ClauseIndex values
// it hands out are stable forever: nothing in this core ever deletes or
// reorders a clause.
type ClauseArena struct {
	clauses []*Clause
}

// Add appends a new clause to the arena and returns its stable index. The
// caller is responsible for installing watches on literals[0] and
// literals[1] (see WatchLists).
func (a *ClauseArena) Add(literals []Literal) ClauseIndex {
	c := &Clause{literals: append([]Literal(nil), literals...)}
	a.clauses = append(a.clauses, c)
	return ClauseIndex(len(a.clauses) - 1)
}

// Get returns the clause at idx.
func (a *ClauseArena) Get(idx ClauseIndex) *Clause {
	return a.clauses[idx]
}

// Len returns the number of clauses currently in the arena.
func (a *ClauseArena) Len() int {
	return len(a.clauses)
}
