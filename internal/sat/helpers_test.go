package sat

// testCore bundles a minimal set of components wired the way Solver wires
// them, for exercising BCP and conflict analysis directly without going
// through the full ingestion/search facade.
type testCore struct {
	assignment *Assignment
	bin        *BinaryClauses
	arena      *ClauseArena
	watches    *WatchLists
	trail      *Trail
	bcp        *BCP
	analyzer   *Analyzer
}

func newTestCore(numVars int) *testCore {
	c := &testCore{
		assignment: &Assignment{},
		bin:        &BinaryClauses{},
		arena:      &ClauseArena{},
		watches:    &WatchLists{},
		trail:      NewTrail(),
	}
	c.bcp = NewBCP(c.trail, c.assignment, c.bin, c.arena, c.watches)
	c.analyzer = NewAnalyzer(c.trail, c.arena)
	for i := 0; i < numVars; i++ {
		c.assignment.Grow()
		c.bin.Grow()
		c.watches.Grow()
		c.trail.Grow()
		c.analyzer.Grow()
	}
	return c
}

// addLongClause appends a long clause and installs its initial watches the
// way Solver.AddClause does.
func (c *testCore) addLongClause(lits []Literal) ClauseIndex {
	idx := c.arena.Add(lits)
	cl := c.arena.Get(idx)
	c.watches.Add(cl.Lit(0).Opposite(), Watch{Clause: idx, Blocker: cl.Lit(1)})
	c.watches.Add(cl.Lit(1).Opposite(), Watch{Clause: idx, Blocker: cl.Lit(0)})
	return idx
}
