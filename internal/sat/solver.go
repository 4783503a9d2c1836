package sat

// Solver is the CDCL facade: it owns the assignment, trail, the two clause
// stores, their watch lists, the conflict analyzer, and both decision
// heuristics, and exposes the ingestion and query surface described in
// section 6. The solving loop itself lives in search.go.
type Solver struct {
	numVars    int
	assignment *Assignment
	bin        *BinaryClauses
	arena      *ClauseArena
	watches    *WatchLists
	trail      *Trail
	bcp        *BCP
	analyzer   *Analyzer
	dlis       *Dlis
	order      *UnassignedOrder
	metrics    *Metrics

	// UseDLIS selects the decision heuristic. When true (the default),
	// decisions use the DLIS heuristic (spec 4.8). When false, decisions
	// fall back to the lowest-index unassigned variable, set positive. It is
	// exported so a caller can flip heuristics between searches; NewSolver
	// only uses it to seed the initial value from Options.
	UseDLIS bool

	// maxConflicts bounds Step's tolerance for conflicts before it gives up
	// and reports Unknown (see Options.MaxConflicts). Negative means
	// unlimited.
	maxConflicts int

	isUnsat bool
}

// NewSolver returns an empty solver with zero variables, configured per
// opts.
func NewSolver(opts Options) *Solver {
	assignment := &Assignment{}
	bin := &BinaryClauses{}
	arena := &ClauseArena{}
	watches := &WatchLists{}
	trail := NewTrail()
	return &Solver{
		assignment:   assignment,
		bin:          bin,
		arena:        arena,
		watches:      watches,
		trail:        trail,
		bcp:          NewBCP(trail, assignment, bin, arena, watches),
		analyzer:     NewAnalyzer(trail, arena),
		dlis:         NewDlis(),
		order:        NewUnassignedOrder(),
		metrics:      NewMetrics(),
		UseDLIS:      opts.UseDLIS,
		maxConflicts: opts.MaxConflicts,
	}
}

// NewDefaultSolver returns a solver configured with DefaultOptions. This is
// equivalent to calling NewSolver with DefaultOptions().
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions())
}

// Metrics returns the solver's running counters and moving averages. These
// are purely observational: nothing in Step reads them back to influence
// search.
func (s *Solver) Metrics() *Metrics {
	return s.metrics
}

// NumVars returns the number of variables declared so far.
func (s *Solver) NumVars() int {
	return s.numVars
}

// AddVariable declares a fresh, unassigned variable and returns its ID.
func (s *Solver) AddVariable() int {
	v := s.numVars
	s.numVars++
	s.assignment.Grow()
	s.trail.Grow()
	s.bin.Grow()
	s.watches.Grow()
	s.dlis.Grow()
	s.analyzer.Grow()
	s.order.AddVar(v)
	return v
}

// AddClause adds a clause over previously declared variables, first
// unwinding the trail to decision level 0 if a previous Solve/Step left a
// decision open. There is no support for assumption-literal incremental
// solving (Non-goal): a caller can only add clauses between complete
// searches, never push a clause scoped to a live set of assumptions.
//
// An empty clause marks the instance immediately unsatisfiable. A unit
// clause is asserted at the root; if it contradicts an already-asserted
// root literal, the instance is marked unsatisfiable. Two-literal clauses
// are added to the binary index; clauses of three or more literals are
// appended to the arena with watches installed on their first two literals.
func (s *Solver) AddClause(lits []Literal) error {
	for _, l := range lits {
		v := l.VarID()
		if v < 0 || v >= s.numVars {
			return ErrVariableOutOfRange
		}
	}

	if s.trail.DecisionLevel() > 0 {
		for _, v := range s.trail.Backtrack(s.assignment, 0) {
			s.order.Unassign(v)
		}
	}

	switch len(lits) {
	case 0:
		s.isUnsat = true
		return nil
	case 1:
		s.assertRootUnit(lits[0])
		return nil
	case 2:
		s.bin.Add(lits[0], lits[1])
		return nil
	default:
		s.addLongClause(lits)
		return nil
	}
}

func (s *Solver) assertRootUnit(lit Literal) {
	if s.isUnsat {
		return
	}
	switch s.assignment.LitValue(lit) {
	case True:
		return
	case False:
		s.isUnsat = true
		return
	}
	s.trail.Assign(s.assignment, lit, 0, Reason{Kind: ReasonUnit})
}

func (s *Solver) addLongClause(lits []Literal) ClauseIndex {
	idx := s.arena.Add(lits)
	c := s.arena.Get(idx)
	s.watches.Add(c.Lit(0).Opposite(), Watch{Clause: idx, Blocker: c.Lit(1)})
	s.watches.Add(c.Lit(1).Opposite(), Watch{Clause: idx, Blocker: c.Lit(0)})
	return idx
}

// Value returns lit's current truth value.
func (s *Solver) Value(lit Literal) LBool {
	return s.assignment.LitValue(lit)
}

// Assignment returns a total assignment over every declared variable. A
// variable neither DLIS nor the fallback heuristic ever had to fix is a
// don't-care with respect to satisfiability and is reported as False.
func (s *Solver) Assignment() []Literal {
	out := make([]Literal, s.numVars)
	for v := 0; v < s.numVars; v++ {
		if s.assignment.Value(v) == True {
			out[v] = PositiveLiteral(v)
		} else {
			out[v] = NegativeLiteral(v)
		}
	}
	return out
}
