package sat

import "testing"

func newVars(s *Solver, n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = s.AddVariable()
	}
	return vs
}

func TestSolver_EmptyClauseIsImmediatelyUnsat(t *testing.T) {
	s := NewDefaultSolver()
	newVars(s, 1)
	if err := s.AddClause(nil); err != nil {
		t.Fatalf("AddClause(nil) error = %v", err)
	}
	if status := s.Solve(); status != False {
		t.Errorf("Solve() = %v, want False (empty clause)", status)
	}
}

func TestSolver_ContradictingUnitClausesAreUnsat(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 1)
	if err := s.AddClause([]Literal{PositiveLiteral(vs[0])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(vs[0])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	if status := s.Solve(); status != False {
		t.Errorf("Solve() = %v, want False (contradicting units)", status)
	}
}

func TestSolver_VariableOutOfRangeRejected(t *testing.T) {
	s := NewDefaultSolver()
	newVars(s, 1)
	err := s.AddClause([]Literal{PositiveLiteral(5)})
	if err != ErrVariableOutOfRange {
		t.Errorf("AddClause error = %v, want ErrVariableOutOfRange", err)
	}
}

// pigeonholeClauses returns a small unsatisfiable instance (3 pigeons, 2
// holes: each pigeon in at least one hole, no hole holds two pigeons) to
// exercise a nontrivial search with conflicts and backjumps.
func pigeonholeClauses(s *Solver) {
	// variable layout: v[p][h] = p*2+h for p in 0..3, h in 0..2
	v := func(p, h int) int { return p*2 + h }
	for p := 0; p < 3; p++ {
		s.AddClause([]Literal{PositiveLiteral(v(p, 0)), PositiveLiteral(v(p, 1))})
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				s.AddClause([]Literal{NegativeLiteral(v(p1, h)), NegativeLiteral(v(p2, h))})
			}
		}
	}
}

func TestSolver_PigeonholeIsUnsatUnderBothHeuristics(t *testing.T) {
	for _, useDLIS := range []bool{true, false} {
		s := NewDefaultSolver()
		newVars(s, 6)
		pigeonholeClauses(s)
		s.UseDLIS = useDLIS
		if status := s.Solve(); status != False {
			t.Errorf("UseDLIS=%v: Solve() = %v, want False (pigeonhole)", useDLIS, status)
		}
		if s.Metrics().Conflicts == 0 {
			t.Errorf("UseDLIS=%v: expected at least one conflict to be recorded", useDLIS)
		}
	}
}

func TestSolver_SatisfiableInstanceAgreesAcrossHeuristics(t *testing.T) {
	for _, useDLIS := range []bool{true, false} {
		s := NewDefaultSolver()
		vs := newVars(s, 3)
		// (x0 v x1 v x2) and (!x0 v !x1): satisfiable, e.g. x0=F,x1=F,x2=T.
		if err := s.AddClause([]Literal{PositiveLiteral(vs[0]), PositiveLiteral(vs[1]), PositiveLiteral(vs[2])}); err != nil {
			t.Fatalf("AddClause error = %v", err)
		}
		if err := s.AddClause([]Literal{NegativeLiteral(vs[0]), NegativeLiteral(vs[1])}); err != nil {
			t.Fatalf("AddClause error = %v", err)
		}
		s.UseDLIS = useDLIS
		if status := s.Solve(); status != True {
			t.Fatalf("UseDLIS=%v: Solve() = %v, want True", useDLIS, status)
		}

		assignment := s.Assignment()
		clauseOK := false
		for _, l := range []Literal{assignment[vs[0]], assignment[vs[1]], assignment[vs[2]]} {
			if l.IsPositive() {
				clauseOK = true
			}
		}
		if !clauseOK {
			t.Errorf("UseDLIS=%v: assignment %v does not satisfy (x0 v x1 v x2)", useDLIS, assignment)
		}
		if assignment[vs[0]].IsPositive() && assignment[vs[1]].IsPositive() {
			t.Errorf("UseDLIS=%v: assignment %v violates (!x0 v !x1)", useDLIS, assignment)
		}
	}
}

func TestSolver_AddClauseAfterSolveBacktracksToRoot(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 2)
	if err := s.AddClause([]Literal{PositiveLiteral(vs[0]), PositiveLiteral(vs[1])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	if status := s.Solve(); status != True {
		t.Fatalf("Solve() = %v, want True", status)
	}

	// Block whatever model was just found; this must not panic or leave the
	// solver in an inconsistent state even though Solve() left decisions on
	// the trail.
	model := s.Assignment()
	blocking := make([]Literal, len(model))
	for i, l := range model {
		blocking[i] = l.Opposite()
	}
	if err := s.AddClause(blocking); err != nil {
		t.Fatalf("AddClause(blocking) error = %v", err)
	}
	if status := s.Solve(); status != True {
		t.Errorf("Solve() after blocking clause = %v, want True (another model exists)", status)
	}
}

func TestSolver_MaxConflictsStopsSearchAsUnknown(t *testing.T) {
	s := NewSolver(Options{UseDLIS: true, MaxConflicts: 1})
	newVars(s, 6)
	pigeonholeClauses(s)

	status := s.Solve()
	if status != Unknown {
		t.Fatalf("Solve() = %v, want Unknown (conflict limit reached)", status)
	}
	if got := s.Metrics().Conflicts; got < 1 {
		t.Errorf("Metrics().Conflicts = %d, want at least 1", got)
	}
}

func TestSolver_NoConflictLimitByDefault(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxConflicts >= 0 {
		t.Errorf("DefaultOptions().MaxConflicts = %d, want negative (unlimited)", opts.MaxConflicts)
	}
	if !opts.UseDLIS {
		t.Error("DefaultOptions().UseDLIS = false, want true")
	}
}
