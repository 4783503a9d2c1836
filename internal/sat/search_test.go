package sat

import "testing"

func TestStep_MakesOneDecisionPerCallUntilFixpoint(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 2)
	if err := s.AddClause([]Literal{PositiveLiteral(vs[0]), PositiveLiteral(vs[1])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}

	steps := 0
	for {
		done, _ := s.Step()
		steps++
		if done {
			break
		}
		if steps > 10 {
			t.Fatal("Step() did not converge within 10 iterations")
		}
	}
	if s.Metrics().Decisions == 0 {
		t.Error("expected at least one decision to be recorded")
	}
	// No conflict arises here, so every call but the final one decides once.
	if got := s.Metrics().Decisions; got != steps-1 {
		t.Errorf("Decisions = %d after %d Step calls, want %d", got, steps, steps-1)
	}
}

func TestStep_RootLevelConflictIsImmediatelyUnsatWithoutAnalysis(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 2)
	// x0 is forced true at the root; (!x0 v x1) and (!x0 v !x1) then
	// conflict as soon as propagation reaches x0, before any decision is
	// ever made.
	if err := s.AddClause([]Literal{PositiveLiteral(vs[0])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(vs[0]), PositiveLiteral(vs[1])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(vs[0]), NegativeLiteral(vs[1])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}

	done, status := s.Step()
	if !done || status != False {
		t.Fatalf("Step() = (%v, %v), want (true, False) on a root-level conflict", done, status)
	}
	if s.Metrics().Conflicts == 0 {
		t.Error("expected the root-level conflict to be recorded")
	}
}

func TestDecide_FallsBackToLowestIndexWhenDLISDisabled(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 3)
	if err := s.AddClause([]Literal{PositiveLiteral(vs[0]), PositiveLiteral(vs[1]), PositiveLiteral(vs[2])}); err != nil {
		t.Fatalf("AddClause error = %v", err)
	}
	s.UseDLIS = false

	lit, ok := s.decide()
	if !ok {
		t.Fatal("decide() reported no candidate")
	}
	if lit != PositiveLiteral(vs[0]) {
		t.Errorf("decide() = %v, want PositiveLiteral(%d) (lowest-index fallback)", lit, vs[0])
	}
}

func TestAssert_LearnedUnitClauseAssignsAtRoot(t *testing.T) {
	s := NewDefaultSolver()
	vs := newVars(s, 1)
	s.assert([]Literal{PositiveLiteral(vs[0])})

	if got := s.Value(PositiveLiteral(vs[0])); got != True {
		t.Errorf("Value() = %v, want True", got)
	}
	if got := s.trail.ReasonOf(vs[0]); got.Kind != ReasonUnit {
		t.Errorf("ReasonOf() = %+v, want ReasonUnit", got)
	}
}
