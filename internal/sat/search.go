package sat

import "context"

// Step runs one iteration of the CDCL loop (spec 4.9): propagate to a
// fixpoint, then either resolve a conflict by learning a clause and
// backjumping, or make a new decision. done reports whether the instance's
// status is now settled, in which case status gives the result: True or
// False when the search actually proved satisfiability, Unknown when Step
// gave up early because the conflict count reached maxConflicts without resolving the
// instance either way. The core never performs I/O; callers observing
// progress must do so through repeated Step calls or Solve/SolveContext
// below.
func (s *Solver) Step() (done bool, status LBool) {
	if s.isUnsat {
		return true, False
	}

	beforeLen := s.trail.Len()
	conflict, hasConflict := s.bcp.Propagate()
	s.metrics.recordPropagations(s.trail.Len() - beforeLen)

	if !hasConflict {
		lit, ok := s.decide()
		if !ok {
			return true, True
		}
		s.metrics.recordDecision()
		s.trail.DecideAndAssign(s.assignment, lit)
		return false, Unknown
	}

	s.metrics.recordConflict(s.trail.Len())

	if s.trail.DecisionLevel() == 0 {
		s.isUnsat = true
		return true, False
	}

	if s.maxConflicts >= 0 && s.metrics.Conflicts >= s.maxConflicts {
		return true, Unknown
	}

	learned, level := s.analyzer.Analyze(conflict)
	for _, v := range s.trail.Backtrack(s.assignment, level) {
		s.order.Unassign(v)
	}
	s.assert(learned)
	return false, Unknown
}

// decide picks the next branching literal, or reports false once no
// unassigned variable remains (or, under DLIS, once every remaining
// clause is already satisfied and the rest are don't-cares).
func (s *Solver) decide() (Literal, bool) {
	if s.UseDLIS {
		return s.dlis.Decide(s.assignment, s.bin, s.arena)
	}
	v, ok := s.order.FirstUnassigned(s.assignment)
	if !ok {
		return 0, false
	}
	return PositiveLiteral(v), true
}

// assert installs the clause learned by conflict analysis and immediately
// assigns its asserting literal, which the clause guarantees is unit at
// the decision level search just backjumped to.
func (s *Solver) assert(learned []Literal) {
	asserted := learned[0]
	level := s.trail.DecisionLevel()

	switch len(learned) {
	case 1:
		s.trail.Assign(s.assignment, asserted, 0, Reason{Kind: ReasonUnit})
	case 2:
		s.bin.Add(learned[0], learned[1])
		s.trail.Assign(s.assignment, asserted, level, Reason{
			Kind:  ReasonBinary,
			Other: learned[1],
		})
	default:
		idx := s.addLongClause(learned)
		s.trail.Assign(s.assignment, asserted, level, Reason{
			Kind:   ReasonLong,
			Clause: idx,
		})
	}
}

// Solve runs the search loop to completion and reports the instance's
// status: True or False once proven, or Unknown if the conflict count
// reached maxConflicts first (see Options.MaxConflicts).
func (s *Solver) Solve() LBool {
	for {
		done, status := s.Step()
		if done {
			return status
		}
	}
}

// SolveContext runs the search loop to completion, until the conflict count
// reaches maxConflicts, or until ctx is done, checked between steps. It returns
// ctx.Err() on cancellation and nil otherwise.
func (s *Solver) SolveContext(ctx context.Context) (LBool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Unknown, err
		}
		done, status := s.Step()
		if done {
			return status, nil
		}
	}
}
