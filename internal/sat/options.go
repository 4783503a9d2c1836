package sat

// Options configures a Solver at construction time (spec 6's Configuration
// ambient concern), mirroring the teacher's Options/DefaultOptions pattern.
type Options struct {
	// UseDLIS seeds Solver.UseDLIS; see its doc for what toggling it does.
	UseDLIS bool

	// MaxConflicts bounds how many conflicts Step/Solve will tolerate before
	// giving up and reporting Unknown rather than continuing the search.
	// Negative means unlimited.
	MaxConflicts int
}

// DefaultOptions is what NewDefaultSolver builds from: DLIS enabled, no
// conflict limit.
func DefaultOptions() Options {
	return Options{UseDLIS: true, MaxConflicts: -1}
}
