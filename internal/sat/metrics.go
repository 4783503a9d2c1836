package sat

// ema is an exponential moving average, used here purely for observability:
// nothing in the search loop reads its value back. Decisions and restarts
// (were this core to have any) must never depend on it.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
	} else {
		e.value = e.decay*e.value + x*(1-e.decay)
	}
}

// Metrics accumulates counters and moving averages over a solve, for a
// caller (typically the CLI driver) to report once search is done. It has
// no effect on search behavior: this core has no restarts or clause
// deletion, so nothing here ever needs to be consulted mid-search.
type Metrics struct {
	Decisions  int
	Conflicts  int
	Propagations int

	trailAtConflict ema
}

// NewMetrics returns a zeroed metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{trailAtConflict: newEMA(0.99)}
}

// AvgTrailAtConflict returns the exponential moving average of the trail
// length observed at each conflict so far.
func (m *Metrics) AvgTrailAtConflict() float64 {
	return m.trailAtConflict.value
}

func (m *Metrics) recordDecision() {
	m.Decisions++
}

func (m *Metrics) recordConflict(trailLen int) {
	m.Conflicts++
	m.trailAtConflict.add(float64(trailLen))
}

func (m *Metrics) recordPropagations(n int) {
	m.Propagations += n
}
