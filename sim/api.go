package sim

// PolicyResult aggregates one policy's run over the trace at one capacity.
// Faults+Hits equals the trace length; rates are percentages and are zero
// for an empty trace.
type PolicyResult struct {
	Policy      string
	Faults      int
	Hits        int
	FailureRate float64
	SuccessRate float64
}

// CapacityReport holds the per-policy results for a single frame capacity,
// in policy order, plus the best and worst policy by success rate.
//
// Best/worst use a running extremum starting at 0% / 100% with strict
// comparisons, so the first policy seen wins ties. If every policy scores
// 0% (e.g. an empty trace), Best stays empty.
type CapacityReport struct {
	Capacity int
	Results  []PolicyResult

	Best      string
	BestRate  float64
	Worst     string
	WorstRate float64
}
