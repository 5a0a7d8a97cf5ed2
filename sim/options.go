package sim

import "github.com/IvanBrykalov/pagesim/policy"

// Options configures a simulation. Zero values are safe; defaults are
// applied in Run():
//   - nil Policies => the standard four (FIFO, Second-Chance, LRU, Optimal)
//   - nil Metrics  => NoopMetrics
type Options struct {
	// Policies are evaluated in order at every capacity.
	Policies []policy.Policy

	// Metrics receives per-policy hit/fault/eviction signals.
	Metrics Metrics

	// Parallel runs the independent (policy, capacity) pairs concurrently.
	// Results are identical to the serial path; runs share only the
	// read-only trace.
	Parallel bool
}
