// Package sim evaluates page-replacement policies against a shared
// reference string and reports comparative hit/fault statistics per
// frame capacity.
//
// Design
//
//   - Policies: each policy lives in its own package under policy/ and is
//     plugged in via the policy.Policy factory interface. The default set
//     is FIFO, Second-Chance (clock), LRU, and Belady's Optimal.
//
//   - Runs: every (policy, capacity) pair gets a fresh policy.Replacer;
//     runs share nothing but the read-only trace, so Options.Parallel can
//     execute them concurrently with identical results.
//
//   - Results: Run returns one CapacityReport per requested capacity, in
//     input order, each holding a PolicyResult per policy plus the best
//     and worst policy by success rate. Faults+Hits always equals the
//     trace length.
//
//   - Metrics: Options.Metrics receives per-policy hit/fault/eviction
//     signals. NoopMetrics is the default; metrics/prom provides a
//     Prometheus adapter.
//
// Basic usage
//
//	ref, _ := trace.Uniform(16, 7, 42)
//	reports, err := sim.Run(ref, []int{3, 4, 5}, sim.Options{})
//	if err != nil {
//	    // only configuration errors: an invalid capacity
//	}
//	report.Write(os.Stdout, ref, reports)
//
// Error handling
//
// The simulation itself is pure computation and cannot fail; the only
// errors are configuration errors (capacity < 1), surfaced before any
// policy runs. An empty trace is valid and yields all-zero results.
package sim
