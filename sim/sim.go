package sim

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/pagesim/policy"
	"github.com/IvanBrykalov/pagesim/policy/fifo"
	"github.com/IvanBrykalov/pagesim/policy/lru"
	"github.com/IvanBrykalov/pagesim/policy/optimal"
	"github.com/IvanBrykalov/pagesim/policy/secondchance"
)

// ErrInvalidCapacity is returned by Run when a requested capacity is < 1.
// Capacity 0 is undefined for replacement policies (there is no resident
// page to evict), so it is rejected up front rather than run silently.
var ErrInvalidCapacity = errors.New("sim: capacity must be >= 1")

// DefaultPolicies returns the standard four policies in their canonical
// evaluation order.
func DefaultPolicies() []policy.Policy {
	return []policy.Policy{fifo.New(), secondchance.New(), lru.New(), optimal.New()}
}

// Run replays the trace under every configured policy at every requested
// capacity and returns one CapacityReport per capacity, in input order.
//
// The trace is treated as read-only and may be shared freely across runs.
// All capacities are validated before any run executes.
func Run(trace []int, capacities []int, opt Options) ([]CapacityReport, error) {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policies == nil {
		opt.Policies = DefaultPolicies()
	}
	for _, c := range capacities {
		if c < 1 {
			return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, c)
		}
	}

	// results[ci][pi]: each run owns exactly one slot, so the parallel
	// path needs no locking.
	results := make([][]PolicyResult, len(capacities))
	for ci := range capacities {
		results[ci] = make([]PolicyResult, len(opt.Policies))
	}

	if opt.Parallel {
		var g errgroup.Group
		for ci, c := range capacities {
			ci, c := ci, c
			for pi, p := range opt.Policies {
				pi, p := pi, p
				g.Go(func() error {
					results[ci][pi] = runOne(trace, p, c, opt.Metrics)
					return nil
				})
			}
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for ci, c := range capacities {
			for pi, p := range opt.Policies {
				results[ci][pi] = runOne(trace, p, c, opt.Metrics)
			}
		}
	}

	reports := make([]CapacityReport, len(capacities))
	for ci, c := range capacities {
		reports[ci] = buildReport(c, results[ci])
	}
	return reports, nil
}

// runOne replays the whole trace through a fresh Replacer and aggregates
// the outcome counts.
func runOne(trace []int, p policy.Policy, capacity int, m Metrics) PolicyResult {
	r := p.New(trace, capacity)
	res := PolicyResult{Policy: p.Name()}

	for i, page := range trace {
		out, _, evicted := r.Access(i, page)
		if out == policy.Hit {
			res.Hits++
			m.Hit(res.Policy)
		} else {
			res.Faults++
			m.Fault(res.Policy)
		}
		if evicted {
			m.Evict(res.Policy)
		}
	}

	if n := len(trace); n > 0 {
		res.FailureRate = float64(res.Faults) / float64(n) * 100
		res.SuccessRate = float64(res.Hits) / float64(n) * 100
	}
	return res
}

// buildReport selects best/worst by strict comparison against a running
// extremum (best starts at 0%, worst at 100%); the first policy seen wins
// ties.
func buildReport(capacity int, results []PolicyResult) CapacityReport {
	rep := CapacityReport{Capacity: capacity, Results: results, WorstRate: 100}
	for _, r := range results {
		if r.SuccessRate > rep.BestRate {
			rep.BestRate = r.SuccessRate
			rep.Best = r.Policy
		}
		if r.SuccessRate < rep.WorstRate {
			rep.WorstRate = r.SuccessRate
			rep.Worst = r.Policy
		}
	}
	return rep
}
