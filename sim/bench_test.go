package sim

import (
	"testing"

	"github.com/IvanBrykalov/pagesim/trace"
)

// Per-policy replay cost over a skewed trace. The Optimal policy re-scans
// the remaining trace on every fault, so it dominates; the others are
// near-linear.
func BenchmarkPolicies(b *testing.B) {
	ref, err := trace.Zipf(2048, 64, 1.2, 1.0, 1)
	if err != nil {
		b.Fatal(err)
	}

	for _, p := range DefaultPolicies() {
		b.Run(p.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				runOne(ref, p, 16, NoopMetrics{})
			}
		})
	}
}

// Whole-harness cost across several capacities, serial vs parallel.
func BenchmarkRun(b *testing.B) {
	ref, err := trace.Zipf(2048, 64, 1.2, 1.0, 1)
	if err != nil {
		b.Fatal(err)
	}
	capacities := []int{4, 8, 16, 32}

	for _, parallel := range []bool{false, true} {
		name := "serial"
		if parallel {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Run(ref, capacities, Options{Parallel: parallel}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
