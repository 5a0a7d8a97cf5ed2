package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/pagesim/sim"
)

// Adapter implements sim.Metrics and exports Prometheus counters labeled
// by policy. Safe for concurrent use; all Prometheus metric types are
// goroutine-safe, so it works with sim.Options.Parallel.
type Adapter struct {
	hits   *prometheus.CounterVec
	faults *prometheus.CounterVec
	evicts *prometheus.CounterVec
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "hits_total",
				Help:        "Page hits by policy",
				ConstLabels: constLabels,
			},
			[]string{"policy"},
		),
		faults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "faults_total",
				Help:        "Page faults by policy",
				ConstLabels: constLabels,
			},
			[]string{"policy"},
		),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Evicted pages by policy",
				ConstLabels: constLabels,
			},
			[]string{"policy"},
		),
	}
	reg.MustRegister(a.hits, a.faults, a.evicts)
	return a
}

// Hit increments the hit counter for the policy.
func (a *Adapter) Hit(policy string) { a.hits.WithLabelValues(policy).Inc() }

// Fault increments the fault counter for the policy.
func (a *Adapter) Fault(policy string) { a.faults.WithLabelValues(policy).Inc() }

// Evict increments the eviction counter for the policy.
func (a *Adapter) Evict(policy string) { a.evicts.WithLabelValues(policy).Inc() }

// Compile-time check: ensure Adapter implements sim.Metrics.
var _ sim.Metrics = (*Adapter)(nil)
