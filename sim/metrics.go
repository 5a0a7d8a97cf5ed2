package sim

// Metrics exposes simulation-level observability hooks, labeled by policy
// name. A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit(policy string)
	Fault(policy string)
	Evict(policy string)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit(string)   {}
func (NoopMetrics) Fault(string) {}
func (NoopMetrics) Evict(string) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
