package policy

// Outcome classifies the resolution of a single page reference.
type Outcome int

const (
	// Hit — the page was already resident; no frame changes.
	Hit Outcome = iota
	// Fault — the page was absent and had to be brought in,
	// possibly evicting a resident page.
	Fault
)

// String returns a stable label for the outcome (used by metrics/reports).
func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "fault"
}

// Replacer replays one reference string at a fixed frame capacity,
// one access at a time, keeping its own private resident-set state.
//
// A Replacer is created fresh per run and is not safe for concurrent use;
// independent runs never share state, so the harness may execute them in
// parallel without synchronization.
type Replacer interface {
	// Access resolves the reference at position i of the trace.
	// evicted is meaningful only when wasEvicted is true.
	//
	// Positions must be fed in strictly increasing order starting at 0;
	// recency-based policies use i as the logical timestamp.
	Access(i int, page int) (out Outcome, evicted int, wasEvicted bool)

	// Len returns the number of resident pages. It never exceeds the
	// capacity the Replacer was created with.
	Len() int
}

// Policy is a named factory that creates per-run Replacer instances.
//
// Every factory receives the full trace so the harness can iterate a fixed
// list of policies uniformly; only the clairvoyant policy retains it, the
// online ones ignore it. Capacity must be >= 1 (the harness validates).
type Policy interface {
	Name() string
	New(trace []int, capacity int) Replacer
}
