// Package optimal implements Belady's clairvoyant replacement policy.
//
// The policy needs the full trace up front (an offline algorithm) and is
// useful only as a best-case baseline; it cannot run in a real online
// system.
package optimal

import (
	"math"

	"github.com/IvanBrykalov/pagesim/policy"
)

// optimal evicts the resident page whose next use lies farthest in the
// future; a page never referenced again counts as infinitely far.
//
// Victim selection walks the frames slice in fixed slot order with a
// strict ">" comparison, so among pages tied for farthest next use the
// earliest-installed frame wins. This makes the tie-break explicit and
// reproducible instead of depending on map-iteration order.
//
// Each fault at capacity re-scans the remainder of the trace per resident
// page, costing O(remaining * capacity). Fine for simulation-sized runs;
// not intended for long traces.
type optimal struct {
	trace    []int
	capacity int
	frames   []int
	resident map[int]struct{}
}

type optimalPolicy struct{}

// New returns the Optimal policy factory.
func New() policy.Policy { return optimalPolicy{} }

func (optimalPolicy) Name() string { return "Optimal" }

func (optimalPolicy) New(trace []int, capacity int) policy.Replacer {
	return &optimal{
		trace:    trace,
		capacity: capacity,
		frames:   make([]int, 0, capacity),
		resident: make(map[int]struct{}, capacity),
	}
}

func (o *optimal) Access(i int, page int) (policy.Outcome, int, bool) {
	if _, ok := o.resident[page]; ok {
		return policy.Hit, 0, false
	}

	var evicted int
	var wasEvicted bool
	if len(o.frames) == o.capacity {
		slot := o.victimSlot(i)
		evicted = o.frames[slot]
		delete(o.resident, evicted)
		o.frames[slot] = page
		wasEvicted = true
	} else {
		o.frames = append(o.frames, page)
	}
	o.resident[page] = struct{}{}
	return policy.Fault, evicted, wasEvicted
}

// victimSlot returns the frame whose page has the farthest next use
// strictly after position i.
func (o *optimal) victimSlot(i int) int {
	slot := 0
	farthest := o.nextUse(i+1, o.frames[0])
	for s := 1; s < len(o.frames); s++ {
		if d := o.nextUse(i+1, o.frames[s]); d > farthest {
			farthest = d
			slot = s
		}
	}
	return slot
}

// nextUse returns the first position >= from at which page occurs,
// or math.MaxInt if it never occurs again.
func (o *optimal) nextUse(from int, page int) int {
	for j := from; j < len(o.trace); j++ {
		if o.trace[j] == page {
			return j
		}
	}
	return math.MaxInt
}

func (o *optimal) Len() int { return len(o.frames) }
