package secondchance

import (
	"testing"

	"github.com/IvanBrykalov/pagesim/policy"
)

// replay feeds a whole trace through a fresh replacer, checking the
// resident-size bound on every access, and returns the aggregate counts
// plus the eviction order.
func replay(t *testing.T, trace []int, capacity int) (faults, hits int, evictions []int) {
	t.Helper()
	r := New().New(trace, capacity)
	for i, page := range trace {
		out, ev, ok := r.Access(i, page)
		if out == policy.Fault {
			faults++
		} else {
			hits++
		}
		if ok {
			evictions = append(evictions, ev)
		}
		if r.Len() > capacity {
			t.Fatalf("resident set %d exceeds capacity %d after access %d", r.Len(), capacity, i)
		}
	}
	return faults, hits, evictions
}

// On the classic textbook trace every fault arrives with all bits set, so
// the hand degrades to pure FIFO order: 9 faults, 3 hits.
func TestSecondChance_TextbookScenario(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	faults, hits, evictions := replay(t, trace, 3)

	if faults != 9 || hits != 3 {
		t.Fatalf("want 9 faults / 3 hits, got %d / %d", faults, hits)
	}
	want := []int{1, 2, 3, 4, 1, 2}
	for i := range want {
		if evictions[i] != want[i] {
			t.Fatalf("want evictions %v, got %v", want, evictions)
		}
	}
}

// A referenced page survives a scan that a pure FIFO queue would evict it
// from: after the hit on 2, the fault on 5 skips 2 (clearing its bit) and
// takes 3 instead. FIFO on the same trace would evict 2.
func TestSecondChance_ReferenceBitSavesPage(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 3, 4, 2, 5, 2}
	faults, hits, evictions := replay(t, trace, 3)

	if faults != 5 || hits != 2 {
		t.Fatalf("want 5 faults / 2 hits, got %d / %d", faults, hits)
	}
	if len(evictions) != 2 || evictions[0] != 1 || evictions[1] != 3 {
		t.Fatalf("want evictions [1 3], got %v", evictions)
	}
}

// A single frame with its bit always set exercises the full two-pass
// bound: the scan clears the bit on the first pass and evicts on the
// second, never looping.
func TestSecondChance_SingleFrameAlternatingTrace(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 1, 2, 1, 2, 1, 2}
	faults, hits, evictions := replay(t, trace, 1)

	if faults != len(trace) || hits != 0 {
		t.Fatalf("want all faults, got %d faults / %d hits", faults, hits)
	}
	// Every fault after warm-up evicts the previous page.
	if len(evictions) != len(trace)-1 {
		t.Fatalf("want %d evictions, got %d", len(trace)-1, len(evictions))
	}
}

// A hit sets the reference bit without moving the page; Len stays stable
// once the frames are full.
func TestSecondChance_LenStableAfterWarmup(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 3, 1, 4, 5, 1, 6}
	r := New().New(trace, 3)
	for i, page := range trace {
		r.Access(i, page)
		if i >= 2 && r.Len() != 3 {
			t.Fatalf("resident set must stay at capacity after warm-up, got %d at access %d", r.Len(), i)
		}
	}
}
