package fifo

import (
	"math/rand"
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

// The classic textbook scenario: 9 faults and 3 hits at 3 frames,
// with pages leaving in strict insertion order.
func TestFIFO_TextbookScenario(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	faults, hits, evictions := replay(t, trace, 3)

	if faults != 9 || hits != 3 {
		t.Fatalf("want 9 faults / 3 hits, got %d / %d", faults, hits)
	}
	want := []int{1, 2, 3, 4, 1, 2}
	if len(evictions) != len(want) {
		t.Fatalf("want evictions %v, got %v", want, evictions)
	}
	for i := range want {
		if evictions[i] != want[i] {
			t.Fatalf("want evictions %v, got %v", want, evictions)
		}
	}
}

// The same trace with 4 frames faults more often (10 > 9): FIFO is not a
// stack algorithm, so growing the frame set can hurt (Belady's anomaly).
func TestFIFO_BeladyAnomaly(t *testing.T) {
	t.Parallel()

	trace := []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}
	at3, _, _ := replay(t, trace, 3)
	at4, _, _ := replay(t, trace, 4)

	if at3 != 9 || at4 != 10 {
		t.Fatalf("want 9 faults at 3 frames and 10 at 4, got %d and %d", at3, at4)
	}
}

// A hit must not refresh a page's queue position: 1 is still the oldest
// arrival when 3 faults in.
func TestFIFO_HitDoesNotRefresh(t *testing.T) {
	t.Parallel()

	_, hits, evictions := replay(t, []int{1, 2, 1, 3}, 2)

	if hits != 1 {
		t.Fatalf("want 1 hit, got %d", hits)
	}
	if len(evictions) != 1 || evictions[0] != 1 {
		t.Fatalf("want eviction of page 1, got %v", evictions)
	}
}

// Faults+hits must equal the trace length for arbitrary traces.
func TestFIFO_OutcomesSumToLength(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	for _, capacity := range []int{1, 2, 3, 7} {
		trace := make([]int, 500)
		for i := range trace {
			trace[i] = r.Intn(12)
		}
		faults, hits, _ := replay(t, trace, capacity)
		if faults+hits != len(trace) {
			t.Fatalf("capacity %d: faults %d + hits %d != %d", capacity, faults, hits, len(trace))
		}
	}
}
