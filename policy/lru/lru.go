// Package lru implements the Least-Recently-Used page-replacement policy.
package lru

import "github.com/IvanBrykalov/pagesim/policy"

// lru records, for every resident page, the trace index of its most recent
// access and evicts the strict minimum on a fault at capacity.
//
// Timestamps are unique because the trace index is strictly increasing,
// so the minimum is always unambiguous. The victim scan still walks the
// frames slice in fixed slot order, keeping the choice deterministic by
// construction rather than by map-iteration accident.
type lru struct {
	capacity int
	frames   []int       // fixed slot order for the victim scan
	lastUsed map[int]int // resident page -> trace index of last access
}

type lruPolicy struct{}

// New returns the LRU policy factory.
func New() policy.Policy { return lruPolicy{} }

func (lruPolicy) Name() string { return "LRU" }

func (lruPolicy) New(_ []int, capacity int) policy.Replacer {
	return &lru{
		capacity: capacity,
		frames:   make([]int, 0, capacity),
		lastUsed: make(map[int]int, capacity),
	}
}

func (l *lru) Access(i int, page int) (policy.Outcome, int, bool) {
	if _, ok := l.lastUsed[page]; ok {
		l.lastUsed[page] = i
		return policy.Hit, 0, false
	}

	var evicted int
	var wasEvicted bool
	if len(l.frames) == l.capacity {
		slot := l.victimSlot()
		evicted = l.frames[slot]
		delete(l.lastUsed, evicted)
		l.frames[slot] = page
		wasEvicted = true
	} else {
		l.frames = append(l.frames, page)
	}
	l.lastUsed[page] = i
	return policy.Fault, evicted, wasEvicted
}

// victimSlot returns the frame holding the least recently used page.
func (l *lru) victimSlot() int {
	slot := 0
	min := l.lastUsed[l.frames[0]]
	for s := 1; s < len(l.frames); s++ {
		if ts := l.lastUsed[l.frames[s]]; ts < min {
			min = ts
			slot = s
		}
	}
	return slot
}

func (l *lru) Len() int { return len(l.frames) }
