// Package secondchance implements the Second-Chance (clock) policy.
package secondchance

import "github.com/IvanBrykalov/pagesim/policy"

// clock holds resident pages in a fixed circular buffer with one reference
// bit per frame and a scan cursor (the clock hand).
//
// A hit sets the frame's bit; a fault at capacity scans from the hand,
// clearing set bits until it finds a clear one, and evicts that frame.
// Each full pass clears every bit it skips, so a victim is always found
// within 2*capacity inspections; the scan is bounded accordingly instead
// of looping on the informal invariant.
type clock struct {
	capacity int
	frames   []int // grows to capacity during warm-up, then fixed
	bits     []bool
	hand     int
	slots    map[int]int // page -> frame index
}

type clockPolicy struct{}

// New returns the Second-Chance policy factory.
func New() policy.Policy { return clockPolicy{} }

func (clockPolicy) Name() string { return "Second-Chance" }

func (clockPolicy) New(_ []int, capacity int) policy.Replacer {
	return &clock{
		capacity: capacity,
		frames:   make([]int, 0, capacity),
		bits:     make([]bool, 0, capacity),
		slots:    make(map[int]int, capacity),
	}
}

func (c *clock) Access(_ int, page int) (policy.Outcome, int, bool) {
	if slot, ok := c.slots[page]; ok {
		c.bits[slot] = true
		return policy.Hit, 0, false
	}

	// Free frame during warm-up: no eviction needed.
	if len(c.frames) < c.capacity {
		c.slots[page] = len(c.frames)
		c.frames = append(c.frames, page)
		c.bits = append(c.bits, true)
		return policy.Fault, 0, false
	}

	for steps := 0; steps < 2*c.capacity; steps++ {
		if !c.bits[c.hand] {
			evicted := c.frames[c.hand]
			delete(c.slots, evicted)
			c.frames[c.hand] = page
			c.bits[c.hand] = true
			c.slots[page] = c.hand
			c.hand = (c.hand + 1) % c.capacity
			return policy.Fault, evicted, true
		}
		c.bits[c.hand] = false
		c.hand = (c.hand + 1) % c.capacity
	}
	// Unreachable: the first full pass clears every set bit, so the second
	// pass must stop at a clear one.
	panic("secondchance: bounded clock scan found no victim")
}

func (c *clock) Len() int { return len(c.frames) }
