// Package fifo implements the FIFO page-replacement policy.
package fifo

import "github.com/IvanBrykalov/pagesim/policy"

// fifo keeps resident pages in arrival order and always evicts the
// oldest-inserted page. Hits do not refresh a page's position.
type fifo struct {
	capacity int
	queue    []int // head at index 0 = oldest arrival
	resident map[int]struct{}
}

type fifoPolicy struct{}

// New returns the FIFO policy factory.
func New() policy.Policy { return fifoPolicy{} }

func (fifoPolicy) Name() string { return "FIFO" }

func (fifoPolicy) New(_ []int, capacity int) policy.Replacer {
	return &fifo{
		capacity: capacity,
		queue:    make([]int, 0, capacity),
		resident: make(map[int]struct{}, capacity),
	}
}

func (f *fifo) Access(_ int, page int) (policy.Outcome, int, bool) {
	if _, ok := f.resident[page]; ok {
		return policy.Hit, 0, false
	}

	var evicted int
	var wasEvicted bool
	if len(f.queue) == f.capacity {
		evicted = f.queue[0]
		copy(f.queue, f.queue[1:])
		f.queue = f.queue[:len(f.queue)-1]
		delete(f.resident, evicted)
		wasEvicted = true
	}
	f.queue = append(f.queue, page)
	f.resident[page] = struct{}{}
	return policy.Fault, evicted, wasEvicted
}

func (f *fifo) Len() int { return len(f.queue) }
