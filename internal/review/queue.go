// Package review holds the host-side "mark for review" list. The engine
// has no concept of deferral: the queue only remembers which item ids the
// test-taker postponed, and the host re-presents them after the adaptive
// pass, recording a response only when the test-taker commits.
package review

// Queue is an ordered set of deferred item ids.
type Queue struct {
	order []string
	index map[string]bool
}

// NewQueue creates an empty review queue.
func NewQueue() *Queue {
	return &Queue{index: make(map[string]bool)}
}

// Defer adds an item id to the queue. Deferring an id twice is a no-op;
// the original position is kept.
func (q *Queue) Defer(itemID string) {
	if q.index[itemID] {
		return
	}
	q.index[itemID] = true
	q.order = append(q.order, itemID)
}

// Resolve removes an item id once a response has been committed for it.
func (q *Queue) Resolve(itemID string) {
	if !q.index[itemID] {
		return
	}
	delete(q.index, itemID)
	for i, id := range q.order {
		if id == itemID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether an item id is currently deferred.
func (q *Queue) Contains(itemID string) bool {
	return q.index[itemID]
}

// Pending returns the deferred ids in deferral order.
func (q *Queue) Pending() []string {
	out := make([]string, len(q.order))
	copy(out, q.order)
	return out
}

// Len returns the number of deferred items.
func (q *Queue) Len() int {
	return len(q.order)
}
