package sweep

import (
	"github.com/google/btree"
)

// eventQueue is the min-priority queue of pending sweep events, keyed by the event
// ordering of compareSweepEvents.
//
// It is realized as a balanced ordered set (B-tree) rather than a binary heap
// because the resolver re-keys queued events: when a split shrinks the pair vertex
// of a still-queued event, that event's sort position changes. Re-keying is a
// remove under the old key followed by a push under the new one, so removal MUST
// happen before the event is mutated. The unique event id makes the ordering a
// strict total order, so distinct events never collide in the set.
type eventQueue struct {
	tree *btree.BTreeG[*sweepEvent]
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		tree: btree.NewG(2, func(a, b *sweepEvent) bool {
			return compareSweepEvents(a, b) < 0
		}),
	}
}

// push inserts e into the queue.
func (q *eventQueue) push(e *sweepEvent) {
	q.tree.ReplaceOrInsert(e)
}

// pop removes and returns the next event in sweep order.
func (q *eventQueue) pop() (*sweepEvent, bool) {
	return q.tree.DeleteMin()
}

// peek returns the next event in sweep order without removing it.
func (q *eventQueue) peek() (*sweepEvent, bool) {
	return q.tree.Min()
}

// remove deletes e from the queue under its current sort keys, reporting whether it
// was present. Call before mutating any field the ordering reads.
func (q *eventQueue) remove(e *sweepEvent) bool {
	_, found := q.tree.Delete(e)
	return found
}

// len returns the number of queued events.
func (q *eventQueue) len() int {
	return q.tree.Len()
}
