package sweep

import (
	"testing"

	"github.com/chuong9x/graphical/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_PopsInSweepOrder(t *testing.T) {
	q := newEventQueue()

	l1, r1 := testEventPair(5, 5, 10, 0, polygonNone, 0)
	l2, r2 := testEventPair(0, 0, 5, 5, polygonNone, 2)

	for _, e := range []*sweepEvent{l1, r1, l2, r2} {
		q.push(e)
	}
	require.Equal(t, 4, q.len())

	// (0,0)L, then at (5,5) the right event before the left, then (10,0)R.
	expected := []*sweepEvent{l2, r2, l1, r1}
	for i, want := range expected {
		got, ok := q.pop()
		require.True(t, ok)
		assert.Same(t, want, got, "pop %d", i)
	}
	_, ok := q.pop()
	assert.False(t, ok, "queue drained")
}

func TestEventQueue_Peek(t *testing.T) {
	q := newEventQueue()
	l, r := testEventPair(0, 0, 1, 1, polygonNone, 0)
	q.push(l)
	q.push(r)

	got, ok := q.peek()
	require.True(t, ok)
	assert.Same(t, l, got)
	assert.Equal(t, 2, q.len(), "peek does not remove")
}

func TestEventQueue_RemoveThenMutateThenReinsert(t *testing.T) {
	// The re-key protocol: pull an event out under its old keys, mutate, reinsert.
	q := newEventQueue()

	l1, r1 := testEventPair(0, 0, 10, 0, polygonNone, 0)
	l2, r2 := testEventPair(1, 1, 2, 1, polygonNone, 2)
	for _, e := range []*sweepEvent{l1, r1, l2, r2} {
		q.push(e)
	}

	// Shrink segment 1's right endpoint from (10,0) to (0.5,0); r1 must re-key
	// ahead of segment 2's events.
	require.True(t, q.remove(r1))
	require.True(t, q.remove(l1))
	r1.vertex = point.New(0.5, 0)
	q.push(r1)
	q.push(l1)

	var order []*sweepEvent
	for q.len() > 0 {
		e, _ := q.pop()
		order = append(order, e)
	}
	assert.Equal(t, []*sweepEvent{l1, r1, l2, r2}, order)
}

func TestEventQueue_RemoveAbsent(t *testing.T) {
	q := newEventQueue()
	l, r := testEventPair(0, 0, 1, 1, polygonNone, 0)
	q.push(l)

	assert.False(t, q.remove(r), "event never queued")
	assert.True(t, q.remove(l))
	assert.False(t, q.remove(l), "already removed")
}
