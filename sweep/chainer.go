package sweep

import (
	"fmt"
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/chuong9x/graphical/point"
	"github.com/chuong9x/graphical/polygon"
)

// eventChainer accumulates the surviving left events of a boolean overlay and, after
// the sweep completes, stitches them back into closed polygons.
//
// Events arrive at the moment their edge leaves the status structure. The chainer
// applies the operation's keep/discard filter, then records each kept edge as an
// undirected arc between its endpoints. Ring reconstruction walks arcs vertex to
// vertex, always consuming an available arc, until it returns to its start.
//
// The vertex index is a red-black tree keyed on the lexicographic point order, so
// ring extraction visits start vertices deterministically regardless of arrival
// order.
type eventChainer struct {
	op    BooleanOperation
	arcs  []chainArc
	index *rbt.Tree
}

// chainArc is one surviving boundary edge awaiting ring assembly.
type chainArc struct {
	a, b point.Point
	used bool
}

// other returns the arc endpoint that is not p.
func (c chainArc) other(p point.Point) point.Point {
	if c.a.Eq(p) {
		return c.b
	}
	return c.a
}

func pointComparator(a, b interface{}) int {
	return a.(point.Point).CompareTo(b.(point.Point))
}

func newEventChainer(op BooleanOperation) *eventChainer {
	return &eventChainer{
		op:    op,
		arcs:  make([]chainArc, 0),
		index: rbt.NewWith(pointComparator),
	}
}

// take offers a left event whose edge just left the status structure. Events that
// fail the operation's filter are dropped; the rest become arcs.
func (c *eventChainer) take(ev *sweepEvent) {
	if !keepEvent(ev, c.op) {
		debugf("chainer drop %s (inside=%v inOut=%v label=%s)", ev, ev.isInside, ev.inOut, ev.label)
		return
	}
	debugf("chainer keep %s", ev)
	c.addArc(ev.vertex, ev.pair.vertex)
}

// keepEvent is the boolean filter deciding whether a surviving edge contributes to
// the result of op. A labelled edge (the surviving copy of a coincident pair) is
// decided by its label alone: letting it also pass the positional tests would keep
// same-transition boundary in a difference and break A \ A = ∅.
func keepEvent(ev *sweepEvent, op BooleanOperation) bool {
	switch ev.label {
	case labelNoContributing:
		return false
	case labelSameTransition:
		return op == BooleanIntersection || op == BooleanUnion
	case labelDifferentTransition:
		return op == BooleanDifference
	}
	switch op {
	case BooleanIntersection:
		return ev.isInside
	case BooleanUnion:
		return !ev.isInside
	case BooleanDifference:
		return (ev.polygonType == polygonSubject && !ev.isInside) ||
			(ev.polygonType == polygonClip && ev.isInside)
	}
	return false
}

// addArc records an undirected arc between a and b.
func (c *eventChainer) addArc(a, b point.Point) {
	idx := len(c.arcs)
	c.arcs = append(c.arcs, chainArc{a: a, b: b})
	c.indexArc(a, idx)
	c.indexArc(b, idx)
}

func (c *eventChainer) indexArc(p point.Point, idx int) {
	if v, found := c.index.Get(p); found {
		c.index.Put(p, append(v.([]int), idx))
		return
	}
	c.index.Put(p, []int{idx})
}

// chain assembles the recorded arcs into closed rings and returns them as polygons,
// outer rings counterclockwise and hole rings clockwise. An arc set that does not
// close is an invariant violation.
func (c *eventChainer) chain() ([]polygon.Polygon, error) {
	rings := make([]polygon.Polygon, 0)

	iter := c.index.Iterator()
	for iter.Next() {
		start := iter.Key().(point.Point)
		for c.hasUnusedArc(start) {
			ring, err := c.walkRing(start)
			if err != nil {
				return nil, err
			}
			if len(ring) >= 3 {
				rings = append(rings, polygon.New(ring...))
			}
		}
	}

	return orientRings(rings), nil
}

func (c *eventChainer) hasUnusedArc(p point.Point) bool {
	v, found := c.index.Get(p)
	if !found {
		return false
	}
	for _, idx := range v.([]int) {
		if !c.arcs[idx].used {
			return true
		}
	}
	return false
}

// walkRing traces one closed ring starting from start, consuming arcs as it goes.
// The first arc is approached as if arriving from straight above, so the walk's
// initial step is the outgoing arc with the smallest clockwise angle from north. The
// walk's winding depends on that step; chain normalizes winding afterwards.
func (c *eventChainer) walkRing(start point.Point) ([]point.Point, error) {
	ring := []point.Point{start}
	current := start
	incoming := point.New(0, -1)

	for {
		arcIdx, ok := c.nextArc(current, incoming)
		if !ok {
			return nil, fmt.Errorf("%w: open chain at %s", ErrInvariantViolation, current)
		}
		arc := &c.arcs[arcIdx]
		arc.used = true

		next := arc.other(current)
		if next.Eq(start) {
			return ring, nil
		}
		ring = append(ring, next)
		incoming = next.Sub(current)
		current = next
	}
}

// nextArc picks the unused arc to leave `at` by, given the direction the walk
// arrived with. At a pinch point (more than one available arc) the arc making the
// sharpest left turn is taken, which keeps each ring simple; ties fall to arc
// insertion order.
func (c *eventChainer) nextArc(at point.Point, incoming point.Point) (int, bool) {
	v, found := c.index.Get(at)
	if !found {
		return 0, false
	}

	reversed := incoming.Negate()
	best := -1
	bestAngle := math.Inf(1)
	for _, idx := range v.([]int) {
		if c.arcs[idx].used {
			continue
		}
		dir := c.arcs[idx].other(at).Sub(at)
		angle := clockwiseAngle(reversed, dir)
		if angle < bestAngle {
			best = idx
			bestAngle = angle
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// clockwiseAngle returns the angle of `to`, measured clockwise from `from`, in
// (0, 2π]. A candidate pointing straight back along `from` scores 2π, so doubling
// back is the last resort.
func clockwiseAngle(from, to point.Point) float64 {
	a := math.Atan2(from.Y(), from.X()) - math.Atan2(to.Y(), to.X())
	for a <= 0 {
		a += 2 * math.Pi
	}
	return a
}

// orientRings normalizes ring winding: rings at even containment depth (outer
// boundaries) run counterclockwise, rings at odd depth (holes) clockwise. Depth is
// probed with an edge midpoint, which unlike a shared pinch vertex cannot lie on
// another ring of the result.
func orientRings(rings []polygon.Polygon) []polygon.Polygon {
	out := make([]polygon.Polygon, len(rings))
	for i, ring := range rings {
		pts := ring.Points()
		probe := point.New(
			(pts[0].X()+pts[1].X())/2,
			(pts[0].Y()+pts[1].Y())/2,
		)
		depth := 0
		for j, other := range rings {
			if i == j {
				continue
			}
			if other.ContainsPoint(probe) {
				depth++
			}
		}
		isHole := depth%2 == 1
		if ring.IsCounterClockwise() == isHole {
			ring = ring.Reverse()
		}
		out[i] = ring
	}
	return out
}
