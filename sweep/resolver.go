package sweep

import (
	"fmt"

	"github.com/chuong9x/graphical/linesegment"
	"github.com/chuong9x/graphical/point"
)

// resolve restores the "no two active edges properly cross" invariant for a
// neighbour pair, where prev lies immediately below next in the status structure.
//
// A single-point intersection splits each edge that does not already end there. A
// collinear overlap is one of five alignments (coincident, shared start, shared end,
// straddle, containment); anything else is an invariant violation. In existence mode
// nothing is rewritten: the pair is only tested.
func (r *run) resolve(next, prev *sweepEvent) error {
	if r.mode == modeExistence {
		if properIntersection(next, prev) {
			r.found = true
		}
		return nil
	}

	res := next.edge.Intersection(prev.edge)
	debugf("resolve %s vs %s: %s", next, prev, res)

	switch res.IntersectionType {
	case linesegment.IntersectionNone:
		// Tolerance can class a pair as intersecting while the refined computation
		// finds nothing. Benign; carry on.
		return nil

	case linesegment.IntersectionPoint:
		return r.resolvePoint(next, prev, res.IntersectionPoint)

	case linesegment.IntersectionOverlappingSegment:
		return r.resolveOverlap(next, prev, res.OverlappingSegment)
	}
	return nil
}

// properIntersection reports whether the edges of a and b meet at anything other
// than an endpoint shared by both.
func properIntersection(a, b *sweepEvent) bool {
	res := a.edge.Intersection(b.edge)
	switch res.IntersectionType {
	case linesegment.IntersectionPoint:
		return !(a.edge.HasEndpoint(res.IntersectionPoint) && b.edge.HasEndpoint(res.IntersectionPoint))
	case linesegment.IntersectionOverlappingSegment:
		return true
	default:
		return false
	}
}

// resolvePoint handles a single-point intersection at v: each edge that does not
// already end at v is split there. The crossing is recorded unless v is an endpoint
// of both edges (a shared endpoint is legal contact, not an intersection).
func (r *run) resolvePoint(next, prev *sweepEvent, v point.Point) error {
	inputs := []linesegment.LineSegment{next.edge, prev.edge}

	split := false
	if !next.edge.HasEndpoint(v) {
		if _, err := r.updatePairVertex(next, v); err != nil {
			return err
		}
		split = true
	}
	if !prev.edge.HasEndpoint(v) {
		if _, err := r.updatePairVertex(prev, v); err != nil {
			return err
		}
		split = true
	}

	if split && r.mode == modeEnumerate {
		r.record(linesegment.IntersectionResult{
			IntersectionType:  linesegment.IntersectionPoint,
			IntersectionPoint: v,
			InputLineSegments: inputs,
		})
	}
	return nil
}

// resolveOverlap handles a collinear shared sub-segment s between the edges of next
// and prev. Endpoints are ordered by the event comparator, so prev's left endpoint
// never follows next's.
func (r *run) resolveOverlap(next, prev *sweepEvent, s linesegment.LineSegment) error {
	inputs := []linesegment.LineSegment{next.edge, prev.edge}

	p0, p1 := prev.vertex, prev.pair.vertex
	n0, n1 := next.vertex, next.pair.vertex

	sharedStart := p0.Eq(n0)
	sharedEnd := p1.Eq(n1)

	switch {
	case sharedStart && sharedEnd:
		// Edges coincide: one copy is silenced, the other remembers whether the two
		// boundaries transition alike.
		if r.mode == modeOverlay {
			next.label = labelNoContributing
			if next.inOut == prev.inOut {
				prev.label = labelSameTransition
			} else {
				prev.label = labelDifferentTransition
			}
		}

	case sharedStart:
		// Shared left endpoint: cut the longer edge at the shorter one's right end.
		// The two left halves now coincide and are both already active, so no
		// future event will re-compare them; they are labelled here, like the
		// coincident case.
		if r.mode == modeOverlay {
			next.label = labelNoContributing
			if next.inOut == prev.inOut {
				prev.label = labelSameTransition
			} else {
				prev.label = labelDifferentTransition
			}
		}
		if p1.CompareTo(n1) < 0 {
			if _, err := r.updatePairVertex(next, p1); err != nil {
				return err
			}
		} else {
			if _, err := r.updatePairVertex(prev, n1); err != nil {
				return err
			}
		}

	case sharedEnd:
		// Shared right endpoint: cut prev at next's left end.
		if _, err := r.updatePairVertex(prev, n0); err != nil {
			return err
		}

	case p0.CompareTo(n0) < 0 && p1.CompareTo(n1) < 0 && n0.CompareTo(p1) < 0:
		// Straddle: each edge is cut at the other's endpoint inside it.
		if _, err := r.updatePairVertex(prev, n0); err != nil {
			return err
		}
		if _, err := r.updatePairVertex(next, p1); err != nil {
			return err
		}

	case p0.CompareTo(n0) < 0 && n1.CompareTo(p1) < 0:
		// prev fully contains next: next is silenced and prev is cut twice, the
		// second cut applying to the right half spawned by the first.
		if r.mode == modeOverlay {
			next.label = labelNoContributing
		}
		rest, err := r.updatePairVertex(prev, n0)
		if err != nil {
			return err
		}
		if _, err := r.updatePairVertex(rest, n1); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: collinear overlap outside known alignments: prev=%s next=%s",
			ErrInvariantViolation, prev, next)
	}

	if r.mode == modeEnumerate {
		r.record(linesegment.IntersectionResult{
			IntersectionType:   linesegment.IntersectionOverlappingSegment,
			OverlappingSegment: s,
			InputLineSegments:  inputs,
		})
	}
	return nil
}

// record appends an intersection to the enumeration results, suppressing an
// immediate duplicate of the previous entry. Split edges meet again as neighbours
// and re-derive the same geometry on consecutive events; the suppression keeps each
// reported once.
func (r *run) record(res linesegment.IntersectionResult) {
	if len(r.results) > 0 {
		last := r.results[len(r.results)-1]
		if last.IntersectionType == res.IntersectionType {
			switch res.IntersectionType {
			case linesegment.IntersectionPoint:
				if last.IntersectionPoint.Eq(res.IntersectionPoint) {
					return
				}
			case linesegment.IntersectionOverlappingSegment:
				if last.OverlappingSegment.Eq(res.OverlappingSegment) {
					return
				}
			}
		}
	}
	r.results = append(r.results, res)
}

// updatePairVertex splits the edge of left event ev at v: ev's edge now ends at v,
// its original right event is re-keyed to v, and a brand-new left/right event pair
// covering the remainder from v to the old endpoint is queued. Returns the
// remainder's left event.
//
// The original right event must still be queued; its sort position depends on the
// pair link being rewritten, so it is pulled out of the queue before any mutation
// and reinserted after. If rounding would make the remainder's left event sort after
// its right event, the two swap sides so pairing invariants hold.
func (r *run) updatePairVertex(ev *sweepEvent, v point.Point) (*sweepEvent, error) {
	pr := ev.pair

	if !r.queue.remove(pr) {
		return nil, fmt.Errorf("%w: re-key of event absent from queue: %s", ErrInvariantViolation, pr)
	}
	// ev's own sort keys also read the pair vertex; pull it too if still queued.
	evQueued := r.queue.remove(ev)

	old := pr.vertex
	shrunk := linesegment.NewFromPoints(ev.vertex, v)
	remainder := linesegment.NewFromPoints(v, old)

	ev.edge = shrunk
	pr.edge = shrunk
	pr.vertex = v

	left := r.newEvent(v, remainder, true, ev.polygonType)
	right := r.newEvent(old, remainder, false, ev.polygonType)
	left.pair, right.pair = right, left

	if compareSweepEvents(left, right) > 0 {
		// Rounding pushed v past the old endpoint; swap sides to keep the pair
		// ordering consistent.
		left.isLeft = false
		right.isLeft = true
		left, right = right, left
	}

	debugf("split %s at %s -> %s + %s", ev, v, shrunk, remainder)

	r.queue.push(left)
	r.queue.push(right)
	r.queue.push(pr)
	if evQueued {
		r.queue.push(ev)
	}
	return left, nil
}
