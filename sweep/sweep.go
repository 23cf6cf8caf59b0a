// Package sweep implements the plane-sweep engine at the heart of the graphical
// library: a Bentley–Ottmann-style sweep over straight-line segments.
//
// # Overview
//
// A conceptual vertical line moves left to right across the plane. The endpoints of
// every input segment are "events"; the segments currently straddled by the line are
// the "status", kept vertically sorted. Only neighbouring segments in the status can
// intersect without an intervening event, so each event needs a constant number of
// neighbour checks instead of a quadratic pass.
//
// One engine serves three modes:
//
//   - [Sweep.HasIntersection] answers whether any two segments cross properly.
//   - [Sweep.Intersections] enumerates every proper intersection point and every
//     shared collinear sub-segment.
//   - [Sweep.ComputeBoolean] overlays two simple polygons and returns their
//     intersection, union or difference as a set of simple polygons, stitching the
//     surviving boundary pieces back into closed rings.
//
// The engine repairs its own invariant as it runs: whenever two active edges are
// found to cross properly or overlap collinearly, the intersection resolver splits
// them at the intersection so that no two active edges ever properly cross.
//
// # Concurrency
//
// A sweep run is single-threaded and owns all of its state; a Sweep value itself is
// immutable after construction, so distinct goroutines may run separate sweeps (or
// repeated runs of the same Sweep) concurrently. There is no parallelism within one
// run.
package sweep

import (
	"fmt"

	"github.com/chuong9x/graphical/linesegment"
	"github.com/chuong9x/graphical/point"
	"github.com/chuong9x/graphical/polygon"
)

// Sweep is a prepared plane sweep over a bag of edges or a pair of polygons. It
// holds only the inputs: every entry point builds fresh run state, so calls are
// independent and repeatable.
type Sweep struct {
	segments    []linesegment.LineSegment
	subject     polygon.Polygon
	clip        polygon.Polygon
	hasPolygons bool
}

// NewFromSegments prepares a sweep over a bag of edges for the existence and
// enumeration modes.
func NewFromSegments(segments []linesegment.LineSegment) *Sweep {
	cpy := make([]linesegment.LineSegment, len(segments))
	copy(cpy, segments)
	return &Sweep{segments: cpy}
}

// NewFromPolygons prepares a sweep over the boundaries of a subject and a clip
// polygon. All three modes are available; the existence and enumeration modes
// operate on the combined bag of boundary edges.
func NewFromPolygons(subject, clip polygon.Polygon) *Sweep {
	return &Sweep{
		subject:     subject,
		clip:        clip,
		hasPolygons: true,
	}
}

// HasIntersection reports whether any two input edges intersect properly, i.e. at
// anything other than an endpoint shared by both. The sweep stops at the first such
// pair.
func (s *Sweep) HasIntersection() (bool, error) {
	r := newRun(modeExistence, 0)
	if err := s.fill(r); err != nil {
		return false, err
	}
	if err := r.sweep(); err != nil {
		return false, err
	}
	return r.found, nil
}

// Intersections reports every proper intersection among the input edges: a point
// result per crossing or touching pair, and an overlapping-segment result per
// collinear shared sub-segment. Shared endpoints of two edges are not reported.
//
// Running Intersections twice on the same Sweep produces the same results.
func (s *Sweep) Intersections() ([]linesegment.IntersectionResult, error) {
	r := newRun(modeEnumerate, 0)
	if err := s.fill(r); err != nil {
		return nil, err
	}
	if err := r.sweep(); err != nil {
		return nil, err
	}
	return r.results, nil
}

// fill validates the inputs and loads their endpoint events into the run's queue.
func (s *Sweep) fill(r *run) error {
	if s.hasPolygons {
		for _, e := range s.subject.Edges() {
			if err := r.addEdge(e, polygonSubject); err != nil {
				return err
			}
		}
		for _, e := range s.clip.Edges() {
			if err := r.addEdge(e, polygonClip); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range s.segments {
		if err := r.addEdge(e, polygonNone); err != nil {
			return err
		}
	}
	return nil
}

// sweepMode selects the per-event work of a run.
type sweepMode uint8

const (
	modeExistence sweepMode = iota
	modeEnumerate
	modeOverlay
)

// run is the private state of one sweep execution.
type run struct {
	mode    sweepMode
	queue   *eventQueue
	status  *statusStructure
	nextID  int
	results []linesegment.IntersectionResult
	chainer *eventChainer
	found   bool
}

func newRun(mode sweepMode, op BooleanOperation) *run {
	r := &run{
		mode:   mode,
		queue:  newEventQueue(),
		status: newStatusStructure(),
	}
	switch mode {
	case modeEnumerate:
		r.results = make([]linesegment.IntersectionResult, 0)
	case modeOverlay:
		r.chainer = newEventChainer(op)
	}
	return r
}

// newEvent allocates an event with the next unique id. Pairing is the caller's job.
func (r *run) newEvent(v point.Point, edge linesegment.LineSegment, isLeft bool, pt polygonType) *sweepEvent {
	e := &sweepEvent{
		vertex:      v,
		edge:        edge,
		isLeft:      isLeft,
		polygonType: pt,
		id:          r.nextID,
	}
	r.nextID++
	return e
}

// addEdge validates seg and queues its left/right endpoint events.
func (r *run) addEdge(seg linesegment.LineSegment, pt polygonType) error {
	if !seg.IsValid() {
		return fmt.Errorf("%w: %s", ErrNonFiniteCoordinate, seg)
	}
	if seg.IsDegenerate() {
		return fmt.Errorf("%w: %s", ErrDegenerateSegment, seg)
	}

	a, b := seg.Start(), seg.End()
	if a.CompareTo(b) > 0 {
		a, b = b, a
	}
	edge := linesegment.NewFromPoints(a, b)

	left := r.newEvent(a, edge, true, pt)
	right := r.newEvent(b, edge, false, pt)
	left.pair, right.pair = right, left

	r.queue.push(left)
	r.queue.push(right)
	return nil
}

// sweep drains the event queue, maintaining the status structure and dispatching
// neighbour pairs to the resolver. In existence mode it stops at the first proper
// intersection.
func (r *run) sweep() error {
	for r.queue.len() > 0 {
		ev, _ := r.queue.pop()
		debugf("pop %s (status len %d)", ev, r.status.len())

		if ev.isLeft {
			idx := r.status.insert(ev)
			below := r.status.below(idx)
			above := r.status.above(idx)

			if r.mode == modeOverlay {
				setFlags(ev, below)
			}

			if below != nil {
				if err := r.resolve(ev, below); err != nil {
					return err
				}
			}
			if above != nil {
				if err := r.resolve(above, ev); err != nil {
					return err
				}
			}
		} else {
			partner := ev.pair
			idx := r.status.indexOf(partner)
			if idx < 0 {
				return fmt.Errorf("%w: right event %s has no active partner", ErrInvariantViolation, ev)
			}
			below := r.status.below(idx)
			above := r.status.above(idx)

			if r.mode == modeOverlay {
				r.chainer.take(partner)
			}
			r.status.removeAt(idx)

			if below != nil && above != nil {
				if err := r.resolve(above, below); err != nil {
					return err
				}
			}
		}

		if r.mode == modeExistence && r.found {
			return nil
		}
	}
	return nil
}

// setFlags computes the overlay flags of a freshly inserted left event from its
// immediate lower neighbour.
//
// inOut alternates along a polygon's boundary as the sweep rises through it, so an
// edge above a same-polygon neighbour negates the neighbour's flag. An edge above an
// other-polygon neighbour is inside that polygon exactly when the neighbour's
// boundary was crossed into it, and its own inOut continues the neighbour's
// isInside parity.
func setFlags(ev, below *sweepEvent) {
	if below == nil {
		ev.inOut = false
		ev.isInside = false
		return
	}
	if ev.polygonType == below.polygonType {
		ev.isInside = below.isInside
		ev.inOut = !below.inOut
	} else {
		ev.isInside = !below.inOut
		ev.inOut = below.isInside
	}
}
