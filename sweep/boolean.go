package sweep

import (
	"fmt"

	"github.com/chuong9x/graphical/polygon"
)

// BooleanOperation selects which boolean overlay ComputeBoolean performs.
type BooleanOperation uint8

// Valid values for BooleanOperation
const (
	// BooleanIntersection computes the region common to subject and clip.
	BooleanIntersection BooleanOperation = iota

	// BooleanUnion computes the region covered by subject, clip, or both.
	BooleanUnion

	// BooleanDifference computes the region of subject not covered by clip.
	BooleanDifference
)

// String returns a human-readable representation of the boolean operation.
//
// Panics if the BooleanOperation value is not one of the defined constants.
func (op BooleanOperation) String() string {
	switch op {
	case BooleanIntersection:
		return "intersection"
	case BooleanUnion:
		return "union"
	case BooleanDifference:
		return "difference"
	default:
		panic(fmt.Errorf("unsupported boolean operation: %d", op))
	}
}

// ComputeBoolean overlays the sweep's subject and clip polygons under op and
// returns the result as a list of simple polygons. Hole rings carry the opposite
// orientation to their enclosing outer ring.
//
// Empty operands follow the boolean laws (A ∩ ∅ = ∅, A ∪ ∅ = A, A \ ∅ = A,
// ∅ \ B = ∅). Disjoint operands short-circuit without sweeping: the intersection is
// empty, the union is both inputs, the difference is the subject.
func (s *Sweep) ComputeBoolean(op BooleanOperation) ([]polygon.Polygon, error) {
	if !s.hasPolygons {
		return nil, ErrNoPolygons
	}

	if s.subject.IsEmpty() || s.clip.IsEmpty() {
		return emptyOperandResult(op, s.subject, s.clip), nil
	}

	if err := s.subject.Validate(); err != nil {
		return nil, fmt.Errorf("%w: subject: %s", ErrInvalidPolygon, err)
	}
	if err := s.clip.Validate(); err != nil {
		return nil, fmt.Errorf("%w: clip: %s", ErrInvalidPolygon, err)
	}

	if !s.subject.Intersects(s.clip) {
		switch op {
		case BooleanIntersection:
			return []polygon.Polygon{}, nil
		case BooleanUnion:
			return []polygon.Polygon{s.subject, s.clip}, nil
		case BooleanDifference:
			return []polygon.Polygon{s.subject}, nil
		}
	}

	r := newRun(modeOverlay, op)
	if err := s.fill(r); err != nil {
		return nil, err
	}
	if err := r.sweep(); err != nil {
		return nil, err
	}
	return r.chainer.chain()
}

// emptyOperandResult applies the boolean laws when at least one operand encloses no
// area.
func emptyOperandResult(op BooleanOperation, subject, clip polygon.Polygon) []polygon.Polygon {
	switch op {
	case BooleanIntersection:
		return []polygon.Polygon{}
	case BooleanUnion:
		out := make([]polygon.Polygon, 0, 2)
		if !subject.IsEmpty() {
			out = append(out, subject)
		}
		if !clip.IsEmpty() {
			out = append(out, clip)
		}
		return out
	case BooleanDifference:
		if subject.IsEmpty() {
			return []polygon.Polygon{}
		}
		return []polygon.Polygon{subject}
	}
	return nil
}
