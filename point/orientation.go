package point

import (
	"fmt"
	"math"

	"github.com/chuong9x/graphical"
)

// OrientationType represents the orientation relationship between three points in a
// 2D plane: collinear, a clockwise turn, or a counterclockwise turn. Orientation is
// determined by the sign of the cross product of the vectors formed by the points and
// underpins the sweep engine's event ordering and status ordering.
type OrientationType uint8

// Orientation constants define the possible orientation relationships between three points.
const (
	// Collinear indicates that three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates that three points form a counterclockwise turn.
	Counterclockwise

	// Clockwise indicates that three points form a clockwise turn.
	Clockwise
)

// String returns a human-readable string representation of the orientation type.
//
// Panics if the OrientationType value is not one of the defined constants.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// SignedArea2X returns twice the signed area of the triangle (p, q, r):
//
//	(q - p) × (r - p)
//
// The result is positive if the points make a counterclockwise turn, negative if
// clockwise, and zero if collinear. The raw value is exposed for callers that need
// the magnitude; use Orientation for tolerance-aware classification.
func SignedArea2X(p, q, r Point) float64 {
	return (q.Sub(p)).CrossProduct(r.Sub(p))
}

// Orientation determines the relative orientation of three points in a 2D plane.
//
// Behavior:
//   - Uses an adaptive epsilon based on the distance between points to handle
//     floating-point precision
//   - Relies on the sign of the cross product:
//   - Positive → Counterclockwise
//   - Negative → Clockwise
//   - Near zero (within epsilon) → Collinear
func Orientation(p, q, r Point) OrientationType {
	val := SignedArea2X(p, q, r)

	// Compute adaptive epsilon based on segment lengths
	epsilon := graphical.Epsilon * (p.DistanceToPoint(q) + p.DistanceToPoint(r))

	if math.Abs(val) < epsilon {
		return Collinear
	}
	if val > 0 {
		return Counterclockwise
	}
	return Clockwise
}
