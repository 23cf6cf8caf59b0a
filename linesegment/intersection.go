package linesegment

import (
	"fmt"
	"math"

	"github.com/chuong9x/graphical"
	"github.com/chuong9x/graphical/numeric"
	"github.com/chuong9x/graphical/point"
)

// IntersectionType represents the type of intersection between two LineSegment
// values. It is used to classify intersection results into:
//   - IntersectionNone: there is no intersection
//   - IntersectionPoint: there is an intersection at a single point
//   - IntersectionOverlappingSegment: the segments are collinear and share a sub-segment
type IntersectionType uint8

// Valid values for IntersectionType
const (
	// IntersectionNone indicates that there is no intersection between the given line segments.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates that the intersection occurs at a single point.
	IntersectionPoint

	// IntersectionOverlappingSegment indicates that the intersection is a continuous
	// overlapping segment, which occurs when two collinear segments partially or fully overlap.
	IntersectionOverlappingSegment
)

// String returns a human-readable representation of the IntersectionType.
//
// Panics if an unsupported IntersectionType value is encountered.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionOverlappingSegment:
		return "IntersectionOverlappingSegment"
	default:
		panic(fmt.Errorf("unsupported line segment intersection type"))
	}
}

// IntersectionResult represents the outcome of intersecting two line segments.
//
// Fields:
//   - IntersectionType: the tag selecting which of the following fields is meaningful.
//   - IntersectionPoint: the point of intersection, when IntersectionType == IntersectionPoint.
//   - OverlappingSegment: the shared sub-segment, when IntersectionType == IntersectionOverlappingSegment.
//   - InputLineSegments: the segments that were tested.
type IntersectionResult struct {
	IntersectionType   IntersectionType
	IntersectionPoint  point.Point
	OverlappingSegment LineSegment
	InputLineSegments  []LineSegment
}

// Eq reports whether two intersection results describe the same geometry. Input
// segments are compared as unordered sets.
func (ir IntersectionResult) Eq(other IntersectionResult) bool {
	if ir.IntersectionType != other.IntersectionType {
		return false
	}
	switch ir.IntersectionType {
	case IntersectionPoint:
		if !ir.IntersectionPoint.Eq(other.IntersectionPoint) {
			return false
		}
	case IntersectionOverlappingSegment:
		if !ir.OverlappingSegment.Eq(other.OverlappingSegment) {
			return false
		}
	}
	if len(ir.InputLineSegments) != len(other.InputLineSegments) {
		return false
	}
	for _, segA := range ir.InputLineSegments {
		found := false
		for _, segB := range other.InputLineSegments {
			if segA.Eq(segB) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the intersection result.
func (ir IntersectionResult) String() string {
	switch ir.IntersectionType {
	case IntersectionPoint:
		return fmt.Sprintf("point %s", ir.IntersectionPoint)
	case IntersectionOverlappingSegment:
		return fmt.Sprintf("segment %s", ir.OverlappingSegment)
	default:
		return "none"
	}
}

// Intersects reports whether l and other share at least one point.
func (l LineSegment) Intersects(other LineSegment) bool {
	return l.Intersection(other).IntersectionType != IntersectionNone
}

// Intersection calculates the intersection between two [LineSegment] instances.
//
// Behavior:
//   - If the segments are collinear and share a sub-segment of positive length, the
//     result is IntersectionOverlappingSegment with the shared sub-segment.
//   - If the segments meet at exactly one point (including collinear segments that
//     touch only at an endpoint), the result is IntersectionPoint.
//   - If the segments are parallel but not collinear, or the intersection of their
//     supporting lines lies outside either segment, the result is IntersectionNone.
//
// Intersection coordinates are snapped to the nearest whole number when within the
// module tolerance, so that split points derived from the same crossing compare equal.
func (l LineSegment) Intersection(other LineSegment) IntersectionResult {

	inputs := []LineSegment{l, other}

	// Define segment endpoints for AB (l) and CD (other)
	A, B := l.start, l.end
	C, D := other.start, other.end

	// Direction vectors
	dir1 := B.Sub(A)
	dir2 := D.Sub(C)

	denominator := dir1.CrossProduct(dir2)

	// Collinear / parallel case
	if math.Abs(denominator) <= graphical.Epsilon {
		AC := C.Sub(A)
		if math.Abs(AC.CrossProduct(dir1)) > graphical.Epsilon {
			// Parallel but not collinear
			return IntersectionResult{
				IntersectionType:  IntersectionNone,
				InputLineSegments: inputs,
			}
		}

		// Check overlap by projecting the other segment's endpoints onto this line
		lenSq := dir1.DotProduct(dir1)
		tStart := (C.Sub(A)).DotProduct(dir1) / lenSq
		tEnd := (D.Sub(A)).DotProduct(dir1) / lenSq

		if tStart > tEnd {
			tStart, tEnd = tEnd, tStart
		}

		tOverlapStart := math.Max(0.0, tStart)
		tOverlapEnd := math.Min(1.0, tEnd)

		if tOverlapStart > tOverlapEnd+graphical.Epsilon {
			// No overlap
			return IntersectionResult{
				IntersectionType:  IntersectionNone,
				InputLineSegments: inputs,
			}
		}

		overlapStart := point.New(
			numeric.SnapToEpsilon(A.X()+tOverlapStart*dir1.X(), graphical.Epsilon),
			numeric.SnapToEpsilon(A.Y()+tOverlapStart*dir1.Y(), graphical.Epsilon),
		)
		overlapEnd := point.New(
			numeric.SnapToEpsilon(A.X()+tOverlapEnd*dir1.X(), graphical.Epsilon),
			numeric.SnapToEpsilon(A.Y()+tOverlapEnd*dir1.Y(), graphical.Epsilon),
		)

		// Collinear segments touching at a single point degenerate to a point intersection
		if overlapStart.Eq(overlapEnd) {
			return IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: overlapStart,
				InputLineSegments: inputs,
			}
		}

		return IntersectionResult{
			IntersectionType:   IntersectionOverlappingSegment,
			OverlappingSegment: NewFromPoints(overlapStart, overlapEnd),
			InputLineSegments:  inputs,
		}
	}

	// Parametric solution for the non-collinear case: the intersection is at
	// A + t*dir1 == C + u*dir2, within bounds when both t and u are in [0, 1].
	AC := C.Sub(A)
	t := AC.CrossProduct(dir2) / denominator
	u := AC.CrossProduct(dir1) / denominator

	if t < -graphical.Epsilon || t > 1+graphical.Epsilon || u < -graphical.Epsilon || u > 1+graphical.Epsilon {
		// Intersection is outside the segments
		return IntersectionResult{
			IntersectionType:  IntersectionNone,
			InputLineSegments: inputs,
		}
	}

	intersection := point.New(
		numeric.SnapToEpsilon(A.X()+t*dir1.X(), graphical.Epsilon),
		numeric.SnapToEpsilon(A.Y()+t*dir1.Y(), graphical.Epsilon),
	)

	return IntersectionResult{
		IntersectionType:  IntersectionPoint,
		IntersectionPoint: intersection,
		InputLineSegments: inputs,
	}
}
