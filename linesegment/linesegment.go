// Package linesegment provides the LineSegment primitive and its intersection
// predicates.
//
// # Overview
//
// A LineSegment is a finite straight segment between two points in the 2D plane.
// The package supplies the three predicates the plane-sweep engine consumes:
//
//   - Intersects: do two segments meet at all?
//   - Intersection: the tagged intersection geometry — nothing, a single point,
//     or a shared collinear sub-segment.
//   - HasEndpoint / ContainsPoint: endpoint membership and on-segment tests.
//
// Segments are treated as unordered pairs of endpoints: Eq compares in either
// direction, within the module tolerance.
package linesegment

import (
	"fmt"

	"github.com/chuong9x/graphical"
	"github.com/chuong9x/graphical/numeric"
	"github.com/chuong9x/graphical/point"
)

// LineSegment represents a line segment in a 2D space, defined by two endpoints,
// a start [point.Point] and an end [point.Point].
//
// The start/end distinction carries no geometric meaning; Eq and the intersection
// predicates treat the segment as an unordered pair.
type LineSegment struct {
	start point.Point
	end   point.Point
}

// New creates a new LineSegment from the specified start and end x and y coordinates.
func New(x1, y1, x2, y2 float64) LineSegment {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a new LineSegment from two endpoint [point.Point] values.
func NewFromPoints(start, end point.Point) LineSegment {
	return LineSegment{
		start: start,
		end:   end,
	}
}

// Start returns the starting [point.Point] of the line segment.
func (l LineSegment) Start() point.Point {
	return l.start
}

// End returns the ending [point.Point] of the line segment.
func (l LineSegment) End() point.Point {
	return l.end
}

// ContainsPoint determines whether the given [point.Point] lies on the LineSegment,
// endpoints included.
//
// The point must be collinear with the segment (within the adaptive tolerance of
// [point.Orientation]) and fall inside the segment's bounding box, expanded by
// [graphical.Epsilon].
func (l LineSegment) ContainsPoint(p point.Point) bool {
	if point.Orientation(l.start, l.end, p) != point.Collinear {
		return false
	}
	minX, maxX := l.start.X(), l.end.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := l.start.Y(), l.end.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return numeric.FloatGreaterThanOrEqualTo(p.X(), minX, graphical.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.X(), maxX, graphical.Epsilon) &&
		numeric.FloatGreaterThanOrEqualTo(p.Y(), minY, graphical.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), maxY, graphical.Epsilon)
}

// Eq determines whether the calling LineSegment l is equal to another LineSegment
// other. Segments are unordered pairs: (a,b) equals (b,a). Endpoint comparison uses
// the module tolerance.
func (l LineSegment) Eq(other LineSegment) bool {
	return (l.start.Eq(other.start) && l.end.Eq(other.end)) ||
		(l.start.Eq(other.end) && l.end.Eq(other.start))
}

// HasEndpoint reports whether p is one of the segment's endpoints, within the module
// tolerance.
func (l LineSegment) HasEndpoint(p point.Point) bool {
	return l.start.Eq(p) || l.end.Eq(p)
}

// IsDegenerate reports whether the segment has zero length, i.e. its endpoints
// coincide within the module tolerance. Degenerate segments are rejected as sweep
// input.
func (l LineSegment) IsDegenerate() bool {
	return l.start.Eq(l.end)
}

// IsValid reports whether both endpoints have finite coordinates.
func (l LineSegment) IsValid() bool {
	return l.start.IsValid() && l.end.IsValid()
}

// Length returns the Euclidean length of the line segment.
func (l LineSegment) Length() float64 {
	return l.start.DistanceToPoint(l.end)
}

// Reversed returns the segment with its endpoints swapped.
func (l LineSegment) Reversed() LineSegment {
	return NewFromPoints(l.end, l.start)
}

// String returns a string representation of the line segment in the format
// "(x1,y1)(x2,y2)".
func (l LineSegment) String() string {
	return fmt.Sprintf("%s%s", l.start.String(), l.end.String())
}
