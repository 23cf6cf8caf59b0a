// Package point defines the foundational geometric primitive in the graphical library,
// the Point type.
//
// # Overview
//
// The Point type represents a two-dimensional point with floating-point coordinates.
// It provides the vector arithmetic, distance measurement and orientation predicates
// that the higher-level types (line segments, polygons, the plane sweep) are built on.
//
// Points carry a lexicographic total order (CompareTo) used by the sweep engine to
// decide which endpoint of a segment the sweep line encounters first.
//
// # Notes
//
//   - Floating-point operations may introduce precision errors. Comparison operations
//     use the module tolerance [graphical.Epsilon] for approximate equality.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/chuong9x/graphical"
	"github.com/chuong9x/graphical/numeric"
)

// Point represents a point in two-dimensional space with x and y coordinates of type
// float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// CompareTo orders p against q lexicographically: first by x ascending, then by y
// ascending. Coordinates within [graphical.Epsilon] of each other compare equal.
//
// Returns a negative number if p precedes q, zero if the points are equal within
// tolerance, and a positive number otherwise.
func (p Point) CompareTo(q Point) int {
	if !numeric.FloatEquals(p.x, q.x, graphical.Epsilon) {
		if p.x < q.x {
			return -1
		}
		return 1
	}
	if !numeric.FloatEquals(p.y, q.y, graphical.Epsilon) {
		if p.y < q.y {
			return -1
		}
		return 1
	}
	return 0
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x * b.y - a.y * b.x
//
// A positive result indicates a counterclockwise turn from a to b, a negative result
// a clockwise turn, and zero that the vectors are collinear.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between Point p
// and another Point q. It avoids the square root of DistanceToPoint and is useful
// where only distance comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean (straight-line) distance between the
// current Point p and another Point q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// DotProduct calculates the dot product of the vector represented by Point p with the
// vector represented by Point q.
func (p Point) DotProduct(q Point) float64 {
	return (p.x * q.x) + (p.y * q.y)
}

// Eq determines whether the calling Point p is equal to another Point q, using the
// module tolerance [graphical.Epsilon] to account for floating-point precision.
func (p Point) Eq(q Point) bool {
	return numeric.FloatEquals(p.x, q.x, graphical.Epsilon) && numeric.FloatEquals(p.y, q.y, graphical.Epsilon)
}

// IsValid reports whether both coordinates are finite numbers. NaN or infinite
// coordinates make a point unusable as sweep input.
func (p Point) IsValid() bool {
	return !math.IsNaN(p.x) && !math.IsNaN(p.y) && !math.IsInf(p.x, 0) && !math.IsInf(p.y, 0)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: p.x,
		Y: p.y,
	})
}

// Negate returns a new Point with both x and y coordinates negated. This operation is
// equivalent to reflecting the point across the origin and is useful in reversing the
// direction of a vector.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// String returns a string representation of the Point p in the format "(x,y)", each
// coordinate printed with %f.
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.x, p.y)
}

// Sub returns the vector from q to p, i.e. p - q.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// X returns the x-coordinate of the Point p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point p.
func (p Point) Y() float64 {
	return p.y
}
