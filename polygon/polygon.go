// Package polygon provides the simple-polygon primitive consumed by the plane-sweep
// engine.
//
// # Overview
//
// A Polygon is a closed ring of vertices. The package supplies the contract the
// sweep's boolean overlay needs: the edge list, a containment test, and a cheap
// Intersects predicate used to short-circuit sweeps over disjoint inputs. Signed
// area and orientation helpers support hole handling, where a hole ring carries the
// opposite orientation to its enclosing outer ring.
package polygon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chuong9x/graphical"
	"github.com/chuong9x/graphical/linesegment"
	"github.com/chuong9x/graphical/numeric"
	"github.com/chuong9x/graphical/point"
)

// Polygon represents a simple polygon as a closed ring of vertices. The last vertex
// connects back to the first implicitly. Orientation is meaningful: counterclockwise
// rings are outer boundaries, clockwise rings are holes.
type Polygon struct {
	points []point.Point
}

// New creates a Polygon from the given vertices. The vertex slice is copied.
//
// A polygon with fewer than three vertices is valid to construct and reports
// IsEmpty; boolean operations treat it as the empty region.
func New(points ...point.Point) Polygon {
	cpy := make([]point.Point, len(points))
	copy(cpy, points)
	return Polygon{points: cpy}
}

// Area2XSigned returns twice the signed area of the polygon, computed with the
// shoelace formula. The result is positive for counterclockwise rings, negative for
// clockwise rings, and zero for degenerate rings.
func (pg Polygon) Area2XSigned() float64 {
	n := len(pg.points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		p1 := pg.points[i]
		p2 := pg.points[(i+1)%n]
		area += (p1.X() * p2.Y()) - (p2.X() * p1.Y())
	}
	return area
}

// ContainsPoint reports whether p lies inside the polygon or on its boundary.
//
// Uses the even-odd (ray casting) rule with a horizontal ray to the right of p.
// Boundary points are contained.
func (pg Polygon) ContainsPoint(p point.Point) bool {
	n := len(pg.points)
	if n < 3 {
		return false
	}

	for _, edge := range pg.Edges() {
		if edge.ContainsPoint(p) {
			return true
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		a := pg.points[i]
		b := pg.points[(i+1)%n]
		// Edge straddles the ray's y-level with the half-open rule, so a vertex on
		// the ray is counted exactly once.
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			xCross := a.X() + (p.Y()-a.Y())*(b.X()-a.X())/(b.Y()-a.Y())
			if numeric.FloatGreaterThan(xCross, p.X(), graphical.Epsilon) {
				inside = !inside
			}
		}
	}
	return inside
}

// Edges returns the boundary of the polygon as a list of line segments, in ring
// order. Degenerate (zero-length) edges arising from repeated vertices are skipped.
func (pg Polygon) Edges() []linesegment.LineSegment {
	n := len(pg.points)
	if n < 2 {
		return nil
	}
	segments := make([]linesegment.LineSegment, 0, n)
	for i := 0; i < n; i++ {
		start := pg.points[i]
		end := pg.points[(i+1)%n]
		if start.Eq(end) {
			continue
		}
		segments = append(segments, linesegment.NewFromPoints(start, end))
	}
	return segments
}

// Eq reports whether two polygons describe the same ring, allowing for a different
// starting vertex and opposite winding. Vertex comparison uses the module tolerance.
func (pg Polygon) Eq(other Polygon) bool {
	n := len(pg.points)
	if n != len(other.points) {
		return false
	}
	if n == 0 {
		return true
	}
	for offset := 0; offset < n; offset++ {
		forward := true
		backward := true
		for i := 0; i < n; i++ {
			q := other.points[(offset+i)%n]
			if !pg.points[i].Eq(q) {
				forward = false
			}
			r := other.points[((offset-i)%n+n)%n]
			if !pg.points[i].Eq(r) {
				backward = false
			}
			if !forward && !backward {
				break
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}

// Intersects reports whether the two polygons share any area or boundary. This is the
// fast-path contract used by the sweep to short-circuit boolean operations on
// disjoint inputs: it is true when any pair of boundary edges intersects, or when one
// polygon contains the other entirely.
func (pg Polygon) Intersects(other Polygon) bool {
	if pg.IsEmpty() || other.IsEmpty() {
		return false
	}
	for _, a := range pg.Edges() {
		for _, b := range other.Edges() {
			if a.Intersects(b) {
				return true
			}
		}
	}
	// No boundary contact: containment either way still counts as intersecting.
	return pg.ContainsPoint(other.points[0]) || other.ContainsPoint(pg.points[0])
}

// IsCounterClockwise reports whether the ring winds counterclockwise, i.e. whether it
// is an outer boundary under the library's orientation convention.
func (pg Polygon) IsCounterClockwise() bool {
	return pg.Area2XSigned() > 0
}

// IsEmpty reports whether the polygon encloses no area: fewer than three vertices.
func (pg Polygon) IsEmpty() bool {
	return len(pg.points) < 3
}

// MarshalJSON serializes the polygon as a JSON array of points.
func (pg Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(pg.points)
}

// Points returns a copy of the polygon's vertices in ring order.
func (pg Polygon) Points() []point.Point {
	cpy := make([]point.Point, len(pg.points))
	copy(cpy, pg.points)
	return cpy
}

// Reverse returns the polygon with its winding direction flipped.
func (pg Polygon) Reverse() Polygon {
	n := len(pg.points)
	rev := make([]point.Point, n)
	for i, p := range pg.points {
		rev[n-1-i] = p
	}
	return Polygon{points: rev}
}

// String returns a string representation of the polygon's ring.
func (pg Polygon) String() string {
	builder := strings.Builder{}
	builder.WriteString("Polygon[")
	for i, p := range pg.points {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(p.String())
	}
	builder.WriteString("]")
	return builder.String()
}

// UnmarshalJSON deserializes a JSON array of points into the polygon.
func (pg *Polygon) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &pg.points)
}

// Validate checks the polygon is usable as sweep input: every coordinate finite, at
// least three vertices, and non-zero area. Empty polygons pass (they denote the
// empty region); malformed ones return an error.
func (pg Polygon) Validate() error {
	if pg.IsEmpty() {
		return nil
	}
	for _, p := range pg.points {
		if !p.IsValid() {
			return fmt.Errorf("polygon has non-finite vertex %s", p)
		}
	}
	if numeric.FloatEquals(pg.Area2XSigned(), 0, graphical.Epsilon) {
		return fmt.Errorf("polygon has zero area")
	}
	return nil
}
