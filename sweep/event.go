package sweep

import (
	"fmt"

	"github.com/chuong9x/graphical/linesegment"
	"github.com/chuong9x/graphical/point"
)

// polygonType identifies which boolean operand an event's edge belongs to. Sweeps
// built from a bag of segments use polygonNone throughout.
type polygonType uint8

const (
	polygonNone polygonType = iota
	polygonSubject
	polygonClip
)

// String returns a human-readable representation of the polygon type.
func (pt polygonType) String() string {
	switch pt {
	case polygonNone:
		return "none"
	case polygonSubject:
		return "subject"
	case polygonClip:
		return "clip"
	default:
		panic(fmt.Errorf("unsupported polygon type: %d", pt))
	}
}

// edgeLabel classifies how an edge relates to a collinear duplicate discovered
// during the sweep. Labels drive the boolean overlay's keep/discard decisions for
// overlapping boundary segments.
type edgeLabel uint8

const (
	// labelNormal is the default: the edge has no collinear duplicate.
	labelNormal edgeLabel = iota

	// labelNoContributing marks the duplicate copy of a coincident edge; it is
	// excluded from every result.
	labelNoContributing

	// labelSameTransition marks the surviving copy of coincident edges whose
	// owning polygons transition in the same direction.
	labelSameTransition

	// labelDifferentTransition marks the surviving copy of coincident edges whose
	// owning polygons transition in opposite directions.
	labelDifferentTransition
)

// String returns a human-readable representation of the edge label.
func (el edgeLabel) String() string {
	switch el {
	case labelNormal:
		return "normal"
	case labelNoContributing:
		return "noContributing"
	case labelSameTransition:
		return "sameTransition"
	case labelDifferentTransition:
		return "differentTransition"
	default:
		panic(fmt.Errorf("unsupported edge label: %d", el))
	}
}

// sweepEvent is a directed endpoint of an edge. Each edge contributes two events, a
// left one at its lexicographically smaller endpoint and a right one at the other,
// linked through the pair field. The left event is the one the sweep line encounters
// first; it is the event that lives in the status structure while its edge is active.
//
// The overlay flags (inOut, isInside) and label are meaningful only on left events of
// a polygon sweep. The flags are computed when the left event is inserted into the
// status; the label is set by the intersection resolver when a collinear overlap is
// found.
type sweepEvent struct {
	// vertex is the endpoint this event represents.
	vertex point.Point

	// edge is the segment this event belongs to. The resolver rewrites it when the
	// edge is split.
	edge linesegment.LineSegment

	// pair is the other endpoint event of the same edge. Pairing is symmetric:
	// e.pair.pair == e.
	pair *sweepEvent

	// isLeft is true iff this endpoint is the lexicographically smaller of the pair.
	isLeft bool

	// polygonType records which boolean operand the edge came from.
	polygonType polygonType

	// label classifies collinear duplicates; see edgeLabel.
	label edgeLabel

	// inOut is true iff crossing this edge from below exits its owning polygon.
	inOut bool

	// isInside is true iff the edge lies inside the other polygon.
	isInside bool

	// id is a unique, monotonically assigned ordinal. It is the final tiebreak of
	// the event ordering, making the order strict and total.
	id int
}

// String returns a human-readable representation of the event for diagnostics.
func (e *sweepEvent) String() string {
	side := "R"
	if e.isLeft {
		side = "L"
	}
	return fmt.Sprintf("event{%s %s of %s %s}", side, e.vertex, e.polygonType, e.edge)
}

// compareSweepEvents reports the sweep processing order of a and b: negative when a
// is processed first.
//
// Ordering rules:
//  1. Smaller x first, then smaller y (lexicographic vertex order).
//  2. At the same vertex, right events precede left events, so edges ending at the
//     sweep line leave the status before new ones join.
//  3. At the same vertex and side, a goes first when the signed area of
//     (a.vertex, a.pair.vertex, b.pair.vertex) is positive. For left events this
//     puts the lower edge first; for right events, the upper edge.
//  4. Collinear ties: subject before clip, then the unique event id.
func compareSweepEvents(a, b *sweepEvent) int {
	if a == b {
		return 0
	}
	if c := a.vertex.CompareTo(b.vertex); c != 0 {
		return c
	}
	if a.isLeft != b.isLeft {
		if a.isLeft {
			return 1
		}
		return -1
	}
	if point.Orientation(a.vertex, a.pair.vertex, b.pair.vertex) != point.Collinear {
		if point.SignedArea2X(a.vertex, a.pair.vertex, b.pair.vertex) > 0 {
			return -1
		}
		return 1
	}
	if a.polygonType != b.polygonType {
		if a.polygonType < b.polygonType {
			return -1
		}
		return 1
	}
	if a.id < b.id {
		return -1
	}
	return 1
}

// statusLess reports whether active left event a lies strictly below active left
// event b at the sweep line.
//
// The edge of a is evaluated at the later of the two left endpoints: if b starts on
// or after a, b's endpoints are classified against a's supporting line, and
// symmetrically otherwise. Fully collinear edges fall back to the event ordering so
// the status order stays total.
func statusLess(a, b *sweepEvent) bool {
	if a == b {
		return false
	}

	o1 := point.Orientation(a.vertex, a.pair.vertex, b.vertex)
	o2 := point.Orientation(a.vertex, a.pair.vertex, b.pair.vertex)

	if o1 == point.Collinear && o2 == point.Collinear {
		// Collinear edges: the event order keeps the status order total.
		return compareSweepEvents(a, b) < 0
	}

	if a.vertex.Eq(b.vertex) {
		// Shared left endpoint: sort by the right endpoints.
		return o2 == point.Counterclockwise
	}

	if compareSweepEvents(a, b) < 0 {
		// a starts first: a is below iff b starts above a's line (or, when b starts
		// on the line, iff b ends above it).
		if o1 == point.Collinear {
			return o2 == point.Counterclockwise
		}
		return o1 == point.Counterclockwise
	}

	// b starts first: a is below iff a starts below b's line.
	o3 := point.Orientation(b.vertex, b.pair.vertex, a.vertex)
	if o3 == point.Collinear {
		return point.Orientation(b.vertex, b.pair.vertex, a.pair.vertex) == point.Clockwise
	}
	return o3 == point.Clockwise
}
