package sweep

import "errors"

// Sentinel errors returned by the sweep entry points. Wrap-aware callers can test
// them with errors.Is.
var (
	// ErrDegenerateSegment is returned when an input edge has zero length.
	ErrDegenerateSegment = errors.New("sweep: degenerate zero-length segment")

	// ErrNonFiniteCoordinate is returned when an input coordinate is NaN or infinite.
	ErrNonFiniteCoordinate = errors.New("sweep: non-finite coordinate")

	// ErrInvalidPolygon is returned when a boolean operand fails validation.
	ErrInvalidPolygon = errors.New("sweep: invalid polygon")

	// ErrInvariantViolation is returned when the sweep detects internal state it
	// can only reach through a bug: a collinear overlap outside the five known
	// alignments, a re-key of an event absent from the queue, or a right event
	// whose partner is missing from the status structure. The sweep aborts.
	ErrInvariantViolation = errors.New("sweep: invariant violation")

	// ErrNoPolygons is returned when ComputeBoolean is called on a sweep that was
	// not constructed from polygons.
	ErrNoPolygons = errors.New("sweep: boolean operation requires a polygon sweep")
)
