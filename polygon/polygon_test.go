package polygon

import (
	"encoding/json"
	"testing"

	"github.com/chuong9x/graphical/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) Polygon {
	return New(
		point.New(x, y),
		point.New(x+size, y),
		point.New(x+size, y+size),
		point.New(x, y+size),
	)
}

func TestPolygon_Area2XSigned(t *testing.T) {
	ccw := square(0, 0, 10)
	assert.InDelta(t, 200.0, ccw.Area2XSigned(), 1e-9)
	assert.True(t, ccw.IsCounterClockwise())

	cw := ccw.Reverse()
	assert.InDelta(t, -200.0, cw.Area2XSigned(), 1e-9)
	assert.False(t, cw.IsCounterClockwise())
}

func TestPolygon_Edges(t *testing.T) {
	pg := square(0, 0, 10)
	edges := pg.Edges()
	require.Len(t, edges, 4)
	assert.True(t, edges[0].Start().Eq(point.New(0, 0)))
	assert.True(t, edges[3].End().Eq(point.New(0, 0)), "last edge closes the ring")

	withDup := New(point.New(0, 0), point.New(0, 0), point.New(10, 0), point.New(5, 5))
	assert.Len(t, withDup.Edges(), 3, "degenerate edge from repeated vertex skipped")
}

func TestPolygon_ContainsPoint(t *testing.T) {
	pg := square(0, 0, 10)

	tests := map[string]struct {
		p        point.Point
		expected bool
	}{
		"interior":             {p: point.New(5, 5), expected: true},
		"outside":              {p: point.New(15, 5), expected: false},
		"on edge":              {p: point.New(10, 5), expected: true},
		"on vertex":            {p: point.New(0, 0), expected: true},
		"outside at edge y":    {p: point.New(-1, 0), expected: false},
		"outside above":        {p: point.New(5, 11), expected: false},
		"interior near corner": {p: point.New(9.5, 9.5), expected: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pg.ContainsPoint(tt.p))
		})
	}
}

func TestPolygon_ContainsPoint_Concave(t *testing.T) {
	// U-shape: notch cut from the top
	pg := New(
		point.New(0, 0),
		point.New(10, 0),
		point.New(10, 10),
		point.New(7, 10),
		point.New(7, 3),
		point.New(3, 3),
		point.New(3, 10),
		point.New(0, 10),
	)
	assert.True(t, pg.ContainsPoint(point.New(1, 5)), "left arm")
	assert.True(t, pg.ContainsPoint(point.New(8, 5)), "right arm")
	assert.False(t, pg.ContainsPoint(point.New(5, 8)), "inside the notch")
	assert.True(t, pg.ContainsPoint(point.New(5, 1)), "base")
}

func TestPolygon_Intersects(t *testing.T) {
	tests := map[string]struct {
		a, b     Polygon
		expected bool
	}{
		"overlapping squares": {
			a:        square(0, 0, 10),
			b:        square(5, 5, 10),
			expected: true,
		},
		"disjoint squares": {
			a:        square(0, 0, 10),
			b:        square(20, 20, 10),
			expected: false,
		},
		"contained square": {
			a:        square(0, 0, 10),
			b:        square(2, 2, 6),
			expected: true,
		},
		"touching edge": {
			a:        square(0, 0, 10),
			b:        square(10, 0, 10),
			expected: true,
		},
		"empty operand": {
			a:        square(0, 0, 10),
			b:        New(),
			expected: false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersects(tt.a), "Intersects must be symmetric")
		})
	}
}

func TestPolygon_Eq(t *testing.T) {
	a := square(0, 0, 10)

	rotated := New(
		point.New(10, 0),
		point.New(10, 10),
		point.New(0, 10),
		point.New(0, 0),
	)
	assert.True(t, a.Eq(rotated), "same ring, different starting vertex")
	assert.True(t, a.Eq(a.Reverse()), "same ring, opposite winding")
	assert.False(t, a.Eq(square(0, 0, 9)))
	assert.False(t, a.Eq(New()))
}

func TestPolygon_Validate(t *testing.T) {
	assert.NoError(t, square(0, 0, 10).Validate())
	assert.NoError(t, New().Validate(), "empty polygon denotes the empty region")

	collinear := New(point.New(0, 0), point.New(5, 0), point.New(10, 0))
	assert.Error(t, collinear.Validate(), "zero-area ring")
}

func TestPolygon_JSONRoundTrip(t *testing.T) {
	pg := square(0, 0, 10)
	data, err := json.Marshal(pg)
	require.NoError(t, err)

	var back Polygon
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, pg.Eq(back))
}
