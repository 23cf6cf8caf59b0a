package point

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_CompareTo(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected int
	}{
		"smaller x precedes": {
			p:        New(1, 10),
			q:        New(2, 0),
			expected: -1,
		},
		"equal x, smaller y precedes": {
			p:        New(1, 0),
			q:        New(1, 10),
			expected: -1,
		},
		"equal within tolerance": {
			p:        New(1, 1),
			q:        New(1+1e-12, 1-1e-12),
			expected: 0,
		},
		"greater x follows": {
			p:        New(3, 0),
			q:        New(2, 100),
			expected: 1,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.CompareTo(tt.q))
			assert.Equal(t, -tt.expected, tt.q.CompareTo(tt.p), "CompareTo must be antisymmetric")
		})
	}
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, New(5, 5).Eq(New(5+1e-12, 5-1e-12)))
	assert.False(t, New(5, 5).Eq(New(5.1, 5)))
}

func TestPoint_VectorOps(t *testing.T) {
	a := New(3, 4)
	b := New(1, 2)

	assert.Equal(t, New(2, 2), a.Sub(b))
	assert.Equal(t, New(4, 6), a.Translate(b))
	assert.Equal(t, New(-3, -4), a.Negate())
	assert.InDelta(t, 2.0, a.CrossProduct(b), 1e-12) // 3*2 - 4*1
	assert.InDelta(t, 11.0, a.DotProduct(b), 1e-12)  // 3*1 + 4*2
	assert.InDelta(t, 5.0, New(0, 0).DistanceToPoint(a), 1e-12)
}

func TestPoint_IsValid(t *testing.T) {
	assert.True(t, New(1, 2).IsValid())
	assert.False(t, New(math.NaN(), 2).IsValid())
	assert.False(t, New(1, math.Inf(1)).IsValid())
}

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		p, q, r  Point
		expected OrientationType
	}{
		"counterclockwise": {
			p:        New(0, 0),
			q:        New(1, 0),
			r:        New(1, 1),
			expected: Counterclockwise,
		},
		"clockwise": {
			p:        New(0, 0),
			q:        New(1, 0),
			r:        New(1, -1),
			expected: Clockwise,
		},
		"collinear": {
			p:        New(0, 0),
			q:        New(1, 1),
			r:        New(2, 2),
			expected: Collinear,
		},
		"nearly collinear within adaptive epsilon": {
			p:        New(0, 0),
			q:        New(10, 0),
			r:        New(20, 1e-12),
			expected: Collinear,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Orientation(tt.p, tt.q, tt.r))
		})
	}
}

func TestPoint_JSONRoundTrip(t *testing.T) {
	p := New(1.5, -2.25)
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.25}`, string(data))

	var q Point
	require.NoError(t, json.Unmarshal(data, &q))
	assert.True(t, p.Eq(q))
}
