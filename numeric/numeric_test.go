package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatEquals(t *testing.T) {
	tests := map[string]struct {
		a, b, epsilon float64
		expected      bool
	}{
		"exactly equal": {
			a:        1.0,
			b:        1.0,
			epsilon:  1e-9,
			expected: true,
		},
		"within epsilon": {
			a:        1.0,
			b:        1.0 + 1e-10,
			epsilon:  1e-9,
			expected: true,
		},
		"outside epsilon": {
			a:        1.0,
			b:        1.0 + 1e-8,
			epsilon:  1e-9,
			expected: false,
		},
		"negative values": {
			a:        -5.0,
			b:        -5.0 - 1e-12,
			epsilon:  1e-9,
			expected: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloatEquals(tt.a, tt.b, tt.epsilon))
		})
	}
}

func TestFloatOrderings(t *testing.T) {
	const eps = 1e-9

	assert.True(t, FloatLessThan(1.0, 2.0, eps))
	assert.False(t, FloatLessThan(1.0, 1.0+1e-12, eps), "values within epsilon are not less than")
	assert.True(t, FloatGreaterThan(2.0, 1.0, eps))
	assert.False(t, FloatGreaterThan(1.0+1e-12, 1.0, eps), "values within epsilon are not greater than")
	assert.True(t, FloatLessThanOrEqualTo(1.0+1e-12, 1.0, eps))
	assert.True(t, FloatGreaterThanOrEqualTo(1.0-1e-12, 1.0, eps))
}

func TestSnapToEpsilon(t *testing.T) {
	tests := map[string]struct {
		value, epsilon float64
		expected       float64
	}{
		"snaps just below whole": {
			value:    4.9999999999,
			epsilon:  1e-9,
			expected: 5.0,
		},
		"snaps just above whole": {
			value:    5.0000000001,
			epsilon:  1e-9,
			expected: 5.0,
		},
		"leaves distant value alone": {
			value:    5.1,
			epsilon:  1e-9,
			expected: 5.1,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SnapToEpsilon(tt.value, tt.epsilon), 1e-15)
		})
	}
}
