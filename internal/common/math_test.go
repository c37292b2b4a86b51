package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"positive number", 5, 5},
		{"negative number", -5, 5},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 2, Min(7, 2))
	assert.Equal(t, 4, Min(4, 4))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 7, Max(7, 2))
	assert.Equal(t, -3, Max(-5, -3))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		expected  int
	}{
		{"below range", -3, 0, 9, 0},
		{"above range", 15, 0, 9, 9},
		{"inside range", 4, 0, 9, 4},
		{"at low bound", 0, 0, 9, 0},
		{"at high bound", 9, 0, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
