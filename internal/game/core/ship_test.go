package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShip_OccupiedCoordinates(t *testing.T) {
	tests := []struct {
		name       string
		origin     Coordinate
		segments   int
		horizontal bool
		expected   []Coordinate
	}{
		{
			"Horizontal",
			Coordinate{2, 3}, 3, true,
			[]Coordinate{{2, 3}, {3, 3}, {4, 3}},
		},
		{
			"Vertical",
			Coordinate{7, 1}, 4, false,
			[]Coordinate{{7, 1}, {7, 2}, {7, 3}, {7, 4}},
		},
		{
			"SingleSegment",
			Coordinate{0, 0}, 1, true,
			[]Coordinate{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := NewShip(tt.origin, tt.segments, tt.horizontal)
			assert.Equal(t, tt.expected, ship.OccupiedCoordinates())
		})
	}
}

func TestShip_HitsAndDestruction(t *testing.T) {
	ship := NewShip(NewCoordinate(0, 0), 3, true)
	assert.Equal(t, 0, ship.DestroyedSegments())
	assert.False(t, ship.IsDestroyed())

	ship.RegisterHit()
	ship.RegisterHit()
	assert.Equal(t, 2, ship.DestroyedSegments())
	assert.False(t, ship.IsDestroyed())

	ship.RegisterHit()
	assert.True(t, ship.IsDestroyed())

	// Extra hits saturate instead of overcounting.
	ship.RegisterHit()
	assert.Equal(t, 3, ship.DestroyedSegments())
}

func TestShip_ToggleOrientation(t *testing.T) {
	ship := NewShip(NewCoordinate(4, 4), 2, true)
	assert.True(t, ship.Horizontal())

	ship.ToggleOrientation()
	assert.False(t, ship.Horizontal())
	assert.Equal(t, []Coordinate{{4, 4}, {4, 5}}, ship.OccupiedCoordinates())

	ship.ToggleOrientation()
	assert.True(t, ship.Horizontal())
}

func TestShip_SetOrigin(t *testing.T) {
	ship := NewShip(NewCoordinate(0, 0), 2, true)
	ship.SetOrigin(NewCoordinate(6, 7))
	assert.Equal(t, NewCoordinate(6, 7), ship.Origin())
	assert.Equal(t, []Coordinate{{6, 7}, {7, 7}}, ship.OccupiedCoordinates())
}
