package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_CanPlace(t *testing.T) {
	board := NewBoard()
	board.Place(NewShip(NewCoordinate(0, 0), 5, true))

	tests := []struct {
		name       string
		origin     Coordinate
		segments   int
		horizontal bool
		expected   bool
	}{
		{"FitsOnEmptyRow", Coordinate{0, 5}, 4, true, true},
		{"FitsAgainstRightEdge", Coordinate{6, 5}, 4, true, true},
		{"HangsOffRightEdge", Coordinate{7, 5}, 4, true, false},
		{"FitsAgainstBottomEdge", Coordinate{5, 6}, 4, false, true},
		{"HangsOffBottomEdge", Coordinate{5, 7}, 4, false, false},
		{"NegativeOrigin", Coordinate{-1, 0}, 2, true, false},
		{"OverlapsExistingShip", Coordinate{2, 0}, 3, true, false},
		{"CrossesExistingShip", Coordinate{3, 0}, 3, false, false},
		{"TouchingIsAllowed", Coordinate{0, 1}, 5, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, board.CanPlace(tt.origin, tt.segments, tt.horizontal))
		})
	}
}

func TestBoard_MarkMiss(t *testing.T) {
	board := NewBoard()
	target := NewCoordinate(4, 4)

	result, err := board.Mark(target)
	require.NoError(t, err)
	assert.False(t, result.Hit)
	assert.Nil(t, result.Destroyed)
	assert.True(t, board.IsMarked(target))
}

func TestBoard_MarkHitAndDestroy(t *testing.T) {
	board := NewBoard()
	ship := NewShip(NewCoordinate(2, 2), 2, true)
	board.Place(ship)

	result, err := board.Mark(NewCoordinate(2, 2))
	require.NoError(t, err)
	assert.True(t, result.Hit)
	assert.Nil(t, result.Destroyed)
	assert.Equal(t, 1, ship.DestroyedSegments())

	result, err = board.Mark(NewCoordinate(3, 2))
	require.NoError(t, err)
	assert.True(t, result.Hit)
	assert.Same(t, ship, result.Destroyed)
	assert.True(t, ship.IsDestroyed())
}

func TestBoard_MarkRejectsDoubleMark(t *testing.T) {
	board := NewBoard()
	ship := NewShip(NewCoordinate(0, 0), 2, true)
	board.Place(ship)

	_, err := board.Mark(NewCoordinate(0, 0))
	require.NoError(t, err)

	// The second mark must not reach the ship.
	_, err = board.Mark(NewCoordinate(0, 0))
	assert.ErrorIs(t, err, ErrAlreadyMarked)
	assert.Equal(t, 1, ship.DestroyedSegments())
}

func TestBoard_MarkRejectsOutOfBounds(t *testing.T) {
	board := NewBoard()
	_, err := board.Mark(NewCoordinate(10, 0))
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	_, err = board.Mark(NewCoordinate(0, -1))
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestBoard_ShipAt(t *testing.T) {
	board := NewBoard()
	ship := NewShip(NewCoordinate(3, 3), 3, false)
	board.Place(ship)

	assert.Same(t, ship, board.ShipAt(NewCoordinate(3, 3)))
	assert.Same(t, ship, board.ShipAt(NewCoordinate(3, 5)))
	assert.Nil(t, board.ShipAt(NewCoordinate(4, 3)))
	assert.Nil(t, board.ShipAt(NewCoordinate(-1, 3)))
}

func TestBoard_AllDestroyed(t *testing.T) {
	board := NewBoard()
	// No ships placed yet: not destroyed.
	assert.False(t, board.AllDestroyed())

	a := NewShip(NewCoordinate(0, 0), 2, true)
	b := NewShip(NewCoordinate(0, 2), 2, true)
	board.Place(a)
	board.Place(b)

	for _, c := range a.OccupiedCoordinates() {
		_, err := board.Mark(c)
		require.NoError(t, err)
	}
	assert.False(t, board.AllDestroyed())

	for _, c := range b.OccupiedCoordinates() {
		_, err := board.Mark(c)
		require.NoError(t, err)
	}
	assert.True(t, board.AllDestroyed())
}

func TestBoard_Reset(t *testing.T) {
	board := NewBoard()
	board.Place(NewShip(NewCoordinate(0, 0), 2, true))
	_, err := board.Mark(NewCoordinate(5, 5))
	require.NoError(t, err)

	board.Reset()

	assert.Empty(t, board.Ships())
	assert.False(t, board.IsMarked(NewCoordinate(5, 5)))
	assert.Nil(t, board.ShipAt(NewCoordinate(0, 0)))
	assert.True(t, board.CanPlace(NewCoordinate(0, 0), 5, true))
}

func TestBoard_FleetComposition(t *testing.T) {
	assert.Equal(t, [...]int{5, 4, 3, 3, 2}, FleetSizes)

	total := 0
	for _, s := range FleetSizes {
		total += s
	}
	assert.Equal(t, 17, total)
}
