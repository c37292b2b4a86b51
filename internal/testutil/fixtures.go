package testutil

import (
	"github.com/gridwars/battleship/internal/game/core"
)

// PlaceTestFleet places the standard fleet at fixed positions: each
// ship horizontal, starting at x=0, on every other row from the top.
// Returns the placed ships in fleet order.
func PlaceTestFleet(board *core.Board) []*core.Ship {
	ships := make([]*core.Ship, 0, len(core.FleetSizes))
	for i, segments := range core.FleetSizes {
		ship := core.NewShip(core.NewCoordinate(0, i*2), segments, true)
		board.Place(ship)
		ships = append(ships, ship)
	}
	return ships
}

// SinkShip marks every cell of the ship on the given board.
func SinkShip(board *core.Board, ship *core.Ship) {
	for _, c := range ship.OccupiedCoordinates() {
		if !board.IsMarked(c) {
			board.Mark(c)
		}
	}
}
