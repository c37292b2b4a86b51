// Package placement builds fleets: randomized auto-placement for the
// computer and an interactive tracker for the human player.
package placement

import (
	"math/rand"

	"github.com/gridwars/battleship/internal/common"
	"github.com/gridwars/battleship/internal/game/core"
)

// AutoPlace fills the board with the standard fleet at random positions.
// For each fleet entry it samples an orientation and an in-range origin,
// resampling until the ship fits. Ships never overlap. With the stock
// 10x10 grid and 17 fleet cells this terminates quickly in practice, so
// no retry cap is imposed.
func AutoPlace(board *core.Board, rng *rand.Rand) {
	for _, segments := range core.FleetSizes {
		horizontal := rng.Intn(2) == 0
		var origin core.Coordinate
		for {
			if horizontal {
				origin = core.NewCoordinate(rng.Intn(core.GridWidth-segments+1), rng.Intn(core.GridHeight))
			} else {
				origin = core.NewCoordinate(rng.Intn(core.GridWidth), rng.Intn(core.GridHeight-segments+1))
			}
			if board.CanPlace(origin, segments, horizontal) {
				break
			}
		}
		board.Place(core.NewShip(origin, segments, horizontal))
	}
}

// Tracker drives interactive placement of one fleet, one ship at a time.
// It holds a provisional ship that follows the pointer, reports per-frame
// placement validity for visual feedback, and commits the ship only on an
// explicit confirm when the placement is valid.
type Tracker struct {
	board      *core.Board
	fleetIndex int
	ship       *core.Ship
}

// NewTracker starts placement of a full fleet onto board.
func NewTracker(board *core.Board) *Tracker {
	t := &Tracker{board: board}
	t.ship = core.NewShip(core.NewCoordinate(0, 0), core.FleetSizes[0], true)
	return t
}

// Reset discards progress and starts placement over.
func (t *Tracker) Reset() {
	t.fleetIndex = 0
	t.ship = core.NewShip(core.NewCoordinate(0, 0), core.FleetSizes[0], true)
}

// Ship returns the provisional ship, for rendering.
func (t *Tracker) Ship() *core.Ship {
	return t.ship
}

// Done reports whether every fleet entry has been placed.
func (t *Tracker) Done() bool {
	return t.fleetIndex >= len(core.FleetSizes)
}

// Remaining returns how many ships are still to be placed.
func (t *Tracker) Remaining() int {
	return len(core.FleetSizes) - t.fleetIndex
}

// MoveTo moves the provisional ship, clamping so it never extends past
// the grid boundary.
func (t *Tracker) MoveTo(target core.Coordinate) {
	if t.Done() {
		return
	}
	segments := t.ship.Segments()
	x := common.Clamp(target.X, 0, core.GridWidth-1)
	y := common.Clamp(target.Y, 0, core.GridHeight-1)
	if t.ship.Horizontal() {
		x = common.Min(x, core.GridWidth-segments)
	} else {
		y = common.Min(y, core.GridHeight-segments)
	}
	t.ship.SetOrigin(core.NewCoordinate(x, y))
}

// Rotate toggles the provisional ship's orientation, re-clamping its
// position for the new shape.
func (t *Tracker) Rotate() {
	if t.Done() {
		return
	}
	t.ship.ToggleOrientation()
	t.MoveTo(t.ship.Origin())
}

// Valid reports whether the provisional ship could be committed at its
// current position.
func (t *Tracker) Valid() bool {
	if t.Done() {
		return false
	}
	return t.board.CanPlace(t.ship.Origin(), t.ship.Segments(), t.ship.Horizontal())
}

// Confirm commits the provisional ship if its placement is valid and
// advances to the next fleet entry. The next ship starts horizontal at
// the confirmed position, clamped to fit. Returns false, with no board
// mutation, when the placement is invalid.
func (t *Tracker) Confirm() bool {
	if !t.Valid() {
		return false
	}
	origin := t.ship.Origin()
	t.board.Place(t.ship)
	t.fleetIndex++
	if !t.Done() {
		t.ship = core.NewShip(origin, core.FleetSizes[t.fleetIndex], true)
		t.MoveTo(origin)
	}
	return true
}
