package core

const (
	// GridWidth is the number of grid cells on the horizontal axis.
	GridWidth = 10
	// GridHeight is the number of grid cells on the vertical axis.
	GridHeight = 10
)

// FleetSizes defines the number of ships and the segment count of each.
// Both players place the same fleet.
var FleetSizes = [...]int{5, 4, 3, 3, 2}

// Cell is the per-position state of a board: which ship occupies it, if
// any, and whether it has been attacked. The occupant is set at most
// once, at placement time.
type Cell struct {
	Ship   *Ship
	Marked bool
}

// HitResult describes the outcome of marking a cell.
type HitResult struct {
	Coord Coordinate
	// Hit is true when the marked cell was occupied by a ship.
	Hit bool
	// Destroyed is non-nil when this mark destroyed the occupant's
	// last remaining segment.
	Destroyed *Ship
}

// Board is one player's grid: a GridWidth x GridHeight array of cells
// plus the ships placed on it.
type Board struct {
	cells []Cell // length GridWidth*GridHeight, row-major
	ships []*Ship
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		cells: make([]Cell, GridWidth*GridHeight),
		ships: make([]*Ship, 0, len(FleetSizes)),
	}
}

// Reset clears all cells and removes all ships.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.ships = b.ships[:0]
}

// CanPlace reports whether a ship with the given properties would sit
// fully on the grid without overlapping an existing ship.
func (b *Board) CanPlace(origin Coordinate, segments int, horizontal bool) bool {
	if origin.X < 0 || origin.Y < 0 {
		return false
	}
	if horizontal {
		if origin.Y >= GridHeight || origin.X+segments > GridWidth {
			return false
		}
	} else {
		if origin.X >= GridWidth || origin.Y+segments > GridHeight {
			return false
		}
	}
	ship := Ship{origin: origin, segments: segments, horizontal: horizontal}
	for _, c := range ship.OccupiedCoordinates() {
		if b.cells[c.toIndex()].Ship != nil {
			return false
		}
	}
	return true
}

// Place commits a ship to the board and records it as the occupant of
// each covered cell. Callers must have validated with CanPlace first.
func (b *Board) Place(ship *Ship) {
	b.ships = append(b.ships, ship)
	for _, c := range ship.OccupiedCoordinates() {
		b.cells[c.toIndex()].Ship = ship
	}
}

// Mark attacks a cell. Marking an already-marked cell is rejected with
// ErrAlreadyMarked and changes nothing; marking is exactly-once, so a
// ship can never be told about the same destroyed segment twice.
func (b *Board) Mark(coord Coordinate) (HitResult, error) {
	if !coord.InBounds() {
		return HitResult{}, ErrInvalidCoordinates
	}
	cell := &b.cells[coord.toIndex()]
	if cell.Marked {
		return HitResult{}, ErrAlreadyMarked
	}
	cell.Marked = true

	result := HitResult{Coord: coord}
	if cell.Ship != nil {
		cell.Ship.RegisterHit()
		result.Hit = true
		if cell.Ship.IsDestroyed() {
			result.Destroyed = cell.Ship
		}
	}
	return result, nil
}

// IsMarked reports whether the cell at coord has been attacked.
// Out-of-bounds coordinates read as unmarked.
func (b *Board) IsMarked(coord Coordinate) bool {
	if !coord.InBounds() {
		return false
	}
	return b.cells[coord.toIndex()].Marked
}

// ShipAt returns the ship occupying coord, or nil. This deliberately
// exposes ship identity: once the AI has hit a cell it may enumerate the
// owning ship's full coordinate set rather than inferring it from mark
// patterns.
func (b *Board) ShipAt(coord Coordinate) *Ship {
	if !coord.InBounds() {
		return nil
	}
	return b.cells[coord.toIndex()].Ship
}

// CellAt returns a copy of the cell state at coord for read-only
// consumers such as the renderer.
func (b *Board) CellAt(coord Coordinate) Cell {
	if !coord.InBounds() {
		return Cell{}
	}
	return b.cells[coord.toIndex()]
}

// Ships returns the ships placed on this board. Destroyed ships remain
// in the list until the next Reset.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// AllDestroyed reports whether every ship on the board has been
// destroyed. A board with no ships placed yet reads as not destroyed.
func (b *Board) AllDestroyed() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, ship := range b.ships {
		if !ship.IsDestroyed() {
			return false
		}
	}
	return true
}
