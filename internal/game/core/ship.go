package core

// Ship is a single fleet entity occupying a contiguous run of cells.
// It tracks how many of its segments have been destroyed so the board
// can detect when the whole ship is gone.
type Ship struct {
	origin     Coordinate
	segments   int
	horizontal bool
	destroyed  int
}

// NewShip creates a ship at the given origin. Horizontal ships extend
// towards +x, vertical ships towards +y.
func NewShip(origin Coordinate, segments int, horizontal bool) *Ship {
	return &Ship{origin: origin, segments: segments, horizontal: horizontal}
}

// Origin returns the grid coordinate of the ship's first segment.
func (s *Ship) Origin() Coordinate { return s.origin }

// Segments returns the number of cells the ship occupies.
func (s *Ship) Segments() int { return s.segments }

// Horizontal reports the ship's orientation.
func (s *Ship) Horizontal() bool { return s.horizontal }

// SetOrigin moves the ship. Only meaningful before the ship has been
// committed to a board; placed ships never move.
func (s *Ship) SetOrigin(origin Coordinate) { s.origin = origin }

// ToggleOrientation flips the ship between horizontal and vertical.
// Used during interactive placement, before the ship is committed.
func (s *Ship) ToggleOrientation() { s.horizontal = !s.horizontal }

// OccupiedCoordinates returns the cells the ship covers, in order from
// the origin.
func (s *Ship) OccupiedCoordinates() []Coordinate {
	result := make([]Coordinate, 0, s.segments)
	for i := 0; i < s.segments; i++ {
		if s.horizontal {
			result = append(result, Coordinate{X: s.origin.X + i, Y: s.origin.Y})
		} else {
			result = append(result, Coordinate{X: s.origin.X, Y: s.origin.Y + i})
		}
	}
	return result
}

// RegisterHit records one destroyed segment. The count saturates at the
// segment total; the board's mark guard is what prevents double counting.
func (s *Ship) RegisterHit() {
	if s.destroyed < s.segments {
		s.destroyed++
	}
}

// DestroyedSegments returns how many segments have been destroyed.
func (s *Ship) DestroyedSegments() int { return s.destroyed }

// IsDestroyed reports whether every segment has been destroyed.
func (s *Ship) IsDestroyed() bool { return s.destroyed >= s.segments }
