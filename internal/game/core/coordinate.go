package core

import "fmt"

// Coordinate represents a position on a battle grid.
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values.
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// InBounds checks if the coordinate lies on the fixed grid.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Add returns a new coordinate that is the sum of this coordinate and another.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Equal checks if two coordinates are equal.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// toIndex converts the coordinate to a grid array index using row-major ordering.
func (c Coordinate) toIndex() int {
	return c.Y*GridWidth + c.X
}

// Direction represents one of the four orthogonal attack directions.
// The declaration order is also the priority order used by the
// line-forming targeting heuristic.
type Direction int

const (
	Left Direction = iota
	Right
	Down
	Up
)

// DirectionVectors provides coordinate offsets for each direction.
var DirectionVectors = map[Direction]Coordinate{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Up:    {X: 0, Y: -1},
}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// Move returns a new coordinate moved one step in the given direction.
// The result may be off the grid; callers check InBounds where it matters.
func (c Coordinate) Move(direction Direction) Coordinate {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}

// AdjacentCells returns the orthogonal neighbours of this coordinate,
// excluding any that fall outside the grid. Order is left, right, up, down.
func (c Coordinate) AdjacentCells() []Coordinate {
	result := make([]Coordinate, 0, 4)
	if c.X != 0 {
		result = append(result, c.Move(Left))
	}
	if c.X != GridWidth-1 {
		result = append(result, c.Move(Right))
	}
	if c.Y != 0 {
		result = append(result, c.Move(Up))
	}
	if c.Y != GridHeight-1 {
		result = append(result, c.Move(Down))
	}
	return result
}
