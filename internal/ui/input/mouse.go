package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func IsLeftClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// CellAt translates a screen position into a grid coordinate for a grid
// drawn at the given pixel offset. ok is false when the position falls
// outside the grid.
func CellAt(screenX, screenY, offsetX, offsetY, cellSize, gridWidth, gridHeight int) (x, y int, ok bool) {
	px := screenX - offsetX
	py := screenY - offsetY
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x = px / cellSize
	y = py / cellSize
	if x >= gridWidth || y >= gridHeight {
		return 0, 0, false
	}
	return x, y, true
}
