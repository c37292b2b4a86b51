package game

import (
	"fmt"
	"strings"

	"github.com/gridwars/battleship/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorWhite = "\033[37m"
	ColorGray  = "\033[90m"
)

// RenderBoard builds a compact ANSI rendering of one board. Hidden
// ships are only drawn when reveal is set or the ship is destroyed,
// mirroring what the graphical client shows.
func RenderBoard(b *core.Board, reveal bool) string {
	const (
		waterSymbol = "·"
		shipSymbol  = "■"
		hitSymbol   = "X"
		missSymbol  = "o"
	)

	var sb strings.Builder

	// Column headers
	sb.WriteString("   ")
	for x := 0; x < core.GridWidth; x++ {
		sb.WriteString(fmt.Sprintf("%2d", x))
	}
	sb.WriteString("\n")

	for y := 0; y < core.GridHeight; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < core.GridWidth; x++ {
			cell := b.CellAt(core.NewCoordinate(x, y))

			var symbol, color string
			switch {
			case cell.Marked && cell.Ship != nil:
				symbol = hitSymbol
				color = ColorRed
			case cell.Marked:
				symbol = missSymbol
				color = ColorBlue
			case cell.Ship != nil && (reveal || cell.Ship.IsDestroyed()):
				symbol = shipSymbol
				color = ColorWhite
			default:
				symbol = waterSymbol
				color = ColorGray
			}
			sb.WriteString(" " + color + symbol + ColorReset)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + waterSymbol + "=water " + shipSymbol + "=ship " + hitSymbol + "=hit " + missSymbol + "=miss\n")
	return sb.String()
}
