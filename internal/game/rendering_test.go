package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwars/battleship/internal/game/core"
)

// The legend line contains one of every symbol, so the grid content is
// asserted through occurrence counts.
func TestRenderBoard(t *testing.T) {
	board := core.NewBoard()
	board.Place(core.NewShip(core.NewCoordinate(0, 0), 2, true))
	_, err := board.Mark(core.NewCoordinate(0, 0)) // hit
	require.NoError(t, err)
	_, err = board.Mark(core.NewCoordinate(5, 5)) // miss
	require.NoError(t, err)

	t.Run("Hidden", func(t *testing.T) {
		out := RenderBoard(board, false)
		assert.Equal(t, 2, strings.Count(out, "X"), "one hit plus the legend")
		assert.Equal(t, 2, strings.Count(out, "o"), "one miss plus the legend")
		// The surviving segment at (1,0) stays hidden.
		assert.Equal(t, 1, strings.Count(out, "■"), "legend only")
	})

	t.Run("Reveal", func(t *testing.T) {
		out := RenderBoard(board, true)
		assert.Equal(t, 2, strings.Count(out, "■"), "surviving segment plus the legend")
	})

	t.Run("DestroyedShipAlwaysShown", func(t *testing.T) {
		_, err := board.Mark(core.NewCoordinate(1, 0))
		require.NoError(t, err)
		out := RenderBoard(board, false)
		assert.Equal(t, 3, strings.Count(out, "X"), "both segments plus the legend")
	})

	t.Run("Layout", func(t *testing.T) {
		out := RenderBoard(board, false)
		// Header, ten rows, blank line and legend.
		assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 13)
	})
}
