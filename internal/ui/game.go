// Package ui is the ebiten desktop client. The computer's grid sits at
// the top of the window, the player's grid at the bottom, with a status
// panel between them.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/config"
	"github.com/gridwars/battleship/internal/game"
	"github.com/gridwars/battleship/internal/game/core"
	"github.com/gridwars/battleship/internal/game/states"
	"github.com/gridwars/battleship/internal/ui/input"
	"github.com/gridwars/battleship/internal/ui/renderer"
)

// Game implements ebiten.Game around one battleship engine.
type Game struct {
	engine   *game.Engine
	renderer *renderer.BoardRenderer
	status   *renderer.StatusPanel
	logger   zerolog.Logger

	cellSize     int
	statusHeight int
	// reveal shows the computer's ships. Renderer-owned debug state;
	// the engine never reads it.
	reveal bool
}

// New creates the client for an engine.
func New(engine *game.Engine, logger zerolog.Logger) *Game {
	cfg := config.Get()
	return &Game{
		engine:       engine,
		renderer:     renderer.NewBoardRenderer(cfg.UI.Game.CellSize),
		status:       renderer.NewStatusPanel(),
		logger:       logger.With().Str("component", "ui").Logger(),
		cellSize:     cfg.UI.Game.CellSize,
		statusHeight: cfg.UI.Game.StatusHeight,
		reveal:       cfg.Development.RevealShips,
	}
}

// playerGridY returns the pixel offset of the player's grid.
func (g *Game) playerGridY() int {
	return g.renderer.PixelHeight() + g.statusHeight
}

// Update handles one frame of input.
func (g *Game) Update() error {
	if input.IsQuitJustPressed() {
		return ebiten.Termination
	}
	if input.IsRestartJustPressed() {
		g.engine.Restart()
		g.status.Reset()
		g.reveal = config.Get().Development.RevealShips
		return nil
	}
	if input.IsRevealJustPressed() {
		g.reveal = !g.reveal
	}

	switch g.engine.Phase() {
	case states.PhasePlacing:
		g.updatePlacing()
	case states.PhaseAttacking:
		g.updateAttacking()
	}
	return nil
}

func (g *Game) updatePlacing() {
	if input.IsRotateJustPressed() {
		g.engine.RotatePlacing()
	}

	mouseX, mouseY := input.CursorPosition()
	x, y, ok := input.CellAt(mouseX, mouseY, 0, g.playerGridY(), g.cellSize, core.GridWidth, core.GridHeight)
	if !ok {
		return
	}
	target := core.NewCoordinate(x, y)
	g.engine.MovePlacing(target)

	if input.IsLeftClickJustPressed() {
		if g.engine.PlaceShip(target) && g.engine.Phase() == states.PhaseAttacking {
			g.status.AnnounceAttacking()
		}
	}
}

func (g *Game) updateAttacking() {
	if !input.IsLeftClickJustPressed() {
		return
	}
	mouseX, mouseY := input.CursorPosition()
	x, y, ok := input.CellAt(mouseX, mouseY, 0, 0, g.cellSize, core.GridWidth, core.GridHeight)
	if !ok {
		return
	}

	for _, result := range g.engine.Attack(core.NewCoordinate(x, y)) {
		if result.Side == game.SidePlayer {
			g.status.SetTopLine(result.String())
		} else {
			g.status.SetBottomLine(result.String())
		}
		if result.GameOver {
			g.status.ShowGameOver(result.Side == game.SidePlayer)
		}
	}
}

// Draw renders both grids, the ship being placed and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := config.Get().Colors.Background
	screen.Fill(color.RGBA{R: uint8(bg[0]), G: uint8(bg[1]), B: uint8(bg[2]), A: 0xff})

	g.renderer.Draw(screen, g.engine.ComputerBoard(), 0, 0, false, g.reveal)
	g.renderer.Draw(screen, g.engine.PlayerBoard(), 0, g.playerGridY(), true, false)

	if g.engine.Phase() == states.PhasePlacing {
		tracker := g.engine.Tracker()
		if !tracker.Done() {
			g.renderer.DrawPlacingShip(screen, tracker.Ship(), 0, g.playerGridY(), tracker.Valid())
		}
	}

	g.status.Draw(screen, 0, g.renderer.PixelHeight(), g.renderer.PixelWidth(), g.statusHeight)
}

// Layout defines the logical screen size: two grids plus the status
// panel between them.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.renderer.PixelWidth(), g.renderer.PixelHeight()*2 + g.statusHeight
}
