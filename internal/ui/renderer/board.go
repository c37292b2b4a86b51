package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gridwars/battleship/internal/config"
	"github.com/gridwars/battleship/internal/game/core"
)

// markerPadding shrinks hit/miss markers slightly inside their cell.
const markerPadding = 3

// shipInset keeps ship hulls a little narrower than their cells.
const shipInset = 3

// BoardRenderer draws one battle grid: ships, attack markers and grid
// lines.
type BoardRenderer struct {
	cellSize int

	gridLineColor  color.RGBA
	shipColor      color.RGBA
	destroyedColor color.RGBA
	hitColor       color.RGBA
	missColor      color.RGBA
	validColor     color.RGBA
	invalidColor   color.RGBA
}

// NewBoardRenderer returns a renderer configured from the color scheme.
func NewBoardRenderer(cellSize int) *BoardRenderer {
	colors := config.Get().Colors
	return &BoardRenderer{
		cellSize:       cellSize,
		gridLineColor:  rgb(colors.GridLines),
		shipColor:      rgb(colors.Ship),
		destroyedColor: rgb(colors.ShipDestroyed),
		hitColor:       rgba(colors.HitMarker),
		missColor:      rgba(colors.MissMarker),
		validColor:     rgb(colors.PlacementValid),
		invalidColor:   rgb(colors.PlacementInvalid),
	}
}

// PixelWidth returns the drawn width of a grid in pixels.
func (br *BoardRenderer) PixelWidth() int {
	return core.GridWidth * br.cellSize
}

// PixelHeight returns the drawn height of a grid in pixels.
func (br *BoardRenderer) PixelHeight() int {
	return core.GridHeight * br.cellSize
}

// Draw renders the board at the given pixel offset. Ships are drawn
// when showShips is set (the player's own grid), when reveal is set
// (the debug overlay) or individually once destroyed.
func (br *BoardRenderer) Draw(screen *ebiten.Image, board *core.Board, offsetX, offsetY int, showShips, reveal bool) {
	for _, ship := range board.Ships() {
		if showShips || reveal || ship.IsDestroyed() {
			hull := br.shipColor
			if ship.IsDestroyed() {
				hull = br.destroyedColor
			}
			br.drawShip(screen, ship, offsetX, offsetY, hull)
		}
	}
	br.drawMarkers(screen, board, offsetX, offsetY)
	br.drawGridLines(screen, offsetX, offsetY)
}

// DrawPlacingShip renders the provisional ship during placement,
// tinted by whether the current position is a valid placement.
func (br *BoardRenderer) DrawPlacingShip(screen *ebiten.Image, ship *core.Ship, offsetX, offsetY int, valid bool) {
	hull := br.validColor
	if !valid {
		hull = br.invalidColor
	}
	br.drawShip(screen, ship, offsetX, offsetY, hull)
}

func (br *BoardRenderer) drawShip(screen *ebiten.Image, ship *core.Ship, offsetX, offsetY int, hull color.RGBA) {
	origin := ship.Origin()
	w, h := br.cellSize, br.cellSize
	if ship.Horizontal() {
		w = ship.Segments() * br.cellSize
	} else {
		h = ship.Segments() * br.cellSize
	}

	img := ebiten.NewImage(w-2*shipInset, h-2*shipInset)
	img.Fill(hull)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(offsetX+origin.X*br.cellSize+shipInset),
		float64(offsetY+origin.Y*br.cellSize+shipInset),
	)
	screen.DrawImage(img, op)
}

func (br *BoardRenderer) drawMarkers(screen *ebiten.Image, board *core.Board, offsetX, offsetY int) {
	side := br.cellSize - 2*markerPadding
	for y := 0; y < core.GridHeight; y++ {
		for x := 0; x < core.GridWidth; x++ {
			cell := board.CellAt(core.NewCoordinate(x, y))
			if !cell.Marked {
				continue
			}
			markerColor := br.missColor
			if cell.Ship != nil {
				markerColor = br.hitColor
			}
			img := ebiten.NewImage(side, side)
			img.Fill(markerColor)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(offsetX+x*br.cellSize+markerPadding),
				float64(offsetY+y*br.cellSize+markerPadding),
			)
			screen.DrawImage(img, op)
		}
	}
}

func (br *BoardRenderer) drawGridLines(screen *ebiten.Image, offsetX, offsetY int) {
	width := br.PixelWidth()
	height := br.PixelHeight()

	vertical := ebiten.NewImage(1, height)
	vertical.Fill(br.gridLineColor)
	for x := 0; x <= core.GridWidth; x++ {
		op := &ebiten.DrawImageOptions{}
		lineX := offsetX + x*br.cellSize
		if x == core.GridWidth {
			lineX--
		}
		op.GeoM.Translate(float64(lineX), float64(offsetY))
		screen.DrawImage(vertical, op)
	}

	horizontal := ebiten.NewImage(width, 1)
	horizontal.Fill(br.gridLineColor)
	for y := 0; y <= core.GridHeight; y++ {
		op := &ebiten.DrawImageOptions{}
		lineY := offsetY + y*br.cellSize
		if y == core.GridHeight {
			lineY--
		}
		op.GeoM.Translate(float64(offsetX), float64(lineY))
		screen.DrawImage(horizontal, op)
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

func rgba(c [4]int) color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: uint8(c[3])}
}
