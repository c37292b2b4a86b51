package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gridwars/battleship/internal/config"
)

// Default status messages.
const (
	placingTopLine     = "Place your Ships below!"
	placingBottomLine  = "Z to rotate."
	gameOverWinLine    = "You won! Well done!"
	gameOverLossLine   = "Game Over! You Lost :("
	gameOverBottomLine = "Press R to restart."
)

// StatusPanel shows a top and bottom line of text between the two
// grids.
type StatusPanel struct {
	topLine    string
	bottomLine string

	background color.RGBA
	textColor  color.RGBA
	face       font.Face
}

// NewStatusPanel creates a panel showing the ship placement messages.
func NewStatusPanel() *StatusPanel {
	p := &StatusPanel{
		background: rgb(config.Get().Colors.StatusBackground),
		textColor:  color.RGBA{A: 255},
		face:       basicfont.Face7x13,
	}
	p.Reset()
	return p
}

// Reset restores the default placement messages.
func (p *StatusPanel) Reset() {
	p.topLine = placingTopLine
	p.bottomLine = placingBottomLine
}

// SetTopLine sets the message on the top line.
func (p *StatusPanel) SetTopLine(message string) {
	p.topLine = message
}

// SetBottomLine sets the message on the bottom line.
func (p *StatusPanel) SetBottomLine(message string) {
	p.bottomLine = message
}

// AnnounceAttacking switches to the firing-phase messages.
func (p *StatusPanel) AnnounceAttacking() {
	p.topLine = "Attack the Computer!"
	p.bottomLine = "Destroy all Ships to win!"
}

// ShowGameOver sets the end-of-game messages.
func (p *StatusPanel) ShowGameOver(playerWon bool) {
	if playerWon {
		p.topLine = gameOverWinLine
	} else {
		p.topLine = gameOverLossLine
	}
	p.bottomLine = gameOverBottomLine
}

// Draw renders the panel background and both centred text lines inside
// the given pixel rectangle.
func (p *StatusPanel) Draw(screen *ebiten.Image, x, y, width, height int) {
	bg := ebiten.NewImage(width, height)
	bg.Fill(p.background)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(bg, op)

	p.drawCentred(screen, p.topLine, x, y+height/2-5, width)
	p.drawCentred(screen, p.bottomLine, x, y+height-12, width)
}

func (p *StatusPanel) drawCentred(screen *ebiten.Image, line string, x, baseline, width int) {
	bounds := text.BoundString(p.face, line)
	textWidth := bounds.Max.X - bounds.Min.X
	text.Draw(screen, line, p.face, x+(width-textWidth)/2, baseline, p.textColor)
}
