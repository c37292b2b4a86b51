package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key bindings follow the desktop client conventions: Z rotates the
// ship being placed, R restarts, D toggles the ship reveal overlay and
// Escape quits.

func IsRotateJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyZ)
}

func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsRevealJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyD)
}

func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
