package core

import "errors"

var (
	ErrInvalidCoordinates = errors.New("coordinate outside grid")
	ErrAlreadyMarked      = errors.New("cell already marked")
	ErrInvalidPlacement   = errors.New("invalid ship placement")
	ErrGameOver           = errors.New("game is over")
)
