// Package ai implements the computer's targeting engine. Three
// strategies share one contract: pick the next attack coordinate
// against the opponent's board.
package ai

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gridwars/battleship/internal/game/core"
)

// Difficulty selects which strategy the computer plays with.
type Difficulty int

const (
	// Easy attacks entirely at random.
	Easy Difficulty = iota
	// Medium focuses on cells adjacent to known hits.
	Medium
	// Hard additionally prefers moves that extend a line of hits, and
	// opens its search on the most open cells.
	Hard
)

// String returns the string representation of a Difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Strategy chooses attack coordinates against the opponent's board.
// Every SelectMove consumes one coordinate from the strategy's move
// queue; within a game no coordinate is ever selected twice.
type Strategy interface {
	// SelectMove returns the next attack coordinate. It panics if the
	// move queue is empty: a full queue covers the whole grid, so the
	// game must already be over before exhaustion can occur.
	SelectMove() core.Coordinate
	// Reset reseeds the strategy's state for a new game.
	Reset()
	// Name identifies the strategy for logging.
	Name() string
}

// New returns the strategy for a difficulty level, reading the opponent
// board and drawing randomness from rng.
func New(difficulty Difficulty, opponent *core.Board, rng *rand.Rand) Strategy {
	switch difficulty {
	case Medium:
		return NewHunter(opponent, rng, false, false)
	case Hard:
		return NewHunter(opponent, rng, true, true)
	default:
		return NewRandom(opponent, rng)
	}
}

// moveQueue is the working set of not-yet-attacked opponent
// coordinates, seeded with the full grid and consumed one coordinate
// per turn.
type moveQueue struct {
	moves []core.Coordinate
	rng   *rand.Rand
}

func newMoveQueue(rng *rand.Rand) *moveQueue {
	q := &moveQueue{rng: rng}
	q.refill()
	return q
}

// refill repopulates the queue with every grid coordinate and shuffles.
func (q *moveQueue) refill() {
	q.moves = q.moves[:0]
	for x := 0; x < core.GridWidth; x++ {
		for y := 0; y < core.GridHeight; y++ {
			q.moves = append(q.moves, core.NewCoordinate(x, y))
		}
	}
	q.rng.Shuffle(len(q.moves), func(i, j int) {
		q.moves[i], q.moves[j] = q.moves[j], q.moves[i]
	})
}

func (q *moveQueue) len() int { return len(q.moves) }

// front returns the first queued coordinate without removing it.
func (q *moveQueue) front() core.Coordinate {
	if len(q.moves) == 0 {
		panic("ai: move queue exhausted")
	}
	return q.moves[0]
}

func (q *moveQueue) contains(c core.Coordinate) bool {
	for _, m := range q.moves {
		if m.Equal(c) {
			return true
		}
	}
	return false
}

// remove deletes c from the queue, preserving order.
func (q *moveQueue) remove(c core.Coordinate) {
	for i, m := range q.moves {
		if m.Equal(c) {
			q.moves = append(q.moves[:i], q.moves[i+1:]...)
			return
		}
	}
}
