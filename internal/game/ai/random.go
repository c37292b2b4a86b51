package ai

import (
	"math/rand"

	"github.com/gridwars/battleship/internal/game/core"
)

// Random is the easy strategy: the move queue is shuffled once per game
// and consumed front to back, visiting every coordinate exactly once.
type Random struct {
	queue *moveQueue
}

// NewRandom creates the random strategy. The opponent board is not
// consulted; the parameter keeps the constructor signature uniform.
func NewRandom(_ *core.Board, rng *rand.Rand) *Random {
	return &Random{queue: newMoveQueue(rng)}
}

func (r *Random) Name() string { return "random" }

// Reset reshuffles a fresh move queue.
func (r *Random) Reset() {
	r.queue.refill()
}

// SelectMove pops the front of the shuffled queue.
func (r *Random) SelectMove() core.Coordinate {
	move := r.queue.front()
	r.queue.remove(move)
	return move
}
