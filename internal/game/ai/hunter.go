package ai

import (
	"math/rand"

	"github.com/gridwars/battleship/internal/game/core"
)

// Hunter searches randomly until it finds a ship, then attacks the
// cells around its hits until the ship is destroyed.
//
// With preferLine set, adjacent candidates that would extend a known
// two-cell run of hits are taken first. With maximiseAdjacent set, the
// random search phase prefers the cell with the most unattacked
// neighbours instead of the front of the queue.
type Hunter struct {
	opponent *core.Board
	rng      *rand.Rand
	queue    *moveQueue

	// activeHits are marked hit coordinates whose ship is not yet
	// destroyed. Coordinates of a destroyed ship are pruned as soon as
	// the destruction is detected.
	activeHits []core.Coordinate

	preferLine       bool
	maximiseAdjacent bool
}

// NewHunter creates the hunting strategy against the given opponent
// board.
func NewHunter(opponent *core.Board, rng *rand.Rand, preferLine, maximiseAdjacent bool) *Hunter {
	return &Hunter{
		opponent:         opponent,
		rng:              rng,
		queue:            newMoveQueue(rng),
		preferLine:       preferLine,
		maximiseAdjacent: maximiseAdjacent,
	}
}

func (h *Hunter) Name() string {
	if h.preferLine {
		return "hunter-line"
	}
	return "hunter"
}

// Reset clears the hit history and reshuffles a fresh move queue.
func (h *Hunter) Reset() {
	h.activeHits = h.activeHits[:0]
	h.queue.refill()
}

// SelectMove picks an attack adjacent to known ship hits when any
// exist, otherwise falls back to randomized search. The chosen
// coordinate is recorded against the hit history and removed from the
// move queue regardless of outcome.
func (h *Hunter) SelectMove() core.Coordinate {
	var move core.Coordinate
	switch {
	case len(h.activeHits) > 0 && h.preferLine:
		move = h.lineFormingAttack()
	case len(h.activeHits) > 0:
		move = h.adjacentAttack()
	case h.maximiseAdjacent:
		move = h.mostOpenMove()
	default:
		move = h.queue.front()
	}
	h.updateHits(move)
	h.queue.remove(move)
	return move
}

// adjacentAttack picks uniformly at random among the candidates
// adjacent to current hits.
func (h *Hunter) adjacentAttack() core.Coordinate {
	candidates := h.adjacentCandidates()
	if len(candidates) == 0 {
		return h.queue.front()
	}
	return candidates[h.rng.Intn(len(candidates))]
}

// lineFormingAttack scans the candidates in generation order and takes
// the first one that would extend a run of two hits in any direction,
// testing directions in the fixed priority left, right, down, up. When
// no candidate extends a line it degrades to the uniform random choice.
func (h *Hunter) lineFormingAttack() core.Coordinate {
	candidates := h.adjacentCandidates()
	for _, candidate := range candidates {
		for _, direction := range []core.Direction{core.Left, core.Right, core.Down, core.Up} {
			if h.twoHitsInDirection(candidate, direction) {
				return candidate
			}
		}
	}
	if len(candidates) == 0 {
		return h.queue.front()
	}
	return candidates[h.rng.Intn(len(candidates))]
}

// twoHitsInDirection reports whether the two cells stepping away from
// start in the given direction are both active hits.
func (h *Hunter) twoHitsInDirection(start core.Coordinate, direction core.Direction) bool {
	test := start.Move(direction)
	if !h.isActiveHit(test) {
		return false
	}
	test = test.Move(direction)
	return h.isActiveHit(test)
}

// adjacentCandidates collects the grid-clipped neighbours of every
// active hit that are still in the move queue, deduplicated in
// generation order.
func (h *Hunter) adjacentCandidates() []core.Coordinate {
	var result []core.Coordinate
	for _, hit := range h.activeHits {
		for _, adjacent := range hit.AdjacentCells() {
			if containsCoordinate(result, adjacent) || !h.queue.contains(adjacent) {
				continue
			}
			result = append(result, adjacent)
		}
	}
	return result
}

// mostOpenMove returns the queued coordinate with the most unattacked
// orthogonal neighbours. A coordinate with all four open wins
// immediately; ties go to the first seen.
func (h *Hunter) mostOpenMove() core.Coordinate {
	best := h.queue.front()
	highest := -1
	for _, move := range h.queue.moves {
		count := h.openNeighbourCount(move)
		if count == 4 {
			return move
		}
		if count > highest {
			highest = count
			best = move
		}
	}
	return best
}

// openNeighbourCount counts the orthogonal neighbours of c that have
// not been attacked yet.
func (h *Hunter) openNeighbourCount(c core.Coordinate) int {
	count := 0
	for _, adjacent := range c.AdjacentCells() {
		if !h.opponent.IsMarked(adjacent) {
			count++
		}
	}
	return count
}

// updateHits records the selected move against the hit history. When
// the move hits a ship, the ship's full coordinate set is compared with
// the active hits; once every cell of the ship has been hit, all of its
// coordinates are pruned so only wounded, not-yet-destroyed ships
// remain tracked.
func (h *Hunter) updateHits(move core.Coordinate) {
	ship := h.opponent.ShipAt(move)
	if ship == nil {
		return
	}
	h.activeHits = append(h.activeHits, move)

	occupied := ship.OccupiedCoordinates()
	for _, c := range occupied {
		if !h.isActiveHit(c) {
			return
		}
	}
	for _, c := range occupied {
		h.removeActiveHit(c)
	}
}

func (h *Hunter) isActiveHit(c core.Coordinate) bool {
	return containsCoordinate(h.activeHits, c)
}

func (h *Hunter) removeActiveHit(c core.Coordinate) {
	for i, hit := range h.activeHits {
		if hit.Equal(c) {
			h.activeHits = append(h.activeHits[:i], h.activeHits[i+1:]...)
			return
		}
	}
}

func containsCoordinate(list []core.Coordinate, c core.Coordinate) bool {
	for _, item := range list {
		if item.Equal(c) {
			return true
		}
	}
	return false
}
