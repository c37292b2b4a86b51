// Package game wires the boards, placement, AI and phase machine into a
// playable battleship match between a human and the computer.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/game/ai"
	"github.com/gridwars/battleship/internal/game/core"
	"github.com/gridwars/battleship/internal/game/events"
	"github.com/gridwars/battleship/internal/game/placement"
	"github.com/gridwars/battleship/internal/game/states"
)

// Side identifies which player performed an action.
type Side int

const (
	SidePlayer Side = iota
	SideComputer
)

// String returns the string representation of a Side.
func (s Side) String() string {
	if s == SideComputer {
		return "computer"
	}
	return "player"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

// ShotResult is the structured outcome of one attack, consumed by the
// status-line presenter.
type ShotResult struct {
	Side      Side
	Coord     core.Coordinate
	Hit       bool
	Destroyed *core.Ship
	GameOver  bool
}

// String formats the result the way the status panel shows it.
func (r ShotResult) String() string {
	who := "Player"
	if r.Side == SideComputer {
		who = "Computer"
	}
	outcome := "Missed"
	if r.Hit {
		outcome = "Hit"
	}
	suffix := ""
	if r.Destroyed != nil {
		suffix = "(Destroyed)"
	}
	return fmt.Sprintf("%s %s %s%s", who, outcome, r.Coord, suffix)
}

// Config carries the engine's dependencies. Rng must be injected for
// deterministic replay; a nil Rng falls back to a time-based seed.
type Config struct {
	Difficulty ai.Difficulty
	Rng        *rand.Rand
	Logger     zerolog.Logger
	Bus        *events.EventBus
}

// Engine owns the two boards and drives them through the
// Placing -> Attacking -> Over phases. All methods run on the single
// control thread; a human attack and the AI counter-attack complete
// back to back within one call.
type Engine struct {
	id         string
	player     *core.Board
	computer   *core.Board
	tracker    *placement.Tracker
	strategy   ai.Strategy
	machine    *states.Machine
	difficulty ai.Difficulty
	rng        *rand.Rand
	logger     zerolog.Logger
	bus        *events.EventBus

	winner    Side
	hasWinner bool
}

// NewEngine creates a game ready for the human to place ships. The
// computer's fleet is auto-placed immediately.
func NewEngine(cfg Config) *Engine {
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	id := uuid.NewString()
	e := &Engine{
		id:         id,
		player:     core.NewBoard(),
		computer:   core.NewBoard(),
		difficulty: cfg.Difficulty,
		rng:        rng,
		logger:     cfg.Logger.With().Str("game_id", id).Logger(),
		bus:        cfg.Bus,
	}
	e.tracker = placement.NewTracker(e.player)
	e.strategy = ai.New(cfg.Difficulty, e.player, rng)
	// A nil *EventBus must stay nil inside the Publisher interface.
	var bus events.Publisher
	if cfg.Bus != nil {
		bus = cfg.Bus
	}
	e.machine = states.NewMachine(id, cfg.Logger, bus)

	placement.AutoPlace(e.computer, rng)
	e.publish(events.NewGameStartedEvent(id, cfg.Difficulty.String()))
	e.logger.Info().Str("difficulty", cfg.Difficulty.String()).Msg("New game started")
	return e
}

// Restart resets both boards and the AI and re-enters the Placing phase.
func (e *Engine) Restart() {
	e.player.Reset()
	e.computer.Reset()
	e.tracker.Reset()
	e.strategy.Reset()
	e.hasWinner = false

	if err := e.machine.Reset("Restart requested"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to reset state machine")
	}
	placement.AutoPlace(e.computer, e.rng)
	e.publish(events.NewGameStartedEvent(e.id, e.difficulty.String()))
	e.logger.Info().Msg("Game restarted")
}

// MovePlacing moves the ship being placed. No-op outside Placing.
func (e *Engine) MovePlacing(target core.Coordinate) {
	if !e.machine.Phase().CanPlaceShips() {
		return
	}
	e.tracker.MoveTo(target)
}

// RotatePlacing toggles the orientation of the ship being placed.
// No-op outside Placing.
func (e *Engine) RotatePlacing() {
	if !e.machine.Phase().CanPlaceShips() {
		return
	}
	e.tracker.Rotate()
}

// PlaceShip moves the ship being placed to target and commits it when
// the placement is valid. Once the whole fleet is committed the game
// enters the Attacking phase. Returns true when a ship was committed.
func (e *Engine) PlaceShip(target core.Coordinate) bool {
	if !e.machine.Phase().CanPlaceShips() {
		return false
	}
	e.tracker.MoveTo(target)
	if !e.tracker.Confirm() {
		return false
	}
	if e.tracker.Done() {
		if err := e.machine.TransitionTo(states.PhaseAttacking, "Fleet placed"); err != nil {
			e.logger.Error().Err(err).Msg("Failed to enter attacking phase")
		}
	}
	return true
}

// AutoPlacePlayer places the human fleet automatically and enters the
// Attacking phase. Used by the headless simulator and by tests.
func (e *Engine) AutoPlacePlayer() {
	if !e.machine.Phase().CanPlaceShips() {
		return
	}
	for !e.tracker.Done() {
		placed := false
		for !placed {
			horizontal := e.rng.Intn(2) == 0
			if e.tracker.Ship().Horizontal() != horizontal {
				e.tracker.Rotate()
			}
			target := core.NewCoordinate(e.rng.Intn(core.GridWidth), e.rng.Intn(core.GridHeight))
			placed = e.PlaceShip(target)
		}
	}
}

// Attack applies the human attack at target against the computer's
// board. An attack on an already-marked cell is rejected: nothing
// changes and no results are returned. Otherwise the attack is applied
// and, when the game does not end with it, the AI's counter-move is
// selected and applied within the same call. Results are returned in
// the order the shots happened.
func (e *Engine) Attack(target core.Coordinate) []ShotResult {
	if !e.machine.Phase().CanReceiveAttacks() {
		return nil
	}
	if !target.InBounds() || e.computer.IsMarked(target) {
		return nil
	}

	results := make([]ShotResult, 0, 2)
	playerShot := e.applyShot(SidePlayer, e.computer, target)
	results = append(results, playerShot)

	if !playerShot.GameOver {
		aiMove := e.strategy.SelectMove()
		results = append(results, e.applyShot(SideComputer, e.player, aiMove))
	}
	return results
}

// applyShot marks one cell on the defending board, publishes the
// outcome, and ends the game when the defender's fleet is destroyed.
func (e *Engine) applyShot(side Side, defender *core.Board, target core.Coordinate) ShotResult {
	hit, err := defender.Mark(target)
	if err != nil {
		// Both callers guarantee an unmarked, in-bounds target.
		e.logger.Error().Err(err).Stringer("coord", target).Msg("Attack rejected by board")
		return ShotResult{Side: side, Coord: target}
	}

	result := ShotResult{Side: side, Coord: target, Hit: hit.Hit, Destroyed: hit.Destroyed}
	e.publish(events.NewShotFiredEvent(e.id, side.String(), target.X, target.Y, hit.Hit))
	e.logger.Debug().
		Str("attacker", side.String()).
		Stringer("coord", target).
		Bool("hit", hit.Hit).
		Msg("Shot applied")

	if hit.Destroyed != nil {
		e.publish(events.NewShipDestroyedEvent(e.id, side.String(), hit.Destroyed.Segments()))
	}

	if defender.AllDestroyed() {
		e.winner = side
		e.hasWinner = true
		result.GameOver = true
		if err := e.machine.TransitionTo(states.PhaseOver, "Fleet destroyed"); err != nil {
			e.logger.Error().Err(err).Msg("Failed to enter game over phase")
		}
		e.publish(events.NewGameEndedEvent(e.id, side.String()))
		e.logger.Info().Str("winner", side.String()).Msg("Game over")
	}
	return result
}

func (e *Engine) publish(event events.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}

// ID returns the unique identifier of this game.
func (e *Engine) ID() string { return e.id }

// Phase returns the current game phase.
func (e *Engine) Phase() states.Phase { return e.machine.Phase() }

// Difficulty returns the AI difficulty the game was created with.
func (e *Engine) Difficulty() ai.Difficulty { return e.difficulty }

// PlayerBoard returns the human player's board.
func (e *Engine) PlayerBoard() *core.Board { return e.player }

// ComputerBoard returns the computer's board.
func (e *Engine) ComputerBoard() *core.Board { return e.computer }

// Tracker returns the interactive placement state, for rendering the
// provisional ship during the Placing phase.
func (e *Engine) Tracker() *placement.Tracker { return e.tracker }

// Winner returns the winning side once the game is over.
func (e *Engine) Winner() (Side, bool) { return e.winner, e.hasWinner }
