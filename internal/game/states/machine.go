package states

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/game/events"
)

// Transition represents a state transition in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Machine manages phase transitions for one game. The game is driven by
// a single control thread, so no locking is required.
type Machine struct {
	gameID       string
	currentPhase Phase
	history      []Transition
	logger       zerolog.Logger
	bus          events.Publisher
}

// NewMachine creates a state machine starting in the Placing phase.
// bus may be nil, in which case transitions are not published.
func NewMachine(gameID string, logger zerolog.Logger, bus events.Publisher) *Machine {
	return &Machine{
		gameID:       gameID,
		currentPhase: PhasePlacing,
		history:      make([]Transition, 0, 8),
		logger:       logger.With().Str("game_id", gameID).Logger(),
		bus:          bus,
	}
}

// Phase returns the current game phase
func (m *Machine) Phase() Phase {
	return m.currentPhase
}

// TransitionTo attempts to transition to the specified phase
func (m *Machine) TransitionTo(target Phase, reason string) error {
	if !m.currentPhase.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", m.currentPhase, target)
	}

	previous := m.currentPhase
	m.currentPhase = target
	m.history = append(m.history, Transition{
		From:      previous,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if m.bus != nil {
		m.bus.Publish(events.NewStateTransitionEvent(m.gameID, previous.String(), target.String(), reason))
	}

	m.logger.Info().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// Reset clears the history and re-enters the Placing phase
func (m *Machine) Reset(reason string) error {
	if err := m.TransitionTo(PhasePlacing, reason); err != nil {
		return err
	}
	m.history = m.history[:0]
	return nil
}
