package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeShotFired       = "shot.fired"
	TypeShipDestroyed   = "ship.destroyed"
	TypeGameEnded       = "game.ended"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Difficulty string
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID, difficulty string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		Difficulty: difficulty,
	}
}

// ShotFiredEvent is published for every attack applied to a board
type ShotFiredEvent struct {
	BaseEvent
	Attacker string
	X, Y     int
	Hit      bool
}

// NewShotFiredEvent creates a new ShotFiredEvent
func NewShotFiredEvent(gameID, attacker string, x, y int, hit bool) *ShotFiredEvent {
	return &ShotFiredEvent{
		BaseEvent: BaseEvent{
			EventType: TypeShotFired,
			Time:      time.Now(),
			Game:      gameID,
		},
		Attacker: attacker,
		X:        x,
		Y:        y,
		Hit:      hit,
	}
}

// ShipDestroyedEvent is published when an attack destroys a ship's last segment
type ShipDestroyedEvent struct {
	BaseEvent
	Attacker string
	Segments int
}

// NewShipDestroyedEvent creates a new ShipDestroyedEvent
func NewShipDestroyedEvent(gameID, attacker string, segments int) *ShipDestroyedEvent {
	return &ShipDestroyedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeShipDestroyed,
			Time:      time.Now(),
			Game:      gameID,
		},
		Attacker: attacker,
		Segments: segments,
	}
}

// GameEndedEvent is published when one side's fleet is fully destroyed
type GameEndedEvent struct {
	BaseEvent
	Winner string
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID, winner string) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner: winner,
	}
}

// StateTransitionEvent is published on every phase change
type StateTransitionEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, from, to, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: BaseEvent{
			EventType: TypeStateTransition,
			Time:      time.Now(),
			Game:      gameID,
		},
		From:   from,
		To:     to,
		Reason: reason,
	}
}
