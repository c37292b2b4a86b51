package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/gridwars/battleship/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent = logEvent.Str("difficulty", e.Difficulty)
	case *events.ShotFiredEvent:
		logEvent = logEvent.Str("attacker", e.Attacker).Int("x", e.X).Int("y", e.Y).Bool("hit", e.Hit)
	case *events.ShipDestroyedEvent:
		logEvent = logEvent.Str("attacker", e.Attacker).Int("segments", e.Segments)
	case *events.GameEndedEvent:
		logEvent = logEvent.Str("winner", e.Winner)
	case *events.StateTransitionEvent:
		logEvent = logEvent.Str("from", e.From).Str("to", e.To).Str("reason", e.Reason)
	}

	logEvent.Msg("Game event")
}
