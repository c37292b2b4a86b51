package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_FunctionHandler(t *testing.T) {
	bus := NewEventBus()

	var received Event
	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = e
	})

	bus.Publish(NewGameStartedEvent("test-game", "hard"))

	require.NotNil(t, received, "event should have been received")
	assert.Equal(t, TypeGameStarted, received.Type())
	assert.Equal(t, "test-game", received.GameID())
	assert.Equal(t, "hard", received.(*GameStartedEvent).Difficulty)
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	handler1Called := false
	handler2Called := false
	bus.SubscribeFunc(TypeShotFired, func(e Event) { handler1Called = true })
	bus.SubscribeFunc(TypeShotFired, func(e Event) { handler2Called = true })

	bus.Publish(NewShotFiredEvent("test-game", "player", 3, 4, true))

	assert.True(t, handler1Called)
	assert.True(t, handler2Called)
}

func TestEventBus_HandlerFilteredByType(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.SubscribeFunc(TypeGameEnded, func(e Event) { called = true })

	bus.Publish(NewShotFiredEvent("test-game", "computer", 0, 0, false))
	assert.False(t, called, "handler for a different event type must not fire")
}

// recordingSubscriber collects events for assertions.
type recordingSubscriber struct {
	id     string
	types  map[string]bool
	events []Event
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) InterestedIn(eventType string) bool {
	if len(s.types) == 0 {
		return true
	}
	return s.types[eventType]
}

func (s *recordingSubscriber) HandleEvent(e Event) {
	s.events = append(s.events, e)
}

func TestEventBus_Subscriber(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{id: "recorder", types: map[string]bool{TypeShipDestroyed: true}}
	bus.Subscribe(sub)
	assert.Equal(t, 1, bus.GetSubscriberCount())

	bus.Publish(NewShipDestroyedEvent("test-game", "player", 5))
	bus.Publish(NewShotFiredEvent("test-game", "player", 1, 1, false))

	require.Len(t, sub.events, 1)
	destroyed := sub.events[0].(*ShipDestroyedEvent)
	assert.Equal(t, "player", destroyed.Attacker)
	assert.Equal(t, 5, destroyed.Segments)

	bus.Unsubscribe("recorder")
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBus_PanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewEventBus()

	bus.SubscribeFunc(TypeGameEnded, func(e Event) {
		panic("handler failure")
	})
	survived := false
	bus.SubscribeFunc(TypeGameEnded, func(e Event) {
		survived = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(NewGameEndedEvent("test-game", "player"))
	})
	assert.True(t, survived, "later handlers must still run after a panic")
}
