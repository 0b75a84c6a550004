package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEventCarriesRequiredFields(t *testing.T) {
	ev := NewEvent(TypeCommandProcessed, "game-session", "session-1", nil)
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, TypeCommandProcessed, ev.EventType)
	assert.Equal(t, "session-1", ev.SessionID)
	assert.NotNil(t, ev.Payload)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestPublishRejectsIncompleteEvents(t *testing.T) {
	bus := NewEventBus([]string{"localhost:9092"})

	err := bus.Publish(context.Background(), TopicCommandEvents, Event{EventType: TypeCommandProcessed})
	assert.Error(t, err)

	ev := NewEvent(TypeParadoxTriggered, "game-session", "", nil)
	err = bus.Publish(context.Background(), TopicParadoxEvents, ev)
	assert.Error(t, err)
}

func TestPublishRejectsUnknownTopic(t *testing.T) {
	bus := NewEventBus([]string{"localhost:9092"})
	ev := NewEvent(TypeEraChanged, "game-session", "session-1", nil)
	assert.Error(t, bus.Publish(context.Background(), "no_such_topic", ev))
}
