package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/event"
)

func TestHub_BroadcastOnlyReachesActor(t *testing.T) {
	hub := NewHub(event.NewBus())
	mine := &Client{hub: hub, send: make(chan []byte, 1), userID: "u1"}
	other := &Client{hub: hub, send: make(chan []byte, 1), userID: "u2"}
	hub.clients[mine] = struct{}{}
	hub.clients[other] = struct{}{}

	hub.broadcast(event.New(event.TypeWorkoutSessionStarted, "u1", map[string]string{"id": "s1"}))

	require.Len(t, mine.send, 1)
	assert.Empty(t, other.send)

	var got event.Event
	require.NoError(t, json.Unmarshal(<-mine.send, &got))
	assert.Equal(t, event.TypeWorkoutSessionStarted, got.Type)
	assert.Equal(t, "u1", got.ActorID)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := NewHub(event.NewBus())
	slow := &Client{hub: hub, send: make(chan []byte), userID: "u1"}
	hub.clients[slow] = struct{}{}

	hub.broadcast(event.New(event.TypeWorkoutSessionCompleted, "u1", nil))

	assert.NotContains(t, hub.clients, slow)
	_, open := <-slow.send
	assert.False(t, open)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.example.com"})

	req := httptest.NewRequest("GET", "/api/v1/events", nil)
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))
}
