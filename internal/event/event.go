package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeWorkoutSessionStarted   Type = "workout_session.started"
	TypeWorkoutSessionCompleted Type = "workout_session.completed"
	TypeWorkoutSessionCancelled Type = "workout_session.cancelled"
	TypeUserSignedIn            Type = "user.signed_in"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
	ActorID   string `json:"actor_id,omitempty"`
}

// New stamps an event with a fresh id and the current UTC time.
func New(t Type, actorID string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ActorID:   actorID,
	}
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
