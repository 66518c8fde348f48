// Package stream ingests real-time events from the backend over a
// WebSocket: activity changes, participant joins/leaves, friend presence,
// and notifications. The client reconnects on a fixed delay until torn down.
package stream

import (
	"encoding/json"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// Event tags an envelope with its kind. Unknown tags are logged and ignored.
type Event string

const (
	EventAuth Event = "auth"

	EventActivityCreated    Event = "activity.created"
	EventActivityUpdated    Event = "activity.updated"
	EventActivityDeleted    Event = "activity.deleted"
	EventActivityEndingSoon Event = "activity.endingSoon"
	EventParticipantJoined  Event = "participant.joined"
	EventParticipantLeft    Event = "participant.left"
	EventPresenceUpdated    Event = "presence.updated"
	EventNotification       Event = "notification"
)

// Envelope is the wire shape of every stream message, inbound and outbound.
type Envelope struct {
	Event     Event           `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// AuthData authenticates the connection right after it opens.
type AuthData struct {
	UserID string `json:"userId"`
}

// ActivityPatch is the partial-update payload of activity.updated.
type ActivityPatch struct {
	ID                        string     `json:"id"`
	Title                     *string    `json:"title,omitempty"`
	StartTime                 *time.Time `json:"startTime,omitempty"`
	EndTime                   *time.Time `json:"endTime,omitempty"`
	UseGroupDefaultVisibility *bool      `json:"useGroupDefaultVisibility,omitempty"`
}

// ActivityRef identifies an activity for deletion.
type ActivityRef struct {
	ID string `json:"id"`
}

// EndingSoonData carries the ending-soon window for an activity.
type EndingSoonData struct {
	ActivityID   string    `json:"activityId"`
	EndingSoonAt time.Time `json:"endingSoonAt"`
}

// ParticipantLeftData identifies who left which activity.
type ParticipantLeftData struct {
	ActivityID string `json:"activityId"`
	UserID     string `json:"userId"`
}

// PresenceData carries a friend's online flag.
type PresenceData struct {
	UserID   string `json:"userId"`
	IsOnline bool   `json:"isOnline"`
}

// Payload aliases for the envelopes that carry whole entities.
type (
	ActivityData     = model.Activity
	ParticipantData  = model.ActivityParticipant
	NotificationData = model.Notification
)
