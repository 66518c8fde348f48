package model

import "time"

type ParticipantStatus string

const (
	ParticipantJoined ParticipantStatus = "JOINED"
	ParticipantLeft   ParticipantStatus = "LEFT"
)

// Activity is a scheduled, time-bounded event on a tracker. EndTime is always
// strictly after StartTime; the store rejects anything else.
type Activity struct {
	ID                        string                `json:"id"`
	TrackerID                 string                `json:"trackerId"`
	OwnerID                   string                `json:"ownerId"`
	StatusTemplateID          string                `json:"statusTemplateId"`
	Title                     string                `json:"title,omitempty"`
	StartTime                 time.Time             `json:"startTime"`
	EndTime                   time.Time             `json:"endTime"`
	EndingSoonAt              *time.Time            `json:"endingSoonAt,omitempty"`
	UseGroupDefaultVisibility bool                  `json:"useGroupDefaultVisibility"`
	Participants              []ActivityParticipant `json:"participants,omitempty"`
	CreatedAt                 time.Time             `json:"createdAt"`
	UpdatedAt                 time.Time             `json:"updatedAt"`
}

// ActivityParticipant records a user having joined (and possibly left) an
// activity. At most one JOINED record exists per (activity, user) pair.
type ActivityParticipant struct {
	ID         string            `json:"id"`
	ActivityID string            `json:"activityId"`
	UserID     string            `json:"userId"`
	Status     ParticipantStatus `json:"status"`
	JoinedAt   time.Time         `json:"joinedAt"`
	LeftAt     *time.Time        `json:"leftAt,omitempty"`
}

// DayTracker is a named scope activities belong to ("My Day", or a
// group-specific view when GroupID is set).
type DayTracker struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Date      time.Time `json:"date"`
	GroupID   string    `json:"groupId,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
