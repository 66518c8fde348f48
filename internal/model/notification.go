package model

import "time"

type NotificationType string

const (
	NotifyActivityCreated    NotificationType = "ACTIVITY_CREATED"
	NotifyActivityUpdated    NotificationType = "ACTIVITY_UPDATED"
	NotifyActivityDeleted    NotificationType = "ACTIVITY_DELETED"
	NotifyActivityEndingSoon NotificationType = "ACTIVITY_ENDING_SOON"
	NotifyParticipantJoined  NotificationType = "PARTICIPANT_JOINED"
	NotifyParticipantLeft    NotificationType = "PARTICIPANT_LEFT"
	NotifyFriendRequest      NotificationType = "FRIEND_REQUEST"
	NotifyFriendAccepted     NotificationType = "FRIEND_ACCEPTED"
)

type NotificationPayload struct {
	ActivityID    string `json:"activityId,omitempty"`
	ActivityTitle string `json:"activityTitle,omitempty"`
	UserID        string `json:"userId,omitempty"`
	UserName      string `json:"userName,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Notification is an inbox entry for the current user. ReadAt transitions
// once from nil to set and never reverses.
type Notification struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Type      NotificationType    `json:"type"`
	Payload   NotificationPayload `json:"payload"`
	ReadAt    *time.Time          `json:"readAt,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}
