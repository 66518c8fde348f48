// Package store holds the client-side state for the session: activities and
// their templates and trackers, friends, notifications, and the current user.
// Each collection is owned by a single store instance; all mutation goes
// through that store's methods.
package store

import "errors"

// Mutations addressed at an unknown id fail with the matching sentinel rather
// than silently doing nothing, so callers can tell a stale reference apart
// from success.
var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrTemplateNotFound     = errors.New("status template not found")
	ErrTrackerNotFound      = errors.New("day tracker not found")
	ErrFriendNotFound       = errors.New("friend not found")
	ErrGroupNotFound        = errors.New("friend group not found")
	ErrRequestNotFound      = errors.New("friend request not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidTimeRange rejects any activity state where the end does not
	// come strictly after the start.
	ErrInvalidTimeRange = errors.New("activity end time must be after start time")
)
