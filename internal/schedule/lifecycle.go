package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkrause/bethere/internal/model"
	"github.com/mkrause/bethere/internal/store"
	"github.com/mkrause/bethere/internal/timeline"
)

// ErrNotOwner rejects time edits, quick exits, and deletes by anyone but the
// activity's owner.
var ErrNotOwner = errors.New("only the activity owner may do that")

// Lifecycle implements join/leave, quick exit, time editing, and deletion
// on top of the activity store.
type Lifecycle struct {
	activities *store.ActivityStore
	now        func() time.Time
}

func NewLifecycle(activities *store.ActivityStore) *Lifecycle {
	return &Lifecycle{activities: activities, now: time.Now}
}

// Join adds the user as a JOINED participant. Joining an activity the user
// already joined is a no-op.
func (l *Lifecycle) Join(activityID, userID string) error {
	return l.activities.AddParticipant(activityID, model.ActivityParticipant{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		UserID:     userID,
		Status:     model.ParticipantJoined,
		JoinedAt:   l.now(),
	})
}

// Leave removes the user's participant record.
func (l *Lifecycle) Leave(activityID, userID string) error {
	return l.activities.RemoveParticipant(activityID, userID)
}

// QuickExit signals the owner's imminent departure: the activity is flagged
// ending-soon for the next five minutes. The activity itself is not removed;
// an external process is expected to retire it.
func (l *Lifecycle) QuickExit(activityID, userID string) error {
	if err := l.requireOwner(activityID, userID); err != nil {
		return err
	}
	return l.activities.SetActivityEndingSoon(activityID, l.now().Add(timeline.QuickExitWindow))
}

// EditTime proposes a new time range. It commits only when newEnd > newStart;
// otherwise the prior values are retained and the error is returned for the
// edit form to surface.
func (l *Lifecycle) EditTime(activityID, userID string, newStart, newEnd time.Time) error {
	if err := l.requireOwner(activityID, userID); err != nil {
		return err
	}
	_, err := l.activities.UpdateActivity(activityID, store.ActivityUpdate{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	return err
}

// Delete removes the activity outright, participants included.
func (l *Lifecycle) Delete(activityID, userID string) error {
	if err := l.requireOwner(activityID, userID); err != nil {
		return err
	}
	return l.activities.RemoveActivity(activityID)
}

func (l *Lifecycle) requireOwner(activityID, userID string) error {
	a, ok := l.activities.Activity(activityID)
	if !ok {
		return store.ErrActivityNotFound
	}
	if a.OwnerID != userID {
		return ErrNotOwner
	}
	return nil
}
