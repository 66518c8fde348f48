package store

import (
	"sync"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// ActivityStore holds schedulable activities, status templates, day trackers,
// and the current tracker/date selection.
type ActivityStore struct {
	mu         sync.RWMutex
	activities []model.Activity
	templates  []model.StatusTemplate
	trackers   []model.DayTracker

	selectedTrackerID string
	selectedDate      time.Time
}

// ActivityUpdate carries the fields of an activity that may be patched. Nil
// fields are left unchanged.
type ActivityUpdate struct {
	Title                     *string
	StartTime                 *time.Time
	EndTime                   *time.Time
	UseGroupDefaultVisibility *bool
}

func NewActivityStore() *ActivityStore {
	return &ActivityStore{selectedDate: startOfDay(time.Now())}
}

// SetActivities replaces the whole collection, used on initial load. Every
// entry must satisfy the time-range invariant.
func (s *ActivityStore) SetActivities(activities []model.Activity) error {
	for _, a := range activities {
		if !a.EndTime.After(a.StartTime) {
			return ErrInvalidTimeRange
		}
	}
	s.mu.Lock()
	s.activities = append([]model.Activity(nil), activities...)
	s.mu.Unlock()
	return nil
}

// AddActivity appends a new activity. It rejects EndTime <= StartTime so the
// invariant can never be observed violated.
func (s *ActivityStore) AddActivity(a model.Activity) error {
	if !a.EndTime.After(a.StartTime) {
		return ErrInvalidTimeRange
	}
	s.mu.Lock()
	s.activities = append(s.activities, a)
	s.mu.Unlock()
	return nil
}

// UpdateActivity merges the non-nil fields of upd into the activity with the
// given id and returns the result. The merged state must still satisfy the
// time-range invariant; otherwise nothing is committed.
func (s *ActivityStore) UpdateActivity(id string, upd ActivityUpdate) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Activity{}, ErrActivityNotFound
	}

	merged := s.activities[i]
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.StartTime != nil {
		merged.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		merged.EndTime = *upd.EndTime
	}
	if upd.UseGroupDefaultVisibility != nil {
		merged.UseGroupDefaultVisibility = *upd.UseGroupDefaultVisibility
	}

	if !merged.EndTime.After(merged.StartTime) {
		return model.Activity{}, ErrInvalidTimeRange
	}

	merged.UpdatedAt = time.Now()
	s.activities[i] = merged
	return merged, nil
}

// RemoveActivity deletes the activity outright. Embedded participant records
// go with it.
func (s *ActivityStore) RemoveActivity(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrActivityNotFound
	}
	s.activities = append(s.activities[:i], s.activities[i+1:]...)
	return nil
}

// SetActivityEndingSoon marks the activity as ending once real time passes
// the given instant.
func (s *ActivityStore) SetActivityEndingSoon(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrActivityNotFound
	}
	s.activities[i].EndingSoonAt = &at
	s.activities[i].UpdatedAt = time.Now()
	return nil
}

// AddParticipant appends a participant record. It is idempotent per
// (activity, user): a second JOINED record for the same user is ignored.
func (s *ActivityStore) AddParticipant(activityID string, p model.ActivityParticipant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(activityID)
	if i < 0 {
		return ErrActivityNotFound
	}
	for _, existing := range s.activities[i].Participants {
		if existing.UserID == p.UserID && existing.Status == model.ParticipantJoined {
			return nil
		}
	}
	s.activities[i].Participants = append(s.activities[i].Participants, p)
	return nil
}

// RemoveParticipant filters out the matching user's participant records.
func (s *ActivityStore) RemoveParticipant(activityID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(activityID)
	if i < 0 {
		return ErrActivityNotFound
	}
	// Fresh slice: compacting in place would overwrite elements a snapshot
	// returned earlier may still reference.
	var kept []model.ActivityParticipant
	for _, p := range s.activities[i].Participants {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	s.activities[i].Participants = kept
	return nil
}

// Activity returns a copy of the activity with the given id. The copy shares
// nothing with the store, so later mutations cannot reach it.
func (s *ActivityStore) Activity(id string) (model.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Activity{}, false
	}
	return cloneActivity(s.activities[i]), true
}

// Activities returns a copy of the full activity list.
func (s *ActivityStore) Activities() []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, cloneActivity(a))
	}
	return out
}

// ActivitiesForTracker returns the activities belonging to one tracker,
// which is the set the tracker view renders.
func (s *ActivityStore) ActivitiesForTracker(trackerID string) []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Activity
	for _, a := range s.activities {
		if a.TrackerID == trackerID {
			out = append(out, cloneActivity(a))
		}
	}
	return out
}

// cloneActivity copies the Participants slice along with the struct so a
// returned snapshot never aliases the store's backing array.
func cloneActivity(a model.Activity) model.Activity {
	if a.Participants != nil {
		a.Participants = append([]model.ActivityParticipant(nil), a.Participants...)
	}
	return a
}

func (s *ActivityStore) indexOf(id string) int {
	for i, a := range s.activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
