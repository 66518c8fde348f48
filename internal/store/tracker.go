package store

import (
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// TrackerUpdate carries the editable fields of a day tracker.
type TrackerUpdate struct {
	Name    *string
	Date    *time.Time
	GroupID *string
}

func (s *ActivityStore) SetDayTrackers(trackers []model.DayTracker) {
	s.mu.Lock()
	s.trackers = append([]model.DayTracker(nil), trackers...)
	s.mu.Unlock()
}

func (s *ActivityStore) AddDayTracker(t model.DayTracker) {
	s.mu.Lock()
	s.trackers = append(s.trackers, t)
	s.mu.Unlock()
}

func (s *ActivityStore) UpdateDayTracker(id string, upd TrackerUpdate) (model.DayTracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.trackers {
		if t.ID != id {
			continue
		}
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Date != nil {
			t.Date = startOfDay(*upd.Date)
		}
		if upd.GroupID != nil {
			t.GroupID = *upd.GroupID
		}
		t.UpdatedAt = time.Now()
		s.trackers[i] = t
		return t, nil
	}
	return model.DayTracker{}, ErrTrackerNotFound
}

func (s *ActivityStore) RemoveDayTracker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.trackers {
		if t.ID == id {
			s.trackers = append(s.trackers[:i], s.trackers[i+1:]...)
			if s.selectedTrackerID == id {
				s.selectedTrackerID = ""
			}
			return nil
		}
	}
	return ErrTrackerNotFound
}

func (s *ActivityStore) DayTrackers() []model.DayTracker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.DayTracker(nil), s.trackers...)
}

// SelectTracker switches the visible activity scope.
func (s *ActivityStore) SelectTracker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trackers {
		if t.ID == id {
			s.selectedTrackerID = id
			return nil
		}
	}
	return ErrTrackerNotFound
}

func (s *ActivityStore) SelectedTrackerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTrackerID
}

// SetSelectedDate normalizes to the start of the day, matching how the
// tracker view addresses days.
func (s *ActivityStore) SetSelectedDate(d time.Time) {
	s.mu.Lock()
	s.selectedDate = startOfDay(d)
	s.mu.Unlock()
}

func (s *ActivityStore) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}
