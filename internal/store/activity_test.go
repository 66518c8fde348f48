package store

import (
	"errors"
	"testing"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func testActivity(id string) model.Activity {
	return model.Activity{
		ID:               id,
		TrackerID:        "tracker-1",
		OwnerID:          "user-1",
		StatusTemplateID: "status-1",
		StartTime:        day.Add(9 * time.Hour),
		EndTime:          day.Add(10 * time.Hour),
	}
}

func TestAddActivityRejectsInvalidRange(t *testing.T) {
	s := NewActivityStore()

	a := testActivity("a1")
	a.EndTime = a.StartTime
	if err := s.AddActivity(a); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}

	a.EndTime = a.StartTime.Add(-time.Hour)
	if err := s.AddActivity(a); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}

	if got := len(s.Activities()); got != 0 {
		t.Errorf("store holds %d activities after rejected adds", got)
	}
}

func TestUpdateActivityMergesPartial(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	title := "Morning lift"
	got, err := s.UpdateActivity("a1", ActivityUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Morning lift" {
		t.Errorf("title = %q", got.Title)
	}
	if !got.StartTime.Equal(day.Add(9 * time.Hour)) {
		t.Errorf("start changed: %v", got.StartTime)
	}
}

func TestUpdateActivityRejectsInvertedRange(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	// newStart=10:00, newEnd=09:30 must be rejected and prior values kept.
	newStart := day.Add(10 * time.Hour)
	newEnd := day.Add(9*time.Hour + 30*time.Minute)
	_, err := s.UpdateActivity("a1", ActivityUpdate{StartTime: &newStart, EndTime: &newEnd})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}

	a, ok := s.Activity("a1")
	if !ok {
		t.Fatal("activity missing")
	}
	if !a.StartTime.Equal(day.Add(9*time.Hour)) || !a.EndTime.Equal(day.Add(10*time.Hour)) {
		t.Errorf("prior times not retained: %v - %v", a.StartTime, a.EndTime)
	}
}

func TestUpdateActivityNotFound(t *testing.T) {
	s := NewActivityStore()
	if _, err := s.UpdateActivity("missing", ActivityUpdate{}); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("update err = %v, want ErrActivityNotFound", err)
	}
	if err := s.RemoveActivity("missing"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("remove err = %v, want ErrActivityNotFound", err)
	}
	if err := s.SetActivityEndingSoon("missing", day); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("ending soon err = %v, want ErrActivityNotFound", err)
	}
}

func TestAddParticipantIdempotent(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	p := model.ActivityParticipant{
		ID:         "p1",
		ActivityID: "a1",
		UserID:     "friend-1",
		Status:     model.ParticipantJoined,
		JoinedAt:   day,
	}
	if err := s.AddParticipant("a1", p); err != nil {
		t.Fatalf("first join: %v", err)
	}

	dup := p
	dup.ID = "p2"
	if err := s.AddParticipant("a1", dup); err != nil {
		t.Fatalf("second join: %v", err)
	}

	a, _ := s.Activity("a1")
	joined := 0
	for _, got := range a.Participants {
		if got.UserID == "friend-1" && got.Status == model.ParticipantJoined {
			joined++
		}
	}
	if joined != 1 {
		t.Errorf("joined records = %d, want exactly 1", joined)
	}
}

func TestRemoveParticipant(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	p := model.ActivityParticipant{ID: "p1", ActivityID: "a1", UserID: "friend-1", Status: model.ParticipantJoined}
	if err := s.AddParticipant("a1", p); err != nil {
		t.Fatalf("join: %v", err)
	}

	if err := s.RemoveParticipant("a1", "friend-1"); err != nil {
		t.Fatalf("remove participant: %v", err)
	}
	a, _ := s.Activity("a1")
	if len(a.Participants) != 0 {
		t.Errorf("participants = %d, want 0", len(a.Participants))
	}
}

func TestSnapshotUnaffectedByLaterMutations(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, uid := range []string{"u1", "u2"} {
		p := model.ActivityParticipant{ID: "p-" + uid, ActivityID: "a1", UserID: uid, Status: model.ParticipantJoined}
		if err := s.AddParticipant("a1", p); err != nil {
			t.Fatalf("join %s: %v", uid, err)
		}
	}

	snap, ok := s.Activity("a1")
	if !ok {
		t.Fatal("activity missing")
	}
	list := s.Activities()

	// Mutations after the snapshot must not reach through it.
	if err := s.RemoveParticipant("a1", "u1"); err != nil {
		t.Fatalf("remove participant: %v", err)
	}
	if err := s.AddParticipant("a1", model.ActivityParticipant{ID: "p3", ActivityID: "a1", UserID: "u3", Status: model.ParticipantJoined}); err != nil {
		t.Fatalf("join u3: %v", err)
	}

	if len(snap.Participants) != 2 || snap.Participants[0].UserID != "u1" || snap.Participants[1].UserID != "u2" {
		t.Errorf("snapshot mutated: %+v", snap.Participants)
	}
	if len(list) != 1 || len(list[0].Participants) != 2 || list[0].Participants[0].UserID != "u1" {
		t.Errorf("list snapshot mutated: %+v", list[0].Participants)
	}
}

func TestSetActivityEndingSoon(t *testing.T) {
	s := NewActivityStore()
	if err := s.AddActivity(testActivity("a1")); err != nil {
		t.Fatalf("add: %v", err)
	}

	at := day.Add(12 * time.Hour)
	if err := s.SetActivityEndingSoon("a1", at); err != nil {
		t.Fatalf("ending soon: %v", err)
	}
	a, _ := s.Activity("a1")
	if a.EndingSoonAt == nil || !a.EndingSoonAt.Equal(at) {
		t.Errorf("endingSoonAt = %v, want %v", a.EndingSoonAt, at)
	}
}

func TestActivitiesForTracker(t *testing.T) {
	s := NewActivityStore()
	a1 := testActivity("a1")
	a2 := testActivity("a2")
	a2.TrackerID = "tracker-2"
	if err := s.SetActivities([]model.Activity{a1, a2}); err != nil {
		t.Fatalf("set: %v", err)
	}

	got := s.ActivitiesForTracker("tracker-1")
	if len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("tracker-1 activities = %+v", got)
	}
}

func TestSetActivitiesValidatesAll(t *testing.T) {
	s := NewActivityStore()
	bad := testActivity("a1")
	bad.EndTime = bad.StartTime
	if err := s.SetActivities([]model.Activity{testActivity("a0"), bad}); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
	if got := len(s.Activities()); got != 0 {
		t.Errorf("partial load left %d activities", got)
	}
}

func TestInvariantHoldsAcrossMutations(t *testing.T) {
	s := NewActivityStore()
	s.AddActivity(testActivity("a1"))
	s.AddActivity(testActivity("a2"))

	end := day.Add(11 * time.Hour)
	s.UpdateActivity("a1", ActivityUpdate{EndTime: &end})
	badEnd := day.Add(8 * time.Hour)
	s.UpdateActivity("a2", ActivityUpdate{EndTime: &badEnd})

	for _, a := range s.Activities() {
		if !a.EndTime.After(a.StartTime) {
			t.Fatalf("invariant violated for %s: %v >= %v", a.ID, a.StartTime, a.EndTime)
		}
	}
}
