// Package demo seeds the stores with the sample dataset used when no
// backend is available: one user, a handful of friends, the default status
// templates, two trackers, and a couple of evening activities.
package demo

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkrause/bethere/internal/model"
	"github.com/mkrause/bethere/internal/store"
	"github.com/mkrause/bethere/internal/timeline"
)

// Data is the full seed set.
type Data struct {
	User       model.User
	Friends    []model.Friend
	Groups     []model.FriendGroup
	Templates  []model.StatusTemplate
	Trackers   []model.DayTracker
	Activities []model.Activity
}

// Build assembles the demo dataset for the given day.
func Build(now time.Time) Data {
	day := timeline.StartOfDay(now)

	user := model.User{
		ID:          "demo-user-1",
		Username:    "demo",
		DisplayName: "Alex Demo",
		Email:       "alex@example.com",
		IsOnline:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	friends := []model.Friend{
		friend("friend-1", "jordan_k", "Jordan Kim", true, now),
		friend("friend-2", "sam_chen", "Sam Chen", true, now),
		friend("friend-3", "riley_j", "Riley Johnson", false, now),
		friend("friend-4", "casey_m", "Casey Morgan", false, now),
		friend("friend-5", "taylor_w", "Taylor Wilson", true, now),
	}

	groups := []model.FriendGroup{{
		ID:        "group-1",
		OwnerID:   user.ID,
		Name:      "Close Friends",
		Color:     "#8b5cf6",
		MemberIDs: []string{"friend-1", "friend-2", "friend-5"},
		CreatedAt: now,
		UpdatedAt: now,
	}}

	var templates []model.StatusTemplate
	for _, t := range model.DefaultStatusTemplates() {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		t.UpdatedAt = now
		templates = append(templates, t)
	}

	trackers := []model.DayTracker{
		{ID: "tracker-1", OwnerID: user.ID, Date: day, Name: "My Day", CreatedAt: now, UpdatedAt: now},
		{ID: "tracker-2", OwnerID: user.ID, Date: day, GroupID: "group-1", Name: "Close Friends", CreatedAt: now, UpdatedAt: now},
	}

	gym := model.Activity{
		ID:                        "activity-1",
		TrackerID:                 "tracker-1",
		OwnerID:                   user.ID,
		StatusTemplateID:          templates[0].ID,
		StartTime:                 day.Add(18 * time.Hour),
		EndTime:                   day.Add(19 * time.Hour),
		UseGroupDefaultVisibility: true,
		CreatedAt:                 now,
		UpdatedAt:                 now,
		Participants: []model.ActivityParticipant{
			joined("activity-1", "friend-1", now),
			joined("activity-1", "friend-2", now),
		},
	}
	movie := model.Activity{
		ID:                        "activity-2",
		TrackerID:                 "tracker-1",
		OwnerID:                   user.ID,
		StatusTemplateID:          templates[4].ID,
		Title:                     "Movie Night",
		StartTime:                 day.Add(20 * time.Hour),
		EndTime:                   day.Add(22*time.Hour + 30*time.Minute),
		UseGroupDefaultVisibility: true,
		CreatedAt:                 now,
		UpdatedAt:                 now,
		Participants: []model.ActivityParticipant{
			joined("activity-2", "friend-1", now),
			joined("activity-2", "friend-3", now),
			joined("activity-2", "friend-5", now),
		},
	}

	return Data{
		User:       user,
		Friends:    friends,
		Groups:     groups,
		Templates:  templates,
		Trackers:   trackers,
		Activities: []model.Activity{gym, movie},
	}
}

// Seed loads the dataset into the stores and selects the "My Day" tracker.
func Seed(data Data, activities *store.ActivityStore, friends *store.FriendStore, users *store.UserStore) error {
	users.SetCurrentUser(data.User)
	friends.SetFriends(data.Friends)
	friends.SetGroups(data.Groups)
	activities.SetStatusTemplates(data.Templates)
	activities.SetDayTrackers(data.Trackers)
	activities.SetSelectedDate(data.Trackers[0].Date)

	if err := activities.SetActivities(data.Activities); err != nil {
		return err
	}
	return activities.SelectTracker("tracker-1")
}

func friend(id, username, displayName string, online bool, now time.Time) model.Friend {
	var lastSeen *time.Time
	if !online {
		at := now.Add(-time.Hour)
		lastSeen = &at
	}
	return model.Friend{
		User: model.User{
			ID:          id,
			Username:    username,
			DisplayName: displayName,
			IsOnline:    online,
			LastSeenAt:  lastSeen,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		FriendshipID:     "fs-" + id,
		FriendshipStatus: model.FriendshipAccepted,
	}
}

func joined(activityID, userID string, now time.Time) model.ActivityParticipant {
	return model.ActivityParticipant{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		UserID:     userID,
		Status:     model.ParticipantJoined,
		JoinedAt:   now,
	}
}
