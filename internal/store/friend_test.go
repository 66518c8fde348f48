package store

import (
	"errors"
	"testing"

	"github.com/mkrause/bethere/internal/model"
)

func testFriend(id string, online bool) model.Friend {
	return model.Friend{
		User:             model.User{ID: id, Username: id, IsOnline: online},
		FriendshipID:     "fs-" + id,
		FriendshipStatus: model.FriendshipAccepted,
	}
}

func TestSetFriendOnline(t *testing.T) {
	s := NewFriendStore()
	s.SetFriends([]model.Friend{testFriend("friend-1", true)})

	if err := s.SetFriendOnline("friend-1", false); err != nil {
		t.Fatalf("set offline: %v", err)
	}
	f, ok := s.Friend("friend-1")
	if !ok {
		t.Fatal("friend missing")
	}
	if f.IsOnline {
		t.Error("friend still online")
	}
	if f.LastSeenAt == nil {
		t.Error("lastSeenAt not stamped on going offline")
	}

	if err := s.SetFriendOnline("nobody", true); !errors.Is(err, ErrFriendNotFound) {
		t.Errorf("err = %v, want ErrFriendNotFound", err)
	}
}

func TestGroupCRUD(t *testing.T) {
	s := NewFriendStore()
	s.AddGroup(model.FriendGroup{ID: "g1", Name: "Close Friends", Color: "#8b5cf6"})

	name := "Inner Circle"
	g, err := s.UpdateGroup("g1", GroupUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update group: %v", err)
	}
	if g.Name != "Inner Circle" {
		t.Errorf("name = %q", g.Name)
	}

	s.SelectGroup("g1")
	if err := s.RemoveGroup("g1"); err != nil {
		t.Fatalf("remove group: %v", err)
	}
	if got := s.SelectedGroupID(); got != "" {
		t.Errorf("selection survived group removal: %q", got)
	}
	if _, err := s.UpdateGroup("g1", GroupUpdate{}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("err = %v, want ErrGroupNotFound", err)
	}
}

func TestPendingRequests(t *testing.T) {
	s := NewFriendStore()
	s.AddPendingRequest(model.Friendship{ID: "r1", UserID: "u1", FriendID: "u2", Status: model.FriendshipPending})

	if got := len(s.PendingRequests()); got != 1 {
		t.Fatalf("requests = %d", got)
	}
	if err := s.RemovePendingRequest("r1"); err != nil {
		t.Fatalf("remove request: %v", err)
	}
	if err := s.RemovePendingRequest("r1"); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("err = %v, want ErrRequestNotFound", err)
	}
}
