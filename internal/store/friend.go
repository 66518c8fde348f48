package store

import (
	"sync"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// FriendStore holds the friend list, friend groups, and pending requests.
type FriendStore struct {
	mu       sync.RWMutex
	friends  []model.Friend
	groups   []model.FriendGroup
	requests []model.Friendship

	selectedGroupID string
}

// GroupUpdate carries the editable fields of a friend group.
type GroupUpdate struct {
	Name      *string
	Color     *string
	MemberIDs *[]string
}

func NewFriendStore() *FriendStore {
	return &FriendStore{}
}

func (s *FriendStore) SetFriends(friends []model.Friend) {
	s.mu.Lock()
	s.friends = append([]model.Friend(nil), friends...)
	s.mu.Unlock()
}

func (s *FriendStore) AddFriend(f model.Friend) {
	s.mu.Lock()
	s.friends = append(s.friends, f)
	s.mu.Unlock()
}

func (s *FriendStore) RemoveFriend(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.friends {
		if f.ID == id {
			s.friends = append(s.friends[:i], s.friends[i+1:]...)
			return nil
		}
	}
	return ErrFriendNotFound
}

// SetFriendOnline updates a friend's presence flag, driven by
// presence.updated stream events.
func (s *FriendStore) SetFriendOnline(id string, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.friends {
		if s.friends[i].ID == id {
			s.friends[i].IsOnline = online
			if !online {
				now := time.Now()
				s.friends[i].LastSeenAt = &now
			}
			return nil
		}
	}
	return ErrFriendNotFound
}

func (s *FriendStore) Friend(id string) (model.Friend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.friends {
		if f.ID == id {
			return f, true
		}
	}
	return model.Friend{}, false
}

func (s *FriendStore) Friends() []model.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Friend(nil), s.friends...)
}

func (s *FriendStore) SetGroups(groups []model.FriendGroup) {
	s.mu.Lock()
	s.groups = append([]model.FriendGroup(nil), groups...)
	s.mu.Unlock()
}

func (s *FriendStore) AddGroup(g model.FriendGroup) {
	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.mu.Unlock()
}

func (s *FriendStore) UpdateGroup(id string, upd GroupUpdate) (model.FriendGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.groups {
		if g.ID != id {
			continue
		}
		if upd.Name != nil {
			g.Name = *upd.Name
		}
		if upd.Color != nil {
			g.Color = *upd.Color
		}
		if upd.MemberIDs != nil {
			g.MemberIDs = append([]string(nil), (*upd.MemberIDs)...)
		}
		g.UpdatedAt = time.Now()
		s.groups[i] = g
		return g, nil
	}
	return model.FriendGroup{}, ErrGroupNotFound
}

func (s *FriendStore) RemoveGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.groups {
		if g.ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			if s.selectedGroupID == id {
				s.selectedGroupID = ""
			}
			return nil
		}
	}
	return ErrGroupNotFound
}

func (s *FriendStore) Groups() []model.FriendGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.FriendGroup(nil), s.groups...)
}

func (s *FriendStore) SetPendingRequests(requests []model.Friendship) {
	s.mu.Lock()
	s.requests = append([]model.Friendship(nil), requests...)
	s.mu.Unlock()
}

func (s *FriendStore) AddPendingRequest(r model.Friendship) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()
}

func (s *FriendStore) RemovePendingRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return ErrRequestNotFound
}

func (s *FriendStore) PendingRequests() []model.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Friendship(nil), s.requests...)
}

func (s *FriendStore) SelectGroup(id string) {
	s.mu.Lock()
	s.selectedGroupID = id
	s.mu.Unlock()
}

func (s *FriendStore) SelectedGroupID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedGroupID
}
