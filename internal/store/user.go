package store

import (
	"sync"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// UserStore holds the current signed-in user for the session.
type UserStore struct {
	mu      sync.RWMutex
	current *model.User
}

// UserUpdate carries the profile fields the user can change.
type UserUpdate struct {
	DisplayName *string
	Email       *string
	Phone       *string
	AvatarURL   *string
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) SetCurrentUser(u model.User) {
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
}

func (s *UserStore) UpdateCurrentUser(upd UserUpdate) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return model.User{}, false
	}
	if upd.DisplayName != nil {
		s.current.DisplayName = *upd.DisplayName
	}
	if upd.Email != nil {
		s.current.Email = *upd.Email
	}
	if upd.Phone != nil {
		s.current.Phone = *upd.Phone
	}
	if upd.AvatarURL != nil {
		s.current.AvatarURL = *upd.AvatarURL
	}
	s.current.UpdatedAt = time.Now()
	return *s.current, true
}

func (s *UserStore) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *UserStore) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}
