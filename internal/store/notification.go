package store

import (
	"sync"
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// NotificationStore holds the inbox, newest first, and tracks the unread
// count as entries arrive and are read.
type NotificationStore struct {
	mu     sync.RWMutex
	items  []model.Notification
	unread int
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

func (s *NotificationStore) SetNotifications(items []model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]model.Notification(nil), items...)
	s.unread = 0
	for _, n := range s.items {
		if n.ReadAt == nil {
			s.unread++
		}
	}
}

// Add prepends a notification so the newest entry renders first.
func (s *NotificationStore) Add(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]model.Notification{n}, s.items...)
	if n.ReadAt == nil {
		s.unread++
	}
}

// MarkRead sets ReadAt once. Marking an already-read notification is a no-op;
// the transition never reverses.
func (s *NotificationStore) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].ReadAt == nil {
			now := time.Now()
			s.items[i].ReadAt = &now
			s.unread--
		}
		return nil
	}
	return ErrNotificationNotFound
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := range s.items {
		if s.items[i].ReadAt == nil {
			s.items[i].ReadAt = &now
		}
	}
	s.unread = 0
}

func (s *NotificationStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID == id {
			if n.ReadAt == nil {
				s.unread--
			}
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *NotificationStore) ClearAll() {
	s.mu.Lock()
	s.items = nil
	s.unread = 0
	s.mu.Unlock()
}

func (s *NotificationStore) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Notification(nil), s.items...)
}

func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}
