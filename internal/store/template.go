package store

import (
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// TemplateUpdate carries the editable fields of a status template.
type TemplateUpdate struct {
	Label *string
	Color *string
	Icon  *string
}

func (s *ActivityStore) SetStatusTemplates(templates []model.StatusTemplate) {
	s.mu.Lock()
	s.templates = append([]model.StatusTemplate(nil), templates...)
	s.mu.Unlock()
}

func (s *ActivityStore) AddStatusTemplate(t model.StatusTemplate) {
	s.mu.Lock()
	s.templates = append(s.templates, t)
	s.mu.Unlock()
}

func (s *ActivityStore) UpdateStatusTemplate(id string, upd TemplateUpdate) (model.StatusTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID != id {
			continue
		}
		if upd.Label != nil {
			t.Label = *upd.Label
		}
		if upd.Color != nil {
			t.Color = *upd.Color
		}
		if upd.Icon != nil {
			t.Icon = *upd.Icon
		}
		t.UpdatedAt = time.Now()
		s.templates[i] = t
		return t, nil
	}
	return model.StatusTemplate{}, ErrTemplateNotFound
}

func (s *ActivityStore) RemoveStatusTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return ErrTemplateNotFound
}

func (s *ActivityStore) StatusTemplate(id string) (model.StatusTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return model.StatusTemplate{}, false
}

func (s *ActivityStore) StatusTemplates() []model.StatusTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StatusTemplate(nil), s.templates...)
}
