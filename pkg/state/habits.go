package state

import (
	"strings"
	"time"
)

// ConfirmWindow is how long a habit column stays marked for deletion
// before the mark expires. The exact value is a UI debounce, not a data
// invariant.
const ConfirmWindow = 3 * time.Second

// AddHabitColumn appends a habit column. Blank labels and duplicates are
// silently ignored.
func (s *Store) AddHabitColumn(label string) (bool, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.labels {
		if existing == label {
			return false, nil
		}
	}
	s.labels = append(s.labels, label)
	return true, s.persistLabels()
}

// RemoveHabitColumn implements the two-step delete confirmation: the
// first call marks the label pending and removes nothing; a second call
// for the same label inside ConfirmWindow performs the removal. A call
// after the window expires, or for a different label, starts a fresh
// pending mark. Removal leaves historical entries' habit maps untouched.
func (s *Store) RemoveHabitColumn(label string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.pendingLabel == label && now.Before(s.pendingUntil) {
		s.pendingLabel = ""
		s.pendingUntil = time.Time{}
		for i, existing := range s.labels {
			if existing == label {
				s.labels = append(s.labels[:i], s.labels[i+1:]...)
				return true, s.persistLabels()
			}
		}
		return false, nil
	}

	s.pendingLabel = label
	s.pendingUntil = now.Add(ConfirmWindow)
	return false, nil
}

// PendingRemoval reports which habit column, if any, is currently marked
// for deletion.
func (s *Store) PendingRemoval() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingLabel == "" || !s.now().Before(s.pendingUntil) {
		return "", false
	}
	return s.pendingLabel, true
}
