package state

import "tableflip.dev/lifetrack/pkg/tracker"

// AddEntry appends a fresh, empty entry dated today and returns a copy
// of it.
func (s *Store) AddEntry() (tracker.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := tracker.NewEntry(s.now())
	s.entries = append(s.entries, e)
	return e.Clone(), s.persistEntries()
}

// DeleteEntry removes the entry with the given id. Unknown ids are a
// no-op.
func (s *Store) DeleteEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true, s.persistEntries()
		}
	}
	return false, nil
}

// mutateEntry applies fn to the entry with the given id and persists if
// it was found. The closed set of Set* operations below funnels through
// here so unknown ids stay no-ops everywhere.
func (s *Store) mutateEntry(id string, fn func(*tracker.DailyEntry)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			fn(&s.entries[i])
			return true, s.persistEntries()
		}
	}
	return false, nil
}

// SetEntryDate replaces the entry's ISO date string.
func (s *Store) SetEntryDate(id, date string) (bool, error) {
	return s.mutateEntry(id, func(e *tracker.DailyEntry) { e.Date = date })
}

// SetEntryDistraction replaces the entry's distraction label.
func (s *Store) SetEntryDistraction(id, distraction string) (bool, error) {
	return s.mutateEntry(id, func(e *tracker.DailyEntry) { e.Distraction = distraction })
}

// SetEntryMinutes replaces the minutes-wasted count. Negative input is
// coerced to zero.
func (s *Store) SetEntryMinutes(id string, mins int) (bool, error) {
	if mins < 0 {
		mins = 0
	}
	return s.mutateEntry(id, func(e *tracker.DailyEntry) { e.MinsWasted = mins })
}

// SetEntryNotes replaces the entry's free-form notes.
func (s *Store) SetEntryNotes(id, notes string) (bool, error) {
	return s.mutateEntry(id, func(e *tracker.DailyEntry) { e.Notes = notes })
}

// SetHabit records habit completion on one entry, creating the habit key
// if the entry has never seen it.
func (s *Store) SetHabit(entryID, label string, done bool) (bool, error) {
	return s.mutateEntry(entryID, func(e *tracker.DailyEntry) {
		if e.Habits == nil {
			e.Habits = map[string]bool{}
		}
		e.Habits[label] = done
	})
}

// AddEntryTask appends an unchecked task to the entry's list and returns
// a copy of it. Blank text or an unknown entry id is a no-op.
func (s *Store) AddEntryTask(entryID, text string) (tracker.Task, bool, error) {
	if text == "" {
		return tracker.Task{}, false, nil
	}
	var t tracker.Task
	changed, err := s.mutateEntry(entryID, func(e *tracker.DailyEntry) {
		t = tracker.NewTask(text)
		e.Tasks = append(e.Tasks, t)
	})
	return t, changed, err
}

// ToggleEntryTask flips the done flag of one task inside one entry.
func (s *Store) ToggleEntryTask(entryID, taskID string) (bool, error) {
	found := false
	changed, err := s.mutateEntry(entryID, func(e *tracker.DailyEntry) {
		for i := range e.Tasks {
			if e.Tasks[i].ID == taskID {
				e.Tasks[i].Done = !e.Tasks[i].Done
				found = true
				return
			}
		}
	})
	return changed && found, err
}

// DeleteEntryTask removes one task from one entry by id.
func (s *Store) DeleteEntryTask(entryID, taskID string) (bool, error) {
	found := false
	changed, err := s.mutateEntry(entryID, func(e *tracker.DailyEntry) {
		for i := range e.Tasks {
			if e.Tasks[i].ID == taskID {
				e.Tasks = append(e.Tasks[:i], e.Tasks[i+1:]...)
				found = true
				return
			}
		}
	})
	return changed && found, err
}
