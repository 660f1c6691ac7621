// Package state owns the three authoritative collections (daily entries,
// goals, habit labels) and exposes the closed set of mutations on them.
// Every accepted mutation is mirrored to persistence for its collection
// before the call returns; reads hand out deep copies so a snapshot a
// caller already holds is never changed underneath it.
package state

import (
	"sync"
	"time"

	"tableflip.dev/lifetrack/pkg/store"
	"tableflip.dev/lifetrack/pkg/tracker"
)

// Store serializes all mutations behind one mutex so each update derives
// from the latest accepted state, never from a stale read.
type Store struct {
	mu sync.Mutex
	p  store.Persistence

	now func() time.Time

	entries []tracker.DailyEntry
	goals   []tracker.Goal
	labels  []string

	// Transient two-step delete confirmation for habit columns. Never
	// persisted.
	pendingLabel string
	pendingUntil time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for new entry dates and the
// pending-delete window. Tests use it to avoid wall-clock waits.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store backed by p. Missing or unreadable collections fall
// back to the first-run seed data. A nil Persistence keeps everything in
// memory only.
func New(p store.Persistence, opts ...Option) *Store {
	s := &Store{p: p, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.entries = nil
	if p == nil || !p.Load(store.EntriesKey, &s.entries) {
		s.entries = tracker.SeedEntries(s.now())
	}
	s.goals = nil
	if p == nil || !p.Load(store.GoalsKey, &s.goals) {
		s.goals = tracker.SeedGoals()
	}
	s.labels = nil
	if p == nil || !p.Load(store.HabitLabelsKey, &s.labels) {
		s.labels = tracker.SeedHabitLabels()
	}
	return s
}

// NewMemory builds an unpersisted Store over explicit collections.
func NewMemory(entries []tracker.DailyEntry, goals []tracker.Goal, labels []string, opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		entries: tracker.CloneEntries(entries),
		goals:   tracker.CloneGoals(goals),
		labels:  append([]string(nil), labels...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entries returns a deep-copied snapshot in insertion order.
func (s *Store) Entries() []tracker.DailyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tracker.CloneEntries(s.entries)
}

// Goals returns a deep-copied snapshot in insertion order.
func (s *Store) Goals() []tracker.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tracker.CloneGoals(s.goals)
}

// HabitLabels returns a copy of the configured habit columns in order.
func (s *Store) HabitLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.labels...)
}

// Entry looks up one entry by id.
func (s *Store) Entry(id string) (tracker.DailyEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return tracker.DailyEntry{}, false
}

// Goal looks up one goal by id.
func (s *Store) Goal(id string) (tracker.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g.Clone(), true
		}
	}
	return tracker.Goal{}, false
}

func (s *Store) persistEntries() error {
	if s.p == nil {
		return nil
	}
	return s.p.Save(store.EntriesKey, s.entries)
}

func (s *Store) persistGoals() error {
	if s.p == nil {
		return nil
	}
	return s.p.Save(store.GoalsKey, s.goals)
}

func (s *Store) persistLabels() error {
	if s.p == nil {
		return nil
	}
	return s.p.Save(store.HabitLabelsKey, s.labels)
}
