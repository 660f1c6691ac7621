package state

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/lifetrack/pkg/store"
	"tableflip.dev/lifetrack/pkg/tracker"
)

// fakePersistence records saves per key and can be told to fail writes.
type fakePersistence struct {
	saved    map[string]int
	failWith error
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{saved: map[string]int{}}
}

func (f *fakePersistence) Load(key string, out any) bool { return false }

func (f *fakePersistence) Save(key string, value any) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.saved[key]++
	return nil
}

func twoDayFixture() ([]tracker.DailyEntry, []string) {
	entries := []tracker.DailyEntry{
		{
			ID:   "d1",
			Date: "2025-03-09",
			Habits: map[string]bool{
				"Sleep 8h": true,
				"Read":     false,
			},
			Tasks: []tracker.Task{
				{ID: "t1", Text: "Routine Work", Done: true},
				{ID: "t2", Text: "Check Emails", Done: false},
			},
			Distraction: "Social Media",
			MinsWasted:  30,
		},
		{
			ID:   "d2",
			Date: "2025-03-10",
			Habits: map[string]bool{
				"Sleep 8h": true,
				"Read":     true,
			},
		},
	}
	return entries, []string{"Sleep 8h", "Read"}
}

func TestAddThenDeleteEntryRoundTrip(t *testing.T) {
	entries, labels := twoDayFixture()
	s := NewMemory(entries, nil, labels)

	before := s.Entries()
	added, err := s.AddEntry()
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if added.ID == "" || len(added.Habits) != 0 || len(added.Tasks) != 0 || added.MinsWasted != 0 {
		t.Fatalf("fresh entry has unexpected shape: %+v", added)
	}
	if got := len(s.Entries()); got != len(before)+1 {
		t.Fatalf("entry count after add = %d, want %d", got, len(before)+1)
	}

	removed, err := s.DeleteEntry(added.ID)
	if err != nil || !removed {
		t.Fatalf("delete entry: removed=%v err=%v", removed, err)
	}

	after := s.Entries()
	if len(after) != len(before) {
		t.Fatalf("entry count after round trip = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Fatalf("entry order disturbed at %d: %q vs %q", i, after[i].ID, before[i].ID)
		}
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	entries, labels := twoDayFixture()
	s := NewMemory(entries, tracker.SeedGoals(), labels)

	checks := []struct {
		name string
		call func() (bool, error)
	}{
		{"DeleteEntry", func() (bool, error) { return s.DeleteEntry("missing") }},
		{"SetEntryDate", func() (bool, error) { return s.SetEntryDate("missing", "2025-01-01") }},
		{"SetEntryNotes", func() (bool, error) { return s.SetEntryNotes("missing", "x") }},
		{"SetHabit", func() (bool, error) { return s.SetHabit("missing", "Read", true) }},
		{"ToggleEntryTask", func() (bool, error) { return s.ToggleEntryTask("d1", "missing") }},
		{"DeleteEntryTask", func() (bool, error) { return s.DeleteEntryTask("d1", "missing") }},
		{"DeleteGoal", func() (bool, error) { return s.DeleteGoal("missing") }},
		{"SetGoalTitle", func() (bool, error) { return s.SetGoalTitle("missing", "x") }},
		{"ToggleMilestone", func() (bool, error) { return s.ToggleMilestone("missing", "m1") }},
	}
	for _, tc := range checks {
		changed, err := tc.call()
		if err != nil {
			t.Fatalf("%s returned error: %v", tc.name, err)
		}
		if changed {
			t.Fatalf("%s on a missing id reported a change", tc.name)
		}
	}

	if got := len(s.Entries()); got != 2 {
		t.Fatalf("collection disturbed by no-ops: %d entries", got)
	}
}

func TestSetHabitCreatesKey(t *testing.T) {
	entries, labels := twoDayFixture()
	s := NewMemory(entries, nil, labels)

	changed, err := s.SetHabit("d2", "Workout", true)
	if err != nil || !changed {
		t.Fatalf("set habit: changed=%v err=%v", changed, err)
	}
	e, ok := s.Entry("d2")
	if !ok || !e.Habits["Workout"] {
		t.Fatalf("habit key not created: %+v", e.Habits)
	}
}

func TestEntryTaskLifecycle(t *testing.T) {
	entries, labels := twoDayFixture()
	s := NewMemory(entries, nil, labels)

	task, changed, err := s.AddEntryTask("d2", "Write report")
	if err != nil || !changed || task.ID == "" || task.Done {
		t.Fatalf("add task: %+v changed=%v err=%v", task, changed, err)
	}

	if changed, err := s.ToggleEntryTask("d2", task.ID); err != nil || !changed {
		t.Fatalf("toggle task: changed=%v err=%v", changed, err)
	}
	e, _ := s.Entry("d2")
	if len(e.Tasks) != 1 || !e.Tasks[0].Done {
		t.Fatalf("toggle did not stick: %+v", e.Tasks)
	}

	if changed, err := s.DeleteEntryTask("d2", task.ID); err != nil || !changed {
		t.Fatalf("delete task: changed=%v err=%v", changed, err)
	}
	e, _ = s.Entry("d2")
	if len(e.Tasks) != 0 {
		t.Fatalf("task not removed: %+v", e.Tasks)
	}

	if _, changed, _ := s.AddEntryTask("d2", ""); changed {
		t.Fatal("blank task text should be ignored")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	entries, labels := twoDayFixture()
	s := NewMemory(entries, nil, labels)

	snap := s.Entries()
	snap[0].Habits["Sleep 8h"] = false
	snap[0].Tasks[0].Done = false
	snap[0].Notes = "scribbled on"

	e, _ := s.Entry("d1")
	if !e.Habits["Sleep 8h"] || !e.Tasks[0].Done || e.Notes != "" {
		t.Fatal("mutating a returned snapshot leaked into the store")
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := NewMemory(nil, nil, nil)

	g, err := s.AddGoal()
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if g.Title != "New Goal" || g.Category != "Personal" || g.Status != tracker.NotStarted || len(g.Milestones) != 0 {
		t.Fatalf("goal defaults wrong: %+v", g)
	}

	if changed, err := s.SetGoalStatus(g.ID, tracker.InProgress); err != nil || !changed {
		t.Fatalf("set status: changed=%v err=%v", changed, err)
	}
	if changed, err := s.SetGoalTitle(g.ID, "Ship v1"); err != nil || !changed {
		t.Fatalf("set title: changed=%v err=%v", changed, err)
	}

	m, changed, err := s.AddMilestone(g.ID, "Cut release branch")
	if err != nil || !changed || m.Done {
		t.Fatalf("add milestone: %+v changed=%v err=%v", m, changed, err)
	}
	if changed, err := s.ToggleMilestone(g.ID, m.ID); err != nil || !changed {
		t.Fatalf("toggle milestone: changed=%v err=%v", changed, err)
	}

	got, ok := s.Goal(g.ID)
	if !ok {
		t.Fatal("goal vanished")
	}
	if got.Title != "Ship v1" || got.Status != tracker.InProgress {
		t.Fatalf("updates did not stick: %+v", got)
	}
	if len(got.Milestones) != 1 || !got.Milestones[0].Done {
		t.Fatalf("milestone state wrong: %+v", got.Milestones)
	}

	if removed, err := s.DeleteGoal(g.ID); err != nil || !removed {
		t.Fatalf("delete goal: removed=%v err=%v", removed, err)
	}
}

func TestAppendMilestonesPreservesOrder(t *testing.T) {
	goals := []tracker.Goal{{
		ID:    "g1",
		Title: "Run a Marathon",
		Milestones: []tracker.Task{
			{ID: "m0", Text: "Buy Running Shoes"},
		},
	}}
	s := NewMemory(nil, goals, nil)

	generated := []tracker.Task{
		{ID: "p1", Text: "Buy shoes"},
		{ID: "p2", Text: "Run 5k"},
		{ID: "p3", Text: "Run 10k"},
	}
	if changed, err := s.AppendMilestones("g1", generated); err != nil || !changed {
		t.Fatalf("append milestones: changed=%v err=%v", changed, err)
	}

	g, _ := s.Goal("g1")
	want := []string{"Buy Running Shoes", "Buy shoes", "Run 5k", "Run 10k"}
	if len(g.Milestones) != len(want) {
		t.Fatalf("milestone count = %d, want %d", len(g.Milestones), len(want))
	}
	for i, text := range want {
		if g.Milestones[i].Text != text {
			t.Fatalf("milestone %d = %q, want %q", i, g.Milestones[i].Text, text)
		}
		if i > 0 && g.Milestones[i].Done {
			t.Fatalf("generated milestone %d should start unchecked", i)
		}
	}
}

func TestPersistencePerCollectionChannels(t *testing.T) {
	p := newFakePersistence()
	s := New(p)

	if _, err := s.AddEntry(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddGoal(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddHabitColumn("Meditate"); err != nil {
		t.Fatal(err)
	}

	if p.saved[store.EntriesKey] != 1 {
		t.Fatalf("entries saved %d times, want 1", p.saved[store.EntriesKey])
	}
	if p.saved[store.GoalsKey] != 1 {
		t.Fatalf("goals saved %d times, want 1", p.saved[store.GoalsKey])
	}
	if p.saved[store.HabitLabelsKey] != 1 {
		t.Fatalf("labels saved %d times, want 1", p.saved[store.HabitLabelsKey])
	}
}

func TestRejectedMutationDoesNotPersist(t *testing.T) {
	p := newFakePersistence()
	s := New(p)
	base := p.saved[store.HabitLabelsKey]

	// Duplicate add is silently ignored and must not touch storage.
	if _, err := s.AddHabitColumn("Read"); err != nil {
		t.Fatal(err)
	}
	if p.saved[store.HabitLabelsKey] != base {
		t.Fatal("rejected duplicate add still hit persistence")
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	p := newFakePersistence()
	p.failWith = errors.New("quota exceeded")
	s := New(p)

	if _, err := s.AddEntry(); err == nil {
		t.Fatal("expected write failure to surface")
	}
}

func TestSeedFallbackOnFirstRun(t *testing.T) {
	s := New(newFakePersistence(), WithClock(func() time.Time {
		return time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	}))

	if got := len(s.Entries()); got != 7 {
		t.Fatalf("seed entries = %d, want 7", got)
	}
	if got := len(s.Goals()); got != 2 {
		t.Fatalf("seed goals = %d, want 2", got)
	}
	labels := s.HabitLabels()
	if len(labels) != 3 || labels[0] != "Sleep 8h" {
		t.Fatalf("seed labels = %v", labels)
	}
}
