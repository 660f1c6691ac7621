package state

import (
	"testing"
	"time"
)

// fakeClock advances only when told to, so confirmation-window tests
// never wait on the wall clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newHabitStore(clock *fakeClock, labels ...string) *Store {
	return NewMemory(nil, nil, labels, WithClock(clock.now))
}

func TestAddHabitColumnIgnoresDuplicates(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newHabitStore(clock, "Sleep 8h", "Read")

	added, err := s.AddHabitColumn("Read")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Fatal("duplicate label reported as added")
	}
	if got := s.HabitLabels(); len(got) != 2 {
		t.Fatalf("labels = %v", got)
	}

	if added, _ := s.AddHabitColumn("  "); added {
		t.Fatal("blank label reported as added")
	}

	if added, _ := s.AddHabitColumn("Meditate"); !added {
		t.Fatal("new label not added")
	}
	got := s.HabitLabels()
	if len(got) != 3 || got[2] != "Meditate" {
		t.Fatalf("labels = %v", got)
	}
}

func TestRemoveHabitColumnNeedsConfirmation(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newHabitStore(clock, "Sleep 8h", "Read")

	removed, err := s.RemoveHabitColumn("Read")
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("first call must not remove")
	}
	if got := s.HabitLabels(); len(got) != 2 {
		t.Fatalf("labels changed on first call: %v", got)
	}
	if pending, ok := s.PendingRemoval(); !ok || pending != "Read" {
		t.Fatalf("pending = %q ok=%v", pending, ok)
	}

	clock.advance(time.Second)
	removed, err = s.RemoveHabitColumn("Read")
	if err != nil || !removed {
		t.Fatalf("confirmed call: removed=%v err=%v", removed, err)
	}
	got := s.HabitLabels()
	if len(got) != 1 || got[0] != "Sleep 8h" {
		t.Fatalf("labels after removal = %v", got)
	}
	if _, ok := s.PendingRemoval(); ok {
		t.Fatal("pending mark should clear after removal")
	}
}

func TestRemoveHabitColumnPendingExpires(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newHabitStore(clock, "Sleep 8h", "Read")

	if removed, _ := s.RemoveHabitColumn("Read"); removed {
		t.Fatal("first call removed")
	}

	clock.advance(ConfirmWindow)

	// Late second call: the window has closed, so this starts a fresh
	// pending mark instead of removing.
	if removed, _ := s.RemoveHabitColumn("Read"); removed {
		t.Fatal("late second call must not remove")
	}
	if got := s.HabitLabels(); len(got) != 2 {
		t.Fatalf("labels = %v", got)
	}

	// The fresh mark confirms normally.
	clock.advance(ConfirmWindow - time.Millisecond)
	if removed, _ := s.RemoveHabitColumn("Read"); !removed {
		t.Fatal("confirmation inside the fresh window should remove")
	}
}

func TestRemoveHabitColumnDifferentLabelRestartsPending(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newHabitStore(clock, "Sleep 8h", "Read")

	if removed, _ := s.RemoveHabitColumn("Read"); removed {
		t.Fatal("first call removed")
	}
	if removed, _ := s.RemoveHabitColumn("Sleep 8h"); removed {
		t.Fatal("switching labels must not remove")
	}
	if pending, ok := s.PendingRemoval(); !ok || pending != "Sleep 8h" {
		t.Fatalf("pending = %q ok=%v", pending, ok)
	}
	// The original label needs a new two-step cycle now.
	if removed, _ := s.RemoveHabitColumn("Read"); removed {
		t.Fatal("stale label confirmed without a fresh mark")
	}
}

func TestRemoveHabitColumnKeepsHistoricalKeys(t *testing.T) {
	entries, labels := twoDayFixture()
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewMemory(entries, nil, labels, WithClock(clock.now))

	s.RemoveHabitColumn("Read")
	clock.advance(time.Second)
	if removed, _ := s.RemoveHabitColumn("Read"); !removed {
		t.Fatal("removal failed")
	}

	e, _ := s.Entry("d2")
	if _, ok := e.Habits["Read"]; !ok {
		t.Fatal("removing a column must not rewrite historical entries")
	}
}
