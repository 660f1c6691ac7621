// Package tracker defines the entities the rest of the application moves
// around: daily log entries, goals, and the tasks they own.
package tracker

import "time"

// DateLayout is the ISO date format used everywhere an entry or goal
// carries a calendar date.
const DateLayout = "2006-01-02"

// DailyEntry is one day's logged record of habits, tasks, distraction,
// and notes. Habits is keyed by habit label; a missing key reads as false.
// Stale keys for removed habit columns may remain and are ignored.
type DailyEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Habits      map[string]bool `json:"habits"`
	Tasks       []Task          `json:"tasks"`
	Distraction string          `json:"distraction"`
	MinsWasted  int             `json:"minsWasted"`
	Notes       string          `json:"notes"`
}

// NewEntry creates an empty entry dated to the provided moment.
func NewEntry(now time.Time) DailyEntry {
	return DailyEntry{
		ID:     NewID(),
		Date:   now.Format(DateLayout),
		Habits: map[string]bool{},
		Tasks:  []Task{},
	}
}

// Clone returns a deep copy so callers can hold a snapshot while the
// authoritative collection keeps changing.
func (e DailyEntry) Clone() DailyEntry {
	out := e
	out.Tasks = CloneTasks(e.Tasks)
	if e.Habits != nil {
		out.Habits = make(map[string]bool, len(e.Habits))
		for k, v := range e.Habits {
			out.Habits[k] = v
		}
	}
	return out
}

// CloneEntries deep-copies an entry collection.
func CloneEntries(entries []DailyEntry) []DailyEntry {
	out := make([]DailyEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// DefaultHabits is the habit column set used on first run.
var DefaultHabits = []string{"Sleep 8h", "Read", "Workout"}

// Distractions is the fixed option set offered when logging a
// distraction. The empty string means none. Stored values outside this
// set are tolerated.
var Distractions = []string{
	"",
	"Phone/Social Media",
	"Email/Slack",
	"Daydreaming",
	"Coworkers/Family",
	"Video Games",
	"YouTube",
}
