package tracker

import (
	"math/rand"
	"time"
)

// SeedEntries builds the first-run daily log: seven consecutive days
// ending on the provided day, with randomized habit completion and a
// couple of example tasks. The randomness is cosmetic; only the shape is
// contractual.
func SeedEntries(today time.Time) []DailyEntry {
	entries := make([]DailyEntry, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -(6 - i))

		first := "Routine Work"
		if i == 6 {
			first = "Finish Project X"
		}

		distraction := ""
		mins := 0
		if i%2 == 0 {
			distraction = "Social Media"
			mins = 30
		}

		entries = append(entries, DailyEntry{
			ID:   NewID(),
			Date: day.Format(DateLayout),
			Habits: map[string]bool{
				"Sleep 8h": rand.Float64() > 0.4,
				"Read":     rand.Float64() > 0.6,
				"Workout":  rand.Float64() > 0.5,
			},
			Tasks: []Task{
				{ID: NewID(), Text: first, Done: rand.Float64() > 0.3},
				{ID: NewID(), Text: "Check Emails", Done: true},
			},
			Distraction: distraction,
			MinsWasted:  mins,
		})
	}
	return entries
}

// SeedGoals builds the first-run example goals.
func SeedGoals() []Goal {
	return []Goal{
		{
			ID:       NewID(),
			Title:    "Read 12 Books",
			Category: "Personal",
			Deadline: "2024-12-31",
			Status:   InProgress,
			Milestones: []Task{
				{ID: NewID(), Text: `Finish "Atomic Habits"`, Done: true},
				{ID: NewID(), Text: "Buy Kindle", Done: true},
			},
		},
		{
			ID:       NewID(),
			Title:    "Run a Marathon",
			Category: "Health",
			Deadline: "2025-06-01",
			Status:   NotStarted,
			Milestones: []Task{
				{ID: NewID(), Text: "Buy Running Shoes", Done: false},
			},
		},
	}
}

// SeedHabitLabels returns a fresh copy of the default habit columns.
func SeedHabitLabels() []string {
	labels := make([]string, len(DefaultHabits))
	copy(labels, DefaultHabits)
	return labels
}
