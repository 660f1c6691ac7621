package tracker

import (
	"fmt"
	"strings"
)

// Status tracks where a goal sits in its lifecycle.
type Status string

const (
	NotStarted Status = "Not Started"
	InProgress Status = "In Progress"
	Completed  Status = "Completed"
)

// AllStatuses returns the supported goal statuses in display order.
func AllStatuses() []Status {
	return []Status{NotStarted, InProgress, Completed}
}

// ParseStatus converts a string to a Status or returns an error for
// unknown values. The empty string maps to NotStarted.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NotStarted, nil
	}
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return NotStarted, fmt.Errorf("tracker: unknown status %q", raw)
}

// Goal is a longer-horizon objective with milestones and a status.
// PlanNote holds the confirmation message of the last generated plan.
type Goal struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Deadline   string `json:"deadline"`
	Status     Status `json:"status"`
	Milestones []Task `json:"milestones"`
	PlanNote   string `json:"aiPlan,omitempty"`
}

// NewGoal creates a goal with the first-run defaults.
func NewGoal() Goal {
	return Goal{
		ID:         NewID(),
		Title:      "New Goal",
		Category:   "Personal",
		Deadline:   "2024-12-31",
		Status:     NotStarted,
		Milestones: []Task{},
	}
}

// Clone returns a deep copy of the goal.
func (g Goal) Clone() Goal {
	out := g
	out.Milestones = CloneTasks(g.Milestones)
	return out
}

// CloneGoals deep-copies a goal collection.
func CloneGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Clone()
	}
	return out
}
