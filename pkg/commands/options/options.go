// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry, goal, and task.")
}

// DayOptions carries the editable fields of a daily entry. Commands
// check cmd.Flags().Changed to tell a provided empty value from an
// untouched field.
type DayOptions struct {
	Date        string
	Distraction string
	Minutes     int
	Notes       string
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Set the entry date, example: --date="2025-03-12".`)
	cmd.Flags().StringVar(&o.Distraction, "distraction", "",
		"Set the main distraction, empty clears it.")
	cmd.Flags().IntVar(&o.Minutes, "minutes", 0,
		"Set the minutes lost to the distraction.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Set the notes for the day.")
}

// GoalOptions carries the editable fields of a goal.
type GoalOptions struct {
	Title    string
	Category string
	Deadline string
	Status   string
}

func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Set the goal title.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Set the goal category.")
	cmd.Flags().StringVar(&o.Deadline, "deadline", "",
		`Set the goal deadline, example: --deadline="2025-12-31".`)
	cmd.Flags().StringVar(&o.Status, "status", "",
		`Set the goal status, one of "not-started", "in-progress", "completed".`)
}

// TaskOptions
type TaskOptions struct {
	Goal bool
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().BoolVarP(&o.Goal, "goal", "g", false,
		"Operate on a goal's milestones instead of an entry's tasks.")
}

// HabitOptions
type HabitOptions struct {
	Confirm bool
}

func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().BoolVarP(&o.Confirm, "yes", "y", false,
		"Confirm removal without a second invocation.")
}

// ExportOptions
type ExportOptions struct {
	Path string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Path, "output", "o", "",
		`File to write, "-" for stdout. Defaults to life_tracker_data.csv.`)
}

// CoachOptions
type CoachOptions struct {
	Plain bool
}

func AddCoachArgs(cmd *cobra.Command, o *CoachOptions) {
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		"Print the summary without markdown rendering.")
}
