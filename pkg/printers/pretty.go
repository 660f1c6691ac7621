// Package printers renders collections for the plain CLI commands.
package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lifetrack/pkg/stats"
	"tableflip.dev/lifetrack/pkg/timeutil"
	"tableflip.dev/lifetrack/pkg/tracker"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// DailyLog prints the log table, newest first, habit columns in the
// current configured order.
func (pp *PrettyPrint) DailyLog(entries []tracker.DailyEntry, labels []string) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40

	header := []interface{}{}
	if pp.ShowID {
		header = append(header, bold("ID"))
	}
	header = append(header, bold("Date"))
	for _, label := range labels {
		header = append(header, bold(label))
	}
	header = append(header, bold("Score"), bold("Tasks"), bold("Distraction"), bold("Mins"), bold("Notes"))
	tbl.AddRow(header...)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, e.ID)
		}
		row = append(row, e.Date)
		for _, label := range labels {
			row = append(row, checkbox(e.Habits[label]))
		}
		row = append(row,
			fmt.Sprintf("%d%%", round(stats.Score(e, labels))),
			fmt.Sprintf("%d/%d", tracker.CountDone(e.Tasks), len(e.Tasks)),
			orDash(e.Distraction),
			fmt.Sprintf("%d", e.MinsWasted),
			e.Notes,
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tasks prints one entry's checklist.
func (pp *PrettyPrint) Tasks(tasks []tracker.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()
	for _, t := range tasks {
		line := fmt.Sprintf("%s %s", checkbox(t.Done), t.Text)
		if pp.ShowID {
			line = fmt.Sprintf("%s  %s", t.ID, line)
		}
		if t.Done {
			_, _ = done.Println(line)
		} else {
			_, _ = open.Println(line)
		}
	}
	fmt.Println("")
}

// Goals prints the goal grid as a list with milestones underneath.
func (pp *PrettyPrint) Goals(goals []tracker.Goal) {
	if len(goals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	for _, g := range goals {
		title := color.New(color.Bold)
		meta := color.New(color.Faint)

		if pp.ShowID {
			_, _ = meta.Printf("%s  ", g.ID)
		}
		_, _ = title.Print(g.Title)
		_, _ = statusColor(g.Status).Printf("  [%s]", g.Status)
		_, _ = meta.Printf("  %s · due %s\n", g.Category, g.Deadline)

		for _, m := range g.Milestones {
			line := fmt.Sprintf("  %s %s", checkbox(m.Done), m.Text)
			if pp.ShowID {
				line = fmt.Sprintf("  %s%s", m.ID+"  ", strings.TrimPrefix(line, "  "))
			}
			if m.Done {
				_, _ = color.New(color.Faint).Println(line)
			} else {
				fmt.Println(line)
			}
		}
		if g.PlanNote != "" {
			_, _ = meta.Printf("  %s\n", g.PlanNote)
		}
		fmt.Println("")
	}
}

// Dashboard prints the aggregate view: consistency bars, distraction
// impact, and the per-day score strip.
func (pp *PrettyPrint) Dashboard(entries []tracker.DailyEntry, labels []string) {
	summary := stats.Summarize(entries, labels)

	pp.Title("Habit Consistency")
	if len(summary.Habits) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Print(" no habits configured\n")
	}
	for _, h := range summary.Habits {
		fmt.Printf("%-16s %s %3d%%\n", h.Label, consistencyBar(h.Percent), round(h.Percent))
	}
	fmt.Println("")

	pp.Title("Distraction Impact")
	fmt.Printf("Total time lost: %s\n", color.New(color.FgRed, color.Bold).Sprint(timeutil.FormatMinutes(summary.TotalMinutesWasted)))
	if top, ok := stats.TopDistraction(entries); ok {
		fmt.Printf("Top offender:    %s (%dm)\n", top.Name, top.Minutes)
	} else {
		_, _ = color.New(color.FgGreen).Println("No distractions logged yet!")
	}
	fmt.Println("")

	pp.Title("Daily Performance")
	strip := entries
	if len(strip) > 7 {
		strip = strip[len(strip)-7:]
	}
	for _, e := range strip {
		score := stats.Score(e, labels)
		fmt.Printf("%s  %s %3d%%\n", shortDate(e.Date), scoreBar(score), round(score))
	}
	fmt.Println("")
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func checkbox(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.Faint).Sprint("✗")
}

func statusColor(s tracker.Status) *color.Color {
	switch s {
	case tracker.Completed:
		return color.New(color.FgGreen)
	case tracker.InProgress:
		return color.New(color.FgBlue)
	default:
		return color.New(color.Faint)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func round(pct float64) int {
	return int(math.Round(pct))
}

const barWidth = 20

func consistencyBar(pct float64) string {
	filled := int(math.Round(pct / 100 * barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	return color.New(color.FgBlue).Sprint(strings.Repeat("█", filled)) +
		color.New(color.Faint).Sprint(strings.Repeat("░", barWidth-filled))
}

func scoreBar(pct float64) string {
	c := color.New(color.FgRed)
	switch {
	case pct > 66:
		c = color.New(color.FgGreen)
	case pct > 33:
		c = color.New(color.FgYellow)
	}
	filled := int(math.Round(pct / 100 * barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	return c.Sprint(strings.Repeat("█", filled)) +
		color.New(color.Faint).Sprint(strings.Repeat("░", barWidth-filled))
}

// shortDate trims an ISO date to MM-DD the way the dashboard strip
// labels its bars.
func shortDate(date string) string {
	if len(date) >= 10 {
		return date[5:10]
	}
	return date
}
