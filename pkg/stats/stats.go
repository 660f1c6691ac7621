// Package stats computes the dashboard numbers. Everything here is a
// pure function over collection snapshots; nothing is cached or stored.
package stats

import "tableflip.dev/lifetrack/pkg/tracker"

// Score is the percentage of the currently configured habit columns
// completed in one entry. An empty column list scores zero. Stale habit
// keys on the entry for removed columns are ignored because only the
// current labels are consulted.
func Score(e tracker.DailyEntry, labels []string) float64 {
	if len(labels) == 0 {
		return 0
	}
	done := 0
	for _, label := range labels {
		if e.Habits[label] {
			done++
		}
	}
	return float64(done) / float64(len(labels)) * 100
}

// Consistency is the percentage of logged entries in which the habit was
// completed. An empty collection yields zero rather than dividing by it.
func Consistency(entries []tracker.DailyEntry, label string) float64 {
	if len(entries) == 0 {
		return 0
	}
	done := 0
	for _, e := range entries {
		if e.Habits[label] {
			done++
		}
	}
	return float64(done) / float64(len(entries)) * 100
}

// HabitStat is one row of the consistency table.
type HabitStat struct {
	Label   string
	Percent float64
}

// HabitStats returns a consistency row per configured column, in column
// order.
func HabitStats(entries []tracker.DailyEntry, labels []string) []HabitStat {
	out := make([]HabitStat, 0, len(labels))
	for _, label := range labels {
		out = append(out, HabitStat{Label: label, Percent: Consistency(entries, label)})
	}
	return out
}

// TotalMinutesWasted sums MinsWasted across the collection.
func TotalMinutesWasted(entries []tracker.DailyEntry) int {
	total := 0
	for _, e := range entries {
		total += e.MinsWasted
	}
	return total
}

// Distraction is the top-offender result: a distraction label and the
// minutes attributed to it.
type Distraction struct {
	Name    string
	Minutes int
}

// TopDistraction returns the non-empty distraction with the largest
// summed minutes. Ties keep whichever distraction appeared first in the
// collection, so the result is deterministic for a given snapshot.
// ok is false when no entry has a distraction logged.
func TopDistraction(entries []tracker.DailyEntry) (Distraction, bool) {
	totals := make(map[string]int)
	var order []string
	for _, e := range entries {
		if e.Distraction == "" {
			continue
		}
		if _, seen := totals[e.Distraction]; !seen {
			order = append(order, e.Distraction)
		}
		totals[e.Distraction] += e.MinsWasted
	}
	if len(order) == 0 {
		return Distraction{}, false
	}
	top := Distraction{Name: order[0], Minutes: totals[order[0]]}
	for _, name := range order[1:] {
		if totals[name] > top.Minutes {
			top = Distraction{Name: name, Minutes: totals[name]}
		}
	}
	return top, true
}

// TaskCompletionRate is the mean per-entry completion ratio as a
// percentage. An entry with no tasks counts as a total of one so a bare
// day does not divide by zero. An empty collection rates zero.
func TaskCompletionRate(entries []tracker.DailyEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		total := len(e.Tasks)
		if total == 0 {
			total = 1
		}
		sum += float64(tracker.CountDone(e.Tasks)) / float64(total)
	}
	return sum / float64(len(entries)) * 100
}

// Summary aggregates the numbers the dashboard shows and the coaching
// prompt consumes.
type Summary struct {
	DaysLogged         int
	Habits             []HabitStat
	TotalMinutesWasted int
	TopDistraction     string
	TaskCompletionRate float64
}

// Summarize computes the full aggregate over one snapshot.
func Summarize(entries []tracker.DailyEntry, labels []string) Summary {
	s := Summary{
		DaysLogged:         len(entries),
		Habits:             HabitStats(entries, labels),
		TotalMinutesWasted: TotalMinutesWasted(entries),
		TopDistraction:     "None",
		TaskCompletionRate: TaskCompletionRate(entries),
	}
	if top, ok := TopDistraction(entries); ok {
		s.TopDistraction = top.Name
	}
	return s
}
