// Package export renders the daily log as the CSV table the original
// export produced: habit columns in the current configured order,
// TRUE/FALSE habit cells, and only the distraction and notes fields
// quoted. encoding/csv would quote on content instead, so the rows are
// assembled by hand to keep the file format stable.
package export

import (
	"fmt"
	"io"
	"strings"

	"tableflip.dev/lifetrack/pkg/tracker"
)

// DefaultFilename is where the CLI writes the export unless told
// otherwise.
const DefaultFilename = "life_tracker_data.csv"

// Write renders one header row plus one row per entry, in collection
// order, to w.
func Write(w io.Writer, entries []tracker.DailyEntry, labels []string) error {
	if _, err := io.WriteString(w, Header(labels)+"\n"); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := io.WriteString(w, Row(e, labels)); err != nil {
			return err
		}
		if i < len(entries)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Header returns the header row for the given habit columns.
func Header(labels []string) string {
	cols := make([]string, 0, len(labels)+6)
	cols = append(cols, "Date")
	cols = append(cols, labels...)
	cols = append(cols, "Tasks Completed", "Total Tasks", "Distraction", "Mins Wasted", "Notes")
	return strings.Join(cols, ",")
}

// Row renders one entry. Habit cells follow the current column order; a
// habit the entry never saw renders FALSE.
func Row(e tracker.DailyEntry, labels []string) string {
	cells := make([]string, 0, len(labels)+6)
	cells = append(cells, e.Date)
	for _, label := range labels {
		if e.Habits[label] {
			cells = append(cells, "TRUE")
		} else {
			cells = append(cells, "FALSE")
		}
	}
	cells = append(cells,
		fmt.Sprintf("%d", tracker.CountDone(e.Tasks)),
		fmt.Sprintf("%d", len(e.Tasks)),
		quote(e.Distraction),
		fmt.Sprintf("%d", e.MinsWasted),
		quote(e.Notes),
	)
	return strings.Join(cells, ",")
}

// quote wraps a field in double quotes without rewriting its content,
// matching the original export byte for byte.
func quote(s string) string {
	return `"` + s + `"`
}
