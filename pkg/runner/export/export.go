// Package export provides the runner that writes the CSV export.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/lifetrack/pkg/export"
	"tableflip.dev/lifetrack/pkg/state"
)

// Export writes the daily log as CSV. An empty Path writes
// life_tracker_data.csv in the working directory; "-" writes to stdout.
type Export struct {
	Path  string
	Store *state.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	entries := n.Store.Entries()
	labels := n.Store.HabitLabels()

	if n.Path == "-" {
		return export.Write(os.Stdout, entries, labels)
	}

	path := n.Path
	if path == "" {
		path = export.DefaultFilename
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, entries, labels); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("wrote %d entries to %s\n", len(entries), path)
	return nil
}
