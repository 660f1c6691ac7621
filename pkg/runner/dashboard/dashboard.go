// Package dashboard provides the runner that prints the aggregate
// statistics view.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
)

// Dashboard prints habit consistency, distraction impact, and the daily
// performance strip.
type Dashboard struct {
	Store *state.Store
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show the dashboard, no store")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Dashboard(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}
