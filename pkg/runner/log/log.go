// Package log provides the runner that prints the daily log.
package log

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
)

// Log prints the daily log table, newest day first.
type Log struct {
	ShowID bool
	Store  *state.Store
}

func (n *Log) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show log, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Daily Log")
	pp.DailyLog(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}
