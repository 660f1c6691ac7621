// Package habit provides runners for habit column management and
// per-day habit status.
package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
)

// Add appends a new habit column.
type Add struct {
	Label string
	Store *state.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add a habit, no store")
	}

	added, err := n.Store.AddHabitColumn(n.Label)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("habit %q already tracked (or blank), nothing added\n", strings.TrimSpace(n.Label))
		return nil
	}
	fmt.Printf("tracking habits: %s\n", strings.Join(n.Store.HabitLabels(), ", "))
	return nil
}

// Remove deletes a habit column. Destructive, so the store wants the
// request twice inside its confirmation window; Confirm issues the
// second call immediately.
type Remove struct {
	Label   string
	Confirm bool
	Store   *state.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove a habit, no store")
	}

	removed, err := n.Store.RemoveHabitColumn(n.Label)
	if err != nil {
		return err
	}
	if !removed && n.Confirm {
		removed, err = n.Store.RemoveHabitColumn(n.Label)
		if err != nil {
			return err
		}
	}
	if !removed {
		warn := color.New(color.FgYellow)
		_, _ = warn.Printf("%q is marked for deletion; run again with --yes to confirm\n", n.Label)
		return nil
	}

	fmt.Printf("tracking habits: %s\n", strings.Join(n.Store.HabitLabels(), ", "))
	return nil
}

// Set records habit completion on one entry.
type Set struct {
	EntryID string
	Label   string
	Done    bool
	Store   *state.Store
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not set a habit, no store")
	}

	changed, err := n.Store.SetHabit(n.EntryID, n.Label, n.Done)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("no entry with id %s\n", n.EntryID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Daily Log")
	pp.DailyLog(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}
