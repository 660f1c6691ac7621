// Package day provides runners that add, update, and delete daily
// entries.
package day

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
)

// Add appends a fresh entry dated today and reprints the log.
type Add struct {
	Store *state.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add a day, no store")
	}

	e, err := n.Store.AddEntry()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Added %s", e.Date))
	pp.DailyLog(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}

// Delete removes an entry by id.
type Delete struct {
	ID    string
	Store *state.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete a day, no store")
	}

	removed, err := n.Store.DeleteEntry(n.ID)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("no entry with id %s\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Daily Log")
	pp.DailyLog(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}

// Set updates fields on one entry. Only the fields whose flags were
// provided are touched.
type Set struct {
	ID          string
	Date        *string
	Distraction *string
	Minutes     *int
	Notes       *string
	Store       *state.Store
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not update a day, no store")
	}

	touched := false
	apply := func(changed bool, err error) error {
		if err != nil {
			return err
		}
		touched = touched || changed
		return nil
	}

	if n.Date != nil {
		if err := apply(n.Store.SetEntryDate(n.ID, *n.Date)); err != nil {
			return err
		}
	}
	if n.Distraction != nil {
		if err := apply(n.Store.SetEntryDistraction(n.ID, *n.Distraction)); err != nil {
			return err
		}
	}
	if n.Minutes != nil {
		if err := apply(n.Store.SetEntryMinutes(n.ID, *n.Minutes)); err != nil {
			return err
		}
	}
	if n.Notes != nil {
		if err := apply(n.Store.SetEntryNotes(n.ID, *n.Notes)); err != nil {
			return err
		}
	}

	if !touched {
		fmt.Printf("nothing updated for id %s\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Daily Log")
	pp.DailyLog(n.Store.Entries(), n.Store.HabitLabels())
	return nil
}
