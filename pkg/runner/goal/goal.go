// Package goal provides runners for goal management.
package goal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
	"tableflip.dev/lifetrack/pkg/tracker"
)

// List prints every goal with its milestones.
type List struct {
	ShowID bool
	Store  *state.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list goals, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Active Goals")
	pp.Goals(n.Store.Goals())
	return nil
}

// Add appends a new goal with defaults.
type Add struct {
	Store *state.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add a goal, no store")
	}

	if _, err := n.Store.AddGoal(); err != nil {
		return err
	}
	return (&List{ShowID: true, Store: n.Store}).Do(ctx)
}

// Delete removes a goal by id.
type Delete struct {
	ID    string
	Store *state.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete a goal, no store")
	}

	removed, err := n.Store.DeleteGoal(n.ID)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("no goal with id %s\n", n.ID)
		return nil
	}
	return (&List{ShowID: true, Store: n.Store}).Do(ctx)
}

// Set updates fields on one goal. Only the fields whose flags were
// provided are touched.
type Set struct {
	ID       string
	Title    *string
	Category *string
	Deadline *string
	Status   *string
	Store    *state.Store
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not update a goal, no store")
	}

	touched := false
	apply := func(changed bool, err error) error {
		if err != nil {
			return err
		}
		touched = touched || changed
		return nil
	}

	if n.Title != nil {
		if err := apply(n.Store.SetGoalTitle(n.ID, *n.Title)); err != nil {
			return err
		}
	}
	if n.Category != nil {
		if err := apply(n.Store.SetGoalCategory(n.ID, *n.Category)); err != nil {
			return err
		}
	}
	if n.Deadline != nil {
		if err := apply(n.Store.SetGoalDeadline(n.ID, *n.Deadline)); err != nil {
			return err
		}
	}
	if n.Status != nil {
		status, err := tracker.ParseStatus(*n.Status)
		if err != nil {
			return err
		}
		if err := apply(n.Store.SetGoalStatus(n.ID, status)); err != nil {
			return err
		}
	}

	if !touched {
		fmt.Printf("nothing updated for id %s\n", n.ID)
		return nil
	}
	return (&List{ShowID: true, Store: n.Store}).Do(ctx)
}
