// Package task provides runners for the checklists nested inside
// entries (tasks) and goals (milestones).
package task

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/lifetrack/pkg/printers"
	"tableflip.dev/lifetrack/pkg/state"
)

// Add appends a task to an entry, or a milestone to a goal when Goal is
// set.
type Add struct {
	ParentID string
	Text     string
	Goal     bool
	Store    *state.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add a task, no store")
	}

	var changed bool
	var err error
	if n.Goal {
		_, changed, err = n.Store.AddMilestone(n.ParentID, n.Text)
	} else {
		_, changed, err = n.Store.AddEntryTask(n.ParentID, n.Text)
	}
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("nothing added for id %s\n", n.ParentID)
		return nil
	}
	return n.print()
}

// Toggle flips one task's done flag.
type Toggle struct {
	ParentID string
	TaskID   string
	Goal     bool
	Store    *state.Store
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not toggle a task, no store")
	}

	var changed bool
	var err error
	if n.Goal {
		changed, err = n.Store.ToggleMilestone(n.ParentID, n.TaskID)
	} else {
		changed, err = n.Store.ToggleEntryTask(n.ParentID, n.TaskID)
	}
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("no task %s under id %s\n", n.TaskID, n.ParentID)
		return nil
	}
	return (&Add{ParentID: n.ParentID, Goal: n.Goal, Store: n.Store}).print()
}

// Delete removes one task by id.
type Delete struct {
	ParentID string
	TaskID   string
	Goal     bool
	Store    *state.Store
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete a task, no store")
	}

	var changed bool
	var err error
	if n.Goal {
		changed, err = n.Store.DeleteMilestone(n.ParentID, n.TaskID)
	} else {
		changed, err = n.Store.DeleteEntryTask(n.ParentID, n.TaskID)
	}
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("no task %s under id %s\n", n.TaskID, n.ParentID)
		return nil
	}
	return (&Add{ParentID: n.ParentID, Goal: n.Goal, Store: n.Store}).print()
}

func (n *Add) print() error {
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	if n.Goal {
		if g, ok := n.Store.Goal(n.ParentID); ok {
			pp.Title(g.Title)
			pp.Tasks(g.Milestones)
		}
		return nil
	}
	if e, ok := n.Store.Entry(n.ParentID); ok {
		pp.Title(e.Date)
		pp.Tasks(e.Tasks)
	}
	return nil
}
