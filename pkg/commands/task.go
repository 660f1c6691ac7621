package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "manage entry tasks and goal milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskToggle(cmd)
	addTaskDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "add [parent-id] [text]",
		Short: "add a task to an entry, or a milestone with --goal",
		Example: `
lifetrack task add 1741600000000123 water the plants
lifetrack task add 1741600000000456 draft the outline --goal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a parent id and the task text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := task.Add{
				ParentID: args[0],
				Text:     strings.Join(args[1:], " "),
				Goal:     to.Goal,
				Store:    s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}

func addTaskToggle(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "toggle [parent-id] [task-id]",
		Short: "flip a task between done and not done",
		Example: `
lifetrack task toggle 1741600000000123 1741600001000042
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a parent id and a task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := task.Toggle{
				ParentID: args[0],
				TaskID:   args[1],
				Goal:     to.Goal,
				Store:    s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}

func addTaskDelete(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "delete [parent-id] [task-id]",
		Short: "delete a task",
		Example: `
lifetrack task delete 1741600000000123 1741600001000042
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a parent id and a task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := task.Delete{
				ParentID: args[0],
				TaskID:   args[1],
				Goal:     to.Goal,
				Store:    s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
