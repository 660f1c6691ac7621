package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "view and manage goals",
		Example: `
lifetrack goal
lifetrack goal --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := goal.List{ShowID: io.ShowID, Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	addGoalAdd(cmd)
	addGoalDelete(cmd)
	addGoalSet(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a new goal with defaults",
		Example: `
lifetrack goal add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := goal.Add{Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addGoalDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete a goal by id",
		Example: `
lifetrack goal delete 1741600000000456
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := goal.Delete{ID: args[0], Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addGoalSet(topLevel *cobra.Command) {
	do := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "set [id]",
		Short: "update fields on a goal",
		Example: `
lifetrack goal set 1741600000000456 --title="Run a marathon" --status=in-progress
lifetrack goal set 1741600000000456 --deadline="2025-12-31"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := goal.Set{ID: args[0], Store: s}
			if cmd.Flags().Changed("title") {
				n.Title = &do.Title
			}
			if cmd.Flags().Changed("category") {
				n.Category = &do.Category
			}
			if cmd.Flags().Changed("deadline") {
				n.Deadline = &do.Deadline
			}
			if cmd.Flags().Changed("status") {
				n.Status = &do.Status
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGoalArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
