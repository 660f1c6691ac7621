package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "manage daily entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDayAdd(cmd)
	addDayDelete(cmd)
	addDaySet(cmd)

	topLevel.AddCommand(cmd)
}

func addDayAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a new entry dated today",
		Example: `
lifetrack day add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := day.Add{Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDayDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "delete an entry by id",
		Example: `
lifetrack day delete 1741600000000123
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := day.Delete{ID: args[0], Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDaySet(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "set [id]",
		Short: "update fields on an entry",
		Example: `
lifetrack day set 1741600000000123 --distraction="Social Media" --minutes=30
lifetrack day set 1741600000000123 --notes="slow morning"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := day.Set{ID: args[0], Store: s}
			if cmd.Flags().Changed("date") {
				n.Date = &do.Date
			}
			if cmd.Flags().Changed("distraction") {
				n.Distraction = &do.Distraction
			}
			if cmd.Flags().Changed("minutes") {
				n.Minutes = &do.Minutes
			}
			if cmd.Flags().Changed("notes") {
				n.Notes = &do.Notes
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
