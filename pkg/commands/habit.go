package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/habit"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "manage tracked habit columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addHabitAdd(cmd)
	addHabitRemove(cmd)
	addHabitSet(cmd)

	topLevel.AddCommand(cmd)
}

func addHabitAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [label]",
		Short: "track a new habit",
		Example: `
lifetrack habit add Meditate
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit label")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := habit.Add{Label: strings.Join(args, " "), Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addHabitRemove(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:   "remove [label]",
		Short: "stop tracking a habit",
		Long: "Stop tracking a habit. Removal is destructive, so running the\n" +
			"command once marks the habit and a second run within a few seconds\n" +
			"removes it. Pass --yes to confirm in one go.",
		Example: `
lifetrack habit remove Meditate
lifetrack habit remove Meditate --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit label")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := habit.Remove{Label: strings.Join(args, " "), Confirm: ho.Confirm, Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitSet(topLevel *cobra.Command) {
	done := true

	cmd := &cobra.Command{
		Use:   "set [entry-id] [label]",
		Short: "mark a habit done or not done on an entry",
		Example: `
lifetrack habit set 1741600000000123 Read
lifetrack habit set 1741600000000123 Read --done=false
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an entry id and a habit label")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := habit.Set{
				EntryID: args[0],
				Label:   strings.Join(args[1:], " "),
				Done:    done,
				Store:   s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&done, "done", true, "The completion value to record.")

	topLevel.AddCommand(cmd)
}
