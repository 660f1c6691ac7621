package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/coach"
)

func addCoach(topLevel *cobra.Command) {
	co := &options.CoachOptions{}

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "get a weekly summary of your habits and distractions",
		Example: `
lifetrack coach
lifetrack coach --plain
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			n := coach.Coach{Plain: co.Plain, Service: svc}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCoachArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
