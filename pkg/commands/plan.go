package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/runner/plan"
)

func addPlan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "plan [goal-id]",
		Short: "generate milestone suggestions for a goal",
		Long: "Generate three milestone suggestions for a goal and append them\n" +
			"to its checklist. Requires LIFETRACK_GEMINI_API_KEY to be set.",
		Example: `
lifetrack plan 1741600000000456
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			n := plan.Plan{GoalID: args[0], Service: svc}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
