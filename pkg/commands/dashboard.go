package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "show habit consistency, scores, and distraction impact",
		Example: `
lifetrack dashboard
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := dashboard.Dashboard{Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
