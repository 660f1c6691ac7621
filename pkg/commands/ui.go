package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
lifetrack ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			n := ui.UI{Service: svc}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
