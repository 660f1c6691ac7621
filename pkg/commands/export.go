package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lifetrack/pkg/commands/options"
	"tableflip.dev/lifetrack/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the daily log as CSV",
		Example: `
lifetrack export
lifetrack export -o journal.csv
lifetrack export -o -
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			n := export.Export{Path: eo.Path, Store: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
