package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/lifetrack/pkg/app"
	"tableflip.dev/lifetrack/pkg/state"
	"tableflip.dev/lifetrack/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lifetrack",
		Short: base.Wrap80("Habit, task, and goal tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLog(topLevel)
	addDay(topLevel)
	addHabit(topLevel)
	addTask(topLevel)
	addGoal(topLevel)
	addDashboard(topLevel)
	addExport(topLevel)
	addPlan(topLevel)
	addCoach(topLevel)
	addVersion(topLevel)
}

// loadStore opens persistence under the configured base path and
// hydrates tracked state from it.
func loadStore() (*state.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return state.New(p), nil
}

// loadService wraps the store with the insight client for commands
// that talk to the generation API.
func loadService() (*app.Service, error) {
	s, err := loadStore()
	if err != nil {
		return nil, err
	}
	return app.New(s, nil), nil
}
