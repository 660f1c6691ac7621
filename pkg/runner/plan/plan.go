// Package plan provides the runner that generates milestones for a
// goal through the insight collaborator.
package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/lifetrack/pkg/app"
	"tableflip.dev/lifetrack/pkg/printers"
)

// Plan asks for a generated milestone plan and appends it to the goal.
type Plan struct {
	GoalID  string
	Service *app.Service
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not generate a plan, no service")
	}

	res, err := n.Service.GeneratePlan(ctx, n.GoalID)
	if err != nil {
		return err
	}
	if res.Failed {
		_, _ = color.New(color.FgYellow).Println(res.Message)
		return nil
	}

	g, ok := n.Service.Store.Goal(n.GoalID)
	if !ok {
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(g.Title)
	pp.Tasks(g.Milestones)
	fmt.Printf("%s (%d new milestones)\n", res.Message, len(res.Added))
	return nil
}
