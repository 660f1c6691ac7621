// Package coach provides the runner that fetches and renders the weekly
// coaching summary.
package coach

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/lifetrack/pkg/app"
	"tableflip.dev/lifetrack/pkg/printers"
)

// Coach prints the generated weekly summary. Plain skips markdown
// rendering.
type Coach struct {
	Plain   bool
	Service *app.Service
}

func (n *Coach) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not coach, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Weekly Coach")

	text := n.Service.WeeklyInsight(ctx)
	if n.Plain {
		fmt.Println(text)
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Println(text)
		return nil
	}
	rendered, err := r.Render(text)
	if err != nil {
		fmt.Println(text)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
