// Package ui provides the runner that opens the full-screen interface.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/lifetrack/pkg/app"
	tui "tableflip.dev/lifetrack/pkg/tui/app"
)

// UI opens the text-based user interface.
type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open ui, no service")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}
	return tui.Run(n.Service)
}
