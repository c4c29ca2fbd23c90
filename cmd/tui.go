package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"espoir/internal/shared"
	"espoir/internal/tasks"
	"espoir/internal/ui"
)

// TUI bootstraps persisted state, warms the catalog, and opens the browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not configured, run setup first", shared.ErrServiceUnavailable)
	}

	result := tasks.Bootstrap(ctx, r.container, r.gateway, nil)
	for phase, err := range result.Errors {
		r.logger.Warn("startup phase failed", "phase", phase, "err", err)
	}

	model := ui.NewModel(ctx, r.container)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui crashed: %w", err)
	}
	return nil
}
