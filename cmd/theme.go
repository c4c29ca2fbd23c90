package main

import (
	"context"

	"espoir/internal/store"
	"github.com/urfave/cli/v3"
)

// ThemeShow prints the persisted theme preference.
func (r *Runner) ThemeShow(ctx context.Context, cmd *cli.Command) error {
	mode, err := r.gateway.LoadTheme(ctx)
	if err != nil {
		r.logger.Warn("failed to read theme preference", "err", err)
	}
	if dispatchErr := r.container.Dispatch(ctx, store.SetTheme{Mode: mode}); dispatchErr != nil {
		return dispatchErr
	}
	return r.writePlain("Theme: %s\n", mode)
}

// ThemeToggle flips the preference and persists it.
func (r *Runner) ThemeToggle(ctx context.Context, cmd *cli.Command) error {
	mode, err := r.gateway.LoadTheme(ctx)
	if err != nil {
		r.logger.Warn("failed to read theme preference", "err", err)
	}
	if dispatchErr := r.container.Dispatch(ctx, store.SetTheme{Mode: mode}); dispatchErr != nil {
		return dispatchErr
	}
	if dispatchErr := r.container.Dispatch(ctx, store.ToggleTheme{}); dispatchErr != nil {
		return dispatchErr
	}
	return r.writePlain("Theme: %s\n", r.container.State().Theme)
}
