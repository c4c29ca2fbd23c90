package main

import (
	"context"
	"fmt"

	"espoir/internal/shared"
	"espoir/internal/store"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return fmt.Errorf("%w: --email and --password are required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.Login{Email: email, Password: password}); err != nil {
		return err
	}

	state := r.container.State()
	r.logger.Info("signed in", "username", state.Session.User.Username)
	return r.writePlain("✓ Signed in as %s\n", state.Session.User.Username)
}

// AuthRegister creates an account and persists the session.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: --username, --email and --password are required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.Register{Username: username, Email: email, Password: password}); err != nil {
		return err
	}

	return r.writePlain("✓ Account created, signed in as %s\n", username)
}

// AuthLogout clears the session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.container.Dispatch(ctx, store.Logout{}); err != nil {
		return err
	}
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus restores the persisted session and reports it.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if err := r.container.Dispatch(ctx, store.LoadSession{}); err != nil {
		return err
	}

	state := r.container.State()
	if !state.Session.Authenticated {
		return r.writePlain("✗ Not signed in\n")
	}

	user := state.Session.User
	r.writePlain("✓ Signed in\n")
	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Email: %s\n", user.Email)
	return nil
}
