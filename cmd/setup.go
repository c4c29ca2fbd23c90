package main

import (
	"context"

	"espoir/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes the embedded example config for the user to fill in.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("wrote example config", "path", path)
	return r.writePlain("✓ Config written to %s, add your TMDB API key\n", path)
}
