package main

import (
	"context"
	"fmt"
	"os"

	"espoir/internal/formatter"
	"espoir/internal/shared"
	"espoir/internal/store"
	"espoir/internal/tasks"
	"github.com/urfave/cli/v3"
)

// FavoritesList restores and prints the favorite set in display order.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	if err := r.container.Dispatch(ctx, store.LoadFavorites{}); err != nil {
		return err
	}
	return r.writeMovies("Favorites", cmd.String("format"), r.container.State().Favorites.Items)
}

// FavoritesAdd fetches the movie's record and favorites it. Favoriting an
// already-favorited id is a no-op.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: a positive movie id is required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.LoadFavorites{}); err != nil {
		return err
	}
	if err := r.container.Dispatch(ctx, store.FetchDetails{MovieID: id}); err != nil {
		return err
	}

	movie := r.container.State().Catalog.Selected
	if movie == nil || movie.ID != id {
		return fmt.Errorf("%w: id %d", shared.ErrMovieNotFound, id)
	}

	if err := r.container.Dispatch(ctx, store.AddFavorite{Movie: *movie}); err != nil {
		return err
	}
	return r.writePlain("✓ Favorited %s\n", movie.Title)
}

// FavoritesRemove unfavorites a movie. Removing a missing id is a no-op.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: a positive movie id is required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.LoadFavorites{}); err != nil {
		return err
	}
	if err := r.container.Dispatch(ctx, store.RemoveFavorite{MovieID: id}); err != nil {
		return err
	}
	return r.writePlain("✓ Removed %d from favorites\n", id)
}

// FavoritesExport hydrates the favorite set with full detail records and
// writes it in the requested format.
func (r *Runner) FavoritesExport(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not configured, run setup first", shared.ErrServiceUnavailable)
	}

	if err := r.container.Dispatch(ctx, store.LoadFavorites{}); err != nil {
		return err
	}

	result, err := tasks.FetchFavoriteDetails(ctx, r.container, r.catalog, nil, tasks.DetailFetchOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  r.config.API.RateLimit,
	})
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		r.logger.Warn("failed to hydrate favorite", "movie", failure.Movie.Title, "err", failure.Err)
	}

	data, err := formatter.Export(cmd.String("format"), "Favorites", result.Movies)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return r.writePlain("✓ Exported %d favorites to %s\n", len(result.Movies), path)
	}

	return r.writePlain("%s", string(data))
}
