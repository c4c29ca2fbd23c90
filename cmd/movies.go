package main

import (
	"context"
	"fmt"

	"espoir/internal/formatter"
	"espoir/internal/models"
	"espoir/internal/shared"
	"espoir/internal/store"
	"github.com/urfave/cli/v3"
)

// writeMovies renders a movie list in the requested format.
func (r *Runner) writeMovies(title, format string, movies []models.Movie) error {
	data, err := formatter.Export(format, title, movies)
	if err != nil {
		return err
	}
	return r.writePlain("%s", string(data))
}

// MoviesTrending fetches and prints this week's trending movies.
func (r *Runner) MoviesTrending(ctx context.Context, cmd *cli.Command) error {
	if err := r.container.Dispatch(ctx, store.FetchTrending{}); err != nil {
		return err
	}
	return r.writeMovies("Trending This Week", cmd.String("format"), r.container.State().Catalog.Trending)
}

// MoviesPopular fetches and prints the current popular movies.
func (r *Runner) MoviesPopular(ctx context.Context, cmd *cli.Command) error {
	if err := r.container.Dispatch(ctx, store.FetchPopular{}); err != nil {
		return err
	}
	return r.writeMovies("Popular Now", cmd.String("format"), r.container.State().Catalog.Popular)
}

// MoviesDetails fetches and prints one movie's full record.
func (r *Runner) MoviesDetails(ctx context.Context, cmd *cli.Command) error {
	id := cmd.IntArg("id")
	if id <= 0 {
		return fmt.Errorf("%w: a positive movie id is required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.FetchDetails{MovieID: id}); err != nil {
		return err
	}

	return r.writeJSON(r.container.State().Catalog.Selected, true)
}

// MoviesSearch searches the catalog and prints the results.
func (r *Runner) MoviesSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	if err := r.container.Dispatch(ctx, store.Search{Query: query}); err != nil {
		return err
	}

	state := r.container.State()
	title := fmt.Sprintf("Results for %q", query)
	return r.writeMovies(title, cmd.String("format"), state.Catalog.SearchResults)
}
