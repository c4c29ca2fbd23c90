package store

import (
	"context"
	"fmt"

	"espoir/internal/shared"
)

// Catalog operations. Each category has its own generation counter: a new
// fetch supersedes the previous one for result-application purposes, though
// the superseded network call itself is left to finish and be ignored.

// requireCatalog rejects catalog intents when no catalog client was
// configured, such as a fresh install without a TMDB API key.
func (c *Container) requireCatalog() error {
	if c.catalog == nil {
		return fmt.Errorf("%w: catalog not configured", shared.ErrServiceUnavailable)
	}
	return nil
}

func (c *Container) fetchTrending(ctx context.Context) error {
	if err := c.requireCatalog(); err != nil {
		return err
	}

	c.mu.Lock()
	c.trendingGen++
	gen := c.trendingGen
	c.state.Catalog.Loading = true
	c.publishLocked()
	c.mu.Unlock()

	movies, err := c.catalog.Trending(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.trendingGen {
		return err
	}
	c.state.Catalog.Loading = false
	if err != nil {
		// Keep the previous list; the UI shows stale data plus a banner.
		c.state.Catalog.Err = err.Error()
	} else {
		c.state.Catalog.Trending = movies
		c.state.Catalog.Err = ""
	}
	c.publishLocked()
	return err
}

func (c *Container) fetchPopular(ctx context.Context) error {
	if err := c.requireCatalog(); err != nil {
		return err
	}

	c.mu.Lock()
	c.popularGen++
	gen := c.popularGen
	c.state.Catalog.PopularLoading = true
	c.publishLocked()
	c.mu.Unlock()

	movies, err := c.catalog.Popular(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.popularGen {
		return err
	}
	c.state.Catalog.PopularLoading = false
	if err != nil {
		c.state.Catalog.Err = err.Error()
	} else {
		c.state.Catalog.Popular = movies
		c.state.Catalog.Err = ""
	}
	c.publishLocked()
	return err
}

func (c *Container) fetchDetails(ctx context.Context, movieID int) error {
	if err := c.requireCatalog(); err != nil {
		return err
	}

	c.mu.Lock()
	c.detailsGen++
	gen := c.detailsGen
	// Selected is intentionally left in place while the fetch is in flight
	// so the detail view never flickers through an absent state.
	c.mu.Unlock()

	movie, err := c.catalog.Details(ctx, movieID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.detailsGen {
		return err
	}
	if err != nil {
		c.state.Catalog.Err = err.Error()
	} else {
		c.state.Catalog.Selected = movie
		c.state.Catalog.Err = ""
	}
	c.publishLocked()
	return err
}

func (c *Container) search(ctx context.Context, query string) error {
	if err := c.requireCatalog(); err != nil {
		return err
	}
	if query == "" {
		return fmt.Errorf("%w: empty search query", shared.ErrInvalidInput)
	}

	c.mu.Lock()
	c.searchGen++
	gen := c.searchGen
	c.state.Catalog.SearchLoading = true
	c.publishLocked()
	c.mu.Unlock()

	movies, err := c.catalog.Search(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.searchGen {
		// A newer search was issued while this one was in flight; its result
		// wins regardless of arrival order.
		return err
	}
	c.state.Catalog.SearchLoading = false
	if err != nil {
		c.state.Catalog.Err = err.Error()
	} else {
		c.state.Catalog.SearchResults = movies
		c.state.Catalog.Err = ""
	}
	c.publishLocked()
	return err
}

func (c *Container) clearSearch() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Catalog.SearchResults = nil
	c.publishLocked()
	return nil
}
