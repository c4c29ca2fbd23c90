package store

import (
	"context"

	"espoir/internal/models"
)

// Favorites operations. The in-memory set is mutated first and persisted
// second; a failed write rolls the memory change back so the stored set and
// the published set never diverge.

func (c *Container) loadFavorites(ctx context.Context) error {
	c.mu.Lock()
	c.state.Favorites.Loading = true
	c.publishLocked()
	c.mu.Unlock()

	items, err := c.gateway.LoadFavorites(ctx)
	if err != nil {
		// Degrade to an empty set; favorites reappear once storage recovers.
		c.logger.Warn("failed to load persisted favorites", "err", err)
		items = []models.Movie{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Favorites.Loading = false
	c.state.Favorites.Items = items
	c.publishLocked()
	return nil
}

func (c *Container) addFavorite(ctx context.Context, movie models.Movie) error {
	c.mu.Lock()
	if c.state.Favorites.Contains(movie.ID) {
		// Dedup invariant: a second add of the same ID changes nothing and
		// issues no write.
		c.mu.Unlock()
		return nil
	}
	c.state.Favorites.Items = append(cloneMovies(c.state.Favorites.Items), movie)
	c.publishLocked()
	c.mu.Unlock()

	if err := c.persistFavorites(ctx); err != nil {
		c.mu.Lock()
		c.state.Favorites.Items = removeMovie(c.state.Favorites.Items, movie.ID)
		c.publishLocked()
		c.mu.Unlock()
		return err
	}
	return nil
}

func (c *Container) removeFavorite(ctx context.Context, movieID int) error {
	c.mu.Lock()
	idx := -1
	for i, m := range c.state.Favorites.Items {
		if m.ID == movieID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return nil
	}
	removed := c.state.Favorites.Items[idx]
	c.state.Favorites.Items = removeMovie(c.state.Favorites.Items, movieID)
	c.publishLocked()
	c.mu.Unlock()

	if err := c.persistFavorites(ctx); err != nil {
		c.mu.Lock()
		c.state.Favorites.Items = insertMovie(c.state.Favorites.Items, removed, idx)
		c.publishLocked()
		c.mu.Unlock()
		return err
	}
	return nil
}

// persistFavorites writes the latest in-memory set. favMu keeps concurrent
// writes from landing out of order, so the stored set converges to the most
// recent mutation even when two toggles overlap.
func (c *Container) persistFavorites(ctx context.Context) error {
	c.favMu.Lock()
	defer c.favMu.Unlock()

	c.mu.Lock()
	items := cloneMovies(c.state.Favorites.Items)
	c.mu.Unlock()

	return c.gateway.SaveFavorites(ctx, items)
}

func removeMovie(items []models.Movie, movieID int) []models.Movie {
	out := make([]models.Movie, 0, len(items))
	for _, m := range items {
		if m.ID != movieID {
			out = append(out, m)
		}
	}
	return out
}

func insertMovie(items []models.Movie, movie models.Movie, idx int) []models.Movie {
	if idx < 0 || idx > len(items) {
		idx = len(items)
	}
	out := make([]models.Movie, 0, len(items)+1)
	out = append(out, items[:idx]...)
	out = append(out, movie)
	out = append(out, items[idx:]...)
	return out
}
