package store

import (
	"context"

	"espoir/internal/models"
)

// Theme operations. The preference is low stakes: the in-memory flip always
// wins and the persistence write is best-effort.

func (c *Container) toggleTheme(ctx context.Context) error {
	c.mu.Lock()
	c.state.Theme = c.state.Theme.Toggled()
	mode := c.state.Theme
	c.publishLocked()
	c.mu.Unlock()

	if err := c.gateway.SaveTheme(ctx, mode); err != nil {
		c.logger.Warn("failed to persist theme preference", "mode", mode, "err", err)
	}
	return nil
}

func (c *Container) setTheme(mode models.ThemeMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Theme = mode
	c.publishLocked()
	return nil
}
