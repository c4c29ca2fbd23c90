package store

import (
	"context"
	"fmt"

	"espoir/internal/models"
	"espoir/internal/shared"
)

// Session operations. Login, register, load, and logout all settle into the
// same session field, so they share one generation counter: issuing any of
// them supersedes whichever session operation was previously in flight.

func (c *Container) login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", shared.ErrInvalidInput)
	}

	gen := c.beginSessionOp()

	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.failSessionOp(gen, err)
		return err
	}

	return c.completeSignIn(ctx, gen, user)
}

func (c *Container) register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are required", shared.ErrInvalidInput)
	}

	gen := c.beginSessionOp()

	user, err := c.auth.Register(ctx, username, email, password)
	if err != nil {
		c.failSessionOp(gen, err)
		return err
	}

	return c.completeSignIn(ctx, gen, user)
}

func (c *Container) loadSession(ctx context.Context) error {
	gen := c.beginSessionOp()

	user, err := c.gateway.LoadUser(ctx)
	if err != nil {
		// A broken read degrades to a signed-out start, it does not block startup.
		c.logger.Warn("failed to restore persisted session", "err", err)
		user = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		return nil
	}

	c.state.Session.Loading = false
	if user != nil {
		c.state.Session.User = user
		c.state.Session.Authenticated = true
	} else {
		c.state.Session.User = nil
		c.state.Session.Authenticated = false
	}
	c.publishLocked()
	return nil
}

func (c *Container) logout(ctx context.Context) error {
	gen := c.beginSessionOp()

	// Logout always succeeds locally; a failed delete leaves a stale record
	// on disk that the next sign-in overwrites.
	c.sessMu.Lock()
	err := c.gateway.RemoveUser(ctx)
	c.sessMu.Unlock()
	if err != nil {
		c.logger.Warn("failed to remove persisted session", "err", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		return nil
	}

	c.state.Session = SessionState{}
	c.publishLocked()
	return nil
}

func (c *Container) clearError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Session.Err = ""
	c.publishLocked()
	return nil
}

// beginSessionOp claims a new session generation and publishes the loading
// transition.
func (c *Container) beginSessionOp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionGen++
	c.state.Session.Loading = true
	c.state.Session.Err = ""
	c.publishLocked()
	return c.sessionGen
}

// failSessionOp records the failure without touching an existing session.
// Stale failures are dropped.
func (c *Container) failSessionOp(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		return
	}
	c.state.Session.Loading = false
	c.state.Session.Err = err.Error()
	c.publishLocked()
}

// completeSignIn persists the user, then publishes the authenticated state.
// The write comes first so a published authenticated snapshot always has a
// durable counterpart. sessMu orders the write against competing session
// writes, and a superseded sign-in skips its write entirely.
func (c *Container) completeSignIn(ctx context.Context, gen uint64, user *models.User) error {
	c.sessMu.Lock()
	c.mu.Lock()
	stale := gen != c.sessionGen
	c.mu.Unlock()
	if stale {
		c.sessMu.Unlock()
		return nil
	}
	err := c.gateway.SaveUser(ctx, user)
	c.sessMu.Unlock()
	if err != nil {
		c.failSessionOp(gen, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.sessionGen {
		return nil
	}

	c.state.Session = SessionState{User: user, Authenticated: true}
	c.publishLocked()
	return nil
}
