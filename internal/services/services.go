// package services defines the remote catalog and auth boundaries
package services

import (
	"context"

	"espoir/internal/models"
)

// Catalog defines the read-only movie catalog the client browses.
type Catalog interface {
	// Trending retrieves this week's trending movies in ranked order.
	Trending(ctx context.Context) ([]models.Movie, error)

	// Popular retrieves the current popular movies in ranked order.
	Popular(ctx context.Context) ([]models.Movie, error)

	// Details retrieves the full record for a single movie, including
	// runtime, tagline and genres.
	Details(ctx context.Context, movieID int) (*models.Movie, error)

	// Search retrieves movies matching a non-empty query, in relevance order.
	Search(ctx context.Context, query string) ([]models.Movie, error)
}

// Authenticator defines the account boundary.
type Authenticator interface {
	// Login exchanges credentials for an authenticated user with a session token.
	Login(ctx context.Context, email, password string) (*models.User, error)

	// Register creates an account and returns the authenticated user.
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}
