package store

import "espoir/internal/models"

// Intent is a named request to change state, routed by [Container.Dispatch]
// to the store that owns the targeted slice. The set is sealed; the
// presentation layer cannot define new mutations.
type Intent interface {
	intent()
}

// Login exchanges credentials for a session and persists it.
type Login struct {
	Email    string
	Password string
}

// Register creates an account, then behaves like [Login].
type Register struct {
	Username string
	Email    string
	Password string
}

// LoadSession restores the persisted session, if any. Dispatch this to
// completion before routing between the signed-in and signed-out roots.
type LoadSession struct{}

// Logout clears the session locally and best-effort deletes the persisted copy.
type Logout struct{}

// ClearError clears the session error field only.
type ClearError struct{}

// LoadFavorites replaces the in-memory favorite set with the persisted one.
type LoadFavorites struct{}

// AddFavorite appends a movie to the favorite set. A duplicate ID is a no-op.
type AddFavorite struct {
	Movie models.Movie
}

// RemoveFavorite removes a movie from the favorite set. A missing ID is a no-op.
type RemoveFavorite struct {
	MovieID int
}

// FetchTrending replaces the trending list from the catalog.
type FetchTrending struct{}

// FetchPopular replaces the popular list from the catalog.
type FetchPopular struct{}

// FetchDetails loads the full record for one movie into Selected.
type FetchDetails struct {
	MovieID int
}

// Search replaces the search results for a non-empty query. Only the most
// recently issued search may apply its result.
type Search struct {
	Query string
}

// ClearSearch empties the search results.
type ClearSearch struct{}

// ToggleTheme flips the theme and persists the preference best-effort.
type ToggleTheme struct{}

// SetTheme is the one-shot startup initializer for the persisted theme.
type SetTheme struct {
	Mode models.ThemeMode
}

func (Login) intent()          {}
func (Register) intent()       {}
func (LoadSession) intent()    {}
func (Logout) intent()         {}
func (ClearError) intent()     {}
func (LoadFavorites) intent()  {}
func (AddFavorite) intent()    {}
func (RemoveFavorite) intent() {}
func (FetchTrending) intent()  {}
func (FetchPopular) intent()   {}
func (FetchDetails) intent()   {}
func (Search) intent()         {}
func (ClearSearch) intent()    {}
func (ToggleTheme) intent()    {}
func (SetTheme) intent()       {}
