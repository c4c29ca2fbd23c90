package store

import (
	"espoir/internal/models"
)

// SessionState is the authentication slice of the state tree.
type SessionState struct {
	User          *models.User
	Authenticated bool
	Loading       bool
	Err           string
}

// FavoritesState is the favorited-movie slice. Items is an insertion-ordered
// set keyed by movie ID; no two entries share an ID.
type FavoritesState struct {
	Items   []models.Movie
	Loading bool
}

// Contains reports whether a movie with the given ID is favorited.
func (f FavoritesState) Contains(movieID int) bool {
	for _, m := range f.Items {
		if m.ID == movieID {
			return true
		}
	}
	return false
}

// CatalogState is the browsing slice. Each list is replaced wholesale by a
// successful fetch; a failed fetch leaves the previous list intact and
// records the failure in Err.
type CatalogState struct {
	Trending       []models.Movie
	Popular        []models.Movie
	SearchResults  []models.Movie
	Selected       *models.Movie
	Loading        bool // trending fetch in flight
	PopularLoading bool
	SearchLoading  bool
	Err            string
}

// AppState is the composite snapshot published to listeners. Always a fully
// consistent tree, never a half-applied mutation.
type AppState struct {
	Session   SessionState
	Favorites FavoritesState
	Catalog   CatalogState
	Theme     models.ThemeMode
}

// clone deep-copies the state so published snapshots never share slice or
// pointer internals with the container's working copy.
func (s AppState) clone() AppState {
	out := s
	out.Session.User = cloneUser(s.Session.User)
	out.Favorites.Items = cloneMovies(s.Favorites.Items)
	out.Catalog.Trending = cloneMovies(s.Catalog.Trending)
	out.Catalog.Popular = cloneMovies(s.Catalog.Popular)
	out.Catalog.SearchResults = cloneMovies(s.Catalog.SearchResults)
	out.Catalog.Selected = cloneMovie(s.Catalog.Selected)
	return out
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	dup := *u
	return &dup
}

func cloneMovie(m *models.Movie) *models.Movie {
	if m == nil {
		return nil
	}
	dup := *m
	if len(m.Genres) > 0 {
		dup.Genres = make([]models.Genre, len(m.Genres))
		copy(dup.Genres, m.Genres)
	}
	return &dup
}

func cloneMovies(items []models.Movie) []models.Movie {
	if items == nil {
		return nil
	}
	dup := make([]models.Movie, len(items))
	for i, m := range items {
		dup[i] = m
		if len(m.Genres) > 0 {
			dup[i].Genres = make([]models.Genre, len(m.Genres))
			copy(dup[i].Genres, m.Genres)
		}
	}
	return dup
}
