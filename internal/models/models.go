package models

import (
	"fmt"
	"strings"
)

// Genre is a single genre entry on a movie detail record. Order within a
// movie's Genres slice follows the API response and is preserved as-is.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie represents a single movie record from the catalog.
//
// List endpoints return a subset of fields; Runtime, Tagline and Genres are
// only populated by the detail endpoint. A Movie is a value: once decoded it
// is never mutated, only replaced.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	Runtime      int     `json:"runtime,omitempty"`
	Tagline      string  `json:"tagline,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
}

// PosterURL joins the configured image base URL with the movie's poster
// path. Returns an empty string when the movie has no poster.
func (m Movie) PosterURL(base string) string {
	if m.PosterPath == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + m.PosterPath
}

// Year returns the release year portion of ReleaseDate, or an empty string
// when the date is missing or malformed.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// GenreNames flattens the ordered genre list into display names.
func (m Movie) GenreNames() []string {
	if len(m.Genres) == 0 {
		return nil
	}
	names := make([]string, len(m.Genres))
	for i, g := range m.Genres {
		names[i] = g.Name
	}
	return names
}

// User is the authenticated account. Created by a successful login or
// register call, restored from local storage at startup, removed on logout.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Validate checks that the user carries the fields every downstream consumer
// depends on.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.Token == "" {
		return fmt.Errorf("user session token is required")
	}
	return nil
}

// ThemeMode is the display preference. The zero value is light mode.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

func (t ThemeMode) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggled returns the opposite mode.
func (t ThemeMode) Toggled() ThemeMode {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromDark maps the persisted boolean (dark=true) onto a ThemeMode.
// The stored representation predates the enum and is kept for compatibility.
func ThemeFromDark(dark bool) ThemeMode {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether the mode serializes to the persisted dark flag.
func (t ThemeMode) IsDark() bool { return t == ThemeDark }
