package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"espoir/internal/models"
)

var _ list.Item = movieItem{}

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie     models.Movie
	favorited bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }

func (i movieItem) Title() string {
	if i.favorited {
		return "♥ " + i.movie.Title
	}
	return i.movie.Title
}

func (i movieItem) Description() string {
	desc := fmt.Sprintf("%.1f/10", i.movie.VoteAverage)
	if year := i.movie.Year(); year != "" {
		desc = fmt.Sprintf("%s • %s", year, desc)
	}
	return desc
}

// movieItems converts a movie slice into list items, marking favorites.
func movieItems(movies []models.Movie, favorites map[int]bool) []list.Item {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		items[i] = movieItem{movie: m, favorited: favorites[m.ID]}
	}
	return items
}
