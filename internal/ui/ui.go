package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"espoir/internal/models"
	"espoir/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TrendingView ViewState = iota
	PopularView
	FavoritesView
	SearchView
	DetailView
)

func (v ViewState) String() string {
	switch v {
	case TrendingView:
		return "Trending"
	case PopularView:
		return "Popular"
	case FavoritesView:
		return "Favorites"
	case SearchView:
		return "Search"
	case DetailView:
		return "Details"
	default:
		return "Unknown"
	}
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	container *store.Container

	view     ViewState
	prevView ViewState
	width    int
	height   int

	snapshot  store.AppState
	snapshots chan store.AppState
	unsub     func()

	trendingList  list.Model
	popularList   list.Model
	favoritesList list.Model
	searchList    list.Model
	searchInput   textinput.Model
	searching     bool

	styles styles
	help   help.Model
	keys   keyMap
	err    error
}

// NewModel creates the TUI model and subscribes it to the container.
// The subscription is torn down when the program quits.
func NewModel(ctx context.Context, container *store.Container) *Model {
	snapshots := make(chan store.AppState, 16)
	unsub := container.Subscribe(func(s store.AppState) {
		// Drop the oldest pending snapshot rather than block the pump; the
		// UI only cares about the newest state.
		for {
			select {
			case snapshots <- s:
				return
			default:
				select {
				case <-snapshots:
				default:
				}
			}
		}
	})

	input := textinput.New()
	input.Placeholder = "Search movies..."
	input.CharLimit = 100

	snapshot := container.State()
	m := &Model{
		ctx:           ctx,
		container:     container,
		snapshot:      snapshot,
		snapshots:     snapshots,
		unsub:         unsub,
		trendingList:  newMovieList("Trending"),
		popularList:   newMovieList("Popular"),
		favoritesList: newMovieList("Favorites"),
		searchList:    newMovieList("Results"),
		searchInput:   input,
		styles:        newStyles(snapshot.Theme),
		help:          help.New(),
		keys:          newKeyMap(),
	}
	m.applySnapshot(snapshot)
	return m
}

func newMovieList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

// Init starts the snapshot wait loop.
func (m *Model) Init() tea.Cmd {
	return m.waitForSnapshot()
}

// waitForSnapshot blocks until the container publishes the next snapshot.
func (m *Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{state: <-m.snapshots}
	}
}

// dispatch runs an intent off the update loop and reports its settled result.
func (m *Model) dispatch(intent store.Intent) tea.Cmd {
	return func() tea.Msg {
		return dispatchedMsg{err: m.container.Dispatch(m.ctx, intent)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := m.height - 6
		for _, l := range []*list.Model{&m.trendingList, &m.popularList, &m.favoritesList, &m.searchList} {
			l.SetSize(m.width, listHeight)
		}
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg.state)
		return m, m.waitForSnapshot()

	case dispatchedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, m.keys.enter):
			m.searching = false
			m.searchInput.Blur()
			query := strings.TrimSpace(m.searchInput.Value())
			if query == "" {
				return m, nil
			}
			m.view = SearchView
			return m, m.dispatch(store.Search{Query: query})
		case key.Matches(msg, m.keys.back):
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		m.unsub()
		return m, tea.Quit

	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.theme):
		return m, m.dispatch(store.ToggleTheme{})

	case key.Matches(msg, m.keys.tab):
		m.view = m.nextView()
		return m, nil

	case key.Matches(msg, m.keys.back):
		if m.view == DetailView {
			m.view = m.prevView
		} else if m.view == SearchView {
			m.view = TrendingView
			return m, m.dispatch(store.ClearSearch{})
		}
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if movie, ok := m.selectedMovie(); ok && m.view != DetailView {
			m.prevView = m.view
			m.view = DetailView
			return m, m.dispatch(store.FetchDetails{MovieID: movie.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.favorite):
		if movie, ok := m.selectedMovie(); ok {
			if m.snapshot.Favorites.Contains(movie.ID) {
				return m, m.dispatch(store.RemoveFavorite{MovieID: movie.ID})
			}
			return m, m.dispatch(store.AddFavorite{Movie: movie})
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case TrendingView:
		m.trendingList, cmd = m.trendingList.Update(msg)
	case PopularView:
		m.popularList, cmd = m.popularList.Update(msg)
	case FavoritesView:
		m.favoritesList, cmd = m.favoritesList.Update(msg)
	case SearchView:
		m.searchList, cmd = m.searchList.Update(msg)
	}
	return m, cmd
}

func (m *Model) nextView() ViewState {
	switch m.view {
	case TrendingView:
		return PopularView
	case PopularView:
		return FavoritesView
	case FavoritesView:
		return TrendingView
	default:
		return TrendingView
	}
}

// selectedMovie returns the movie under the cursor in the active list view.
func (m *Model) selectedMovie() (models.Movie, bool) {
	var active *list.Model
	switch m.view {
	case TrendingView:
		active = &m.trendingList
	case PopularView:
		active = &m.popularList
	case FavoritesView:
		active = &m.favoritesList
	case SearchView:
		active = &m.searchList
	case DetailView:
		if m.snapshot.Catalog.Selected != nil {
			return *m.snapshot.Catalog.Selected, true
		}
		return models.Movie{}, false
	}
	if active == nil {
		return models.Movie{}, false
	}
	item, ok := active.SelectedItem().(movieItem)
	if !ok {
		return models.Movie{}, false
	}
	return item.movie, true
}

// applySnapshot refreshes every list from the published state.
func (m *Model) applySnapshot(state store.AppState) {
	m.snapshot = state
	m.styles = newStyles(state.Theme)

	favorites := make(map[int]bool, len(state.Favorites.Items))
	for _, f := range state.Favorites.Items {
		favorites[f.ID] = true
	}

	m.trendingList.SetItems(movieItems(state.Catalog.Trending, favorites))
	m.popularList.SetItems(movieItems(state.Catalog.Popular, favorites))
	m.favoritesList.SetItems(movieItems(state.Favorites.Items, favorites))
	m.searchList.SetItems(movieItems(state.Catalog.SearchResults, favorites))
}

func (m *Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("espoir — %s", m.view)
	if m.snapshot.Session.Authenticated && m.snapshot.Session.User != nil {
		header += fmt.Sprintf(" — %s", m.snapshot.Session.User.Username)
	}
	b.WriteString(m.styles.title.Render(header))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	switch m.view {
	case TrendingView:
		b.WriteString(m.trendingList.View())
	case PopularView:
		b.WriteString(m.popularList.View())
	case FavoritesView:
		b.WriteString(m.favoritesList.View())
	case SearchView:
		if m.snapshot.Catalog.SearchLoading {
			b.WriteString(m.styles.status.Render("Searching..."))
			b.WriteString("\n")
		}
		b.WriteString(m.searchList.View())
	case DetailView:
		b.WriteString(m.detailView())
	}

	if m.snapshot.Catalog.Err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errMsg.Render(m.snapshot.Catalog.Err))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.errMsg.Render(m.err.Error()))
	}

	return b.String()
}

func (m *Model) detailView() string {
	movie := m.snapshot.Catalog.Selected
	if movie == nil {
		return m.styles.status.Render("Loading details...")
	}

	var b strings.Builder
	b.WriteString(movie.Title)
	if year := movie.Year(); year != "" {
		b.WriteString(fmt.Sprintf(" (%s)", year))
	}
	b.WriteString("\n\n")
	if movie.Tagline != "" {
		b.WriteString(fmt.Sprintf("%s\n\n", movie.Tagline))
	}
	b.WriteString(fmt.Sprintf("Rating: %.1f/10\n", movie.VoteAverage))
	if movie.Runtime > 0 {
		b.WriteString(fmt.Sprintf("Runtime: %d min\n", movie.Runtime))
	}
	if names := movie.GenreNames(); len(names) > 0 {
		b.WriteString(fmt.Sprintf("Genres: %s\n", strings.Join(names, ", ")))
	}
	if movie.Overview != "" {
		b.WriteString("\n")
		b.WriteString(movie.Overview)
	}

	return m.styles.detail.Render(b.String())
}
