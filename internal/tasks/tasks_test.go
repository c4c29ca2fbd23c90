package tasks

import (
	"context"
	"errors"
	"io"
	"testing"

	"espoir/internal/models"
	"espoir/internal/shared"
	"espoir/internal/storage"
	"espoir/internal/store"
	tu "espoir/internal/testing"
)

func newTaskFixture(t *testing.T, catalog *tu.CatalogStub) (*store.Container, *storage.Gateway) {
	t.Helper()

	if catalog == nil {
		catalog = &tu.CatalogStub{}
	}
	gateway := storage.NewGateway(tu.NewMemoryKV(shared.ErrKeyNotFound))
	c := store.New(catalog, &tu.AuthStub{}, gateway, shared.NewLogger(io.Discard))
	t.Cleanup(c.Close)
	return c, gateway
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores Persisted State And Warms Lists", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			TrendingFn: func(ctx context.Context) ([]models.Movie, error) {
				return []models.Movie{{ID: 1, Title: "Trending"}}, nil
			},
			PopularFn: func(ctx context.Context) ([]models.Movie, error) {
				return []models.Movie{{ID: 2, Title: "Popular"}}, nil
			},
		}
		container, gateway := newTaskFixture(t, catalog)

		if err := gateway.SaveTheme(ctx, models.ThemeDark); err != nil {
			t.Fatal(err)
		}
		if err := gateway.SaveUser(ctx, &models.User{ID: "u1", Email: "jess@example.com", Token: "tok"}); err != nil {
			t.Fatal(err)
		}
		if err := gateway.SaveFavorites(ctx, []models.Movie{{ID: 42, Title: "Favorite"}}); err != nil {
			t.Fatal(err)
		}

		result := Bootstrap(ctx, container, gateway, nil)
		if result.Failed() {
			t.Fatalf("expected clean bootstrap, got %v", result.Errors)
		}

		state := container.State()
		if state.Theme != models.ThemeDark {
			t.Errorf("expected dark theme restored, got %v", state.Theme)
		}
		if !state.Session.Authenticated || state.Session.User == nil || state.Session.User.ID != "u1" {
			t.Errorf("expected session restored, got %+v", state.Session)
		}
		if len(state.Favorites.Items) != 1 || state.Favorites.Items[0].ID != 42 {
			t.Errorf("expected favorites restored, got %+v", state.Favorites.Items)
		}
		if len(state.Catalog.Trending) != 1 || len(state.Catalog.Popular) != 1 {
			t.Errorf("expected warmed lists, got %d/%d", len(state.Catalog.Trending), len(state.Catalog.Popular))
		}
	})

	t.Run("Cold Start Succeeds With Empty Storage", func(t *testing.T) {
		container, gateway := newTaskFixture(t, nil)

		result := Bootstrap(ctx, container, gateway, nil)
		if result.Failed() {
			t.Fatalf("expected clean cold start, got %v", result.Errors)
		}

		state := container.State()
		if state.Session.Authenticated || state.Theme != models.ThemeLight {
			t.Errorf("expected signed-out light defaults, got %+v", state)
		}
	})

	t.Run("Records Failed Phases And Keeps Going", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			TrendingFn: func(ctx context.Context) ([]models.Movie, error) {
				return nil, errors.New("gateway timeout")
			},
			PopularFn: func(ctx context.Context) ([]models.Movie, error) {
				return []models.Movie{{ID: 2}}, nil
			},
		}
		container, gateway := newTaskFixture(t, catalog)

		result := Bootstrap(ctx, container, gateway, nil)
		if !result.Failed() {
			t.Fatal("expected a recorded failure")
		}
		if result.Errors[WarmTrending] == nil {
			t.Errorf("expected trending phase error, got %v", result.Errors)
		}
		if len(container.State().Catalog.Popular) != 1 {
			t.Error("popular warm must proceed despite trending failure")
		}
	})

	t.Run("Emits Progress For Every Phase", func(t *testing.T) {
		container, gateway := newTaskFixture(t, nil)

		progress := make(chan ProgressUpdate, 16)
		Bootstrap(ctx, container, gateway, progress)
		close(progress)

		seen := make(map[Phase]bool)
		for update := range progress {
			seen[update.Phase] = true
		}
		for _, phase := range []Phase{RestoreTheme, RestoreSession, RestoreFavorites, WarmTrending, WarmPopular} {
			if !seen[phase] {
				t.Errorf("missing progress for phase %s", phase)
			}
		}
	})
}

func TestFetchFavoriteDetails(t *testing.T) {
	ctx := context.Background()

	seedFavorites := func(t *testing.T, container *store.Container, ids ...int) {
		t.Helper()
		for _, id := range ids {
			movie := models.Movie{ID: id, Title: "Listed"}
			if err := container.Dispatch(ctx, store.AddFavorite{Movie: movie}); err != nil {
				t.Fatal(err)
			}
		}
	}

	t.Run("Hydrates Favorites In Display Order", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			DetailsFn: func(ctx context.Context, movieID int) (*models.Movie, error) {
				return &models.Movie{ID: movieID, Title: "Detailed", Runtime: 100 + movieID}, nil
			},
		}
		container, _ := newTaskFixture(t, catalog)
		seedFavorites(t, container, 3, 1, 2)

		result, err := FetchFavoriteDetails(ctx, container, catalog, nil, DetailFetchOpts{})
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(result.Failures) != 0 {
			t.Errorf("expected no failures, got %+v", result.Failures)
		}
		for i, want := range []int{3, 1, 2} {
			if result.Movies[i].ID != want || result.Movies[i].Runtime != 100+want {
				t.Errorf("position %d: expected hydrated movie %d, got %+v", i, want, result.Movies[i])
			}
		}
	})

	t.Run("Partial Failure Keeps The List Record", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			DetailsFn: func(ctx context.Context, movieID int) (*models.Movie, error) {
				if movieID == 2 {
					return nil, errors.New("gateway timeout")
				}
				return &models.Movie{ID: movieID, Runtime: 90}, nil
			},
		}
		container, _ := newTaskFixture(t, catalog)
		seedFavorites(t, container, 1, 2, 3)

		result, err := FetchFavoriteDetails(ctx, container, catalog, nil, DetailFetchOpts{})
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(result.Failures) != 1 || result.Failures[0].Movie.ID != 2 {
			t.Errorf("expected one failure for movie 2, got %+v", result.Failures)
		}
		if result.Movies[1].ID != 2 || result.Movies[1].Runtime != 0 {
			t.Errorf("failed movie must keep its list form, got %+v", result.Movies[1])
		}
		if result.Movies[0].Runtime != 90 || result.Movies[2].Runtime != 90 {
			t.Errorf("other movies must hydrate, got %+v", result.Movies)
		}
	})

	t.Run("Empty Set Is A Quick NoOp", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			DetailsFn: func(ctx context.Context, movieID int) (*models.Movie, error) {
				t.Error("details must not be called for an empty set")
				return nil, nil
			},
		}
		container, _ := newTaskFixture(t, catalog)

		result, err := FetchFavoriteDetails(ctx, container, catalog, nil, DetailFetchOpts{})
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(result.Movies) != 0 {
			t.Errorf("expected empty result, got %+v", result.Movies)
		}
	})

	t.Run("Nil Catalog Wraps ErrServiceUnavailable", func(t *testing.T) {
		container, _ := newTaskFixture(t, nil)

		_, err := FetchFavoriteDetails(ctx, container, nil, nil, DetailFetchOpts{})
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("Leaves Container State Untouched", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			DetailsFn: func(ctx context.Context, movieID int) (*models.Movie, error) {
				return &models.Movie{ID: movieID, Runtime: 90}, nil
			},
		}
		container, _ := newTaskFixture(t, catalog)
		seedFavorites(t, container, 1)

		if _, err := FetchFavoriteDetails(ctx, container, catalog, nil, DetailFetchOpts{}); err != nil {
			t.Fatal(err)
		}

		items := container.State().Favorites.Items
		if len(items) != 1 || items[0].Runtime != 0 {
			t.Errorf("favorite set must keep its list form in state, got %+v", items)
		}
	})

	t.Run("Reports Per Movie Progress", func(t *testing.T) {
		catalog := &tu.CatalogStub{
			DetailsFn: func(ctx context.Context, movieID int) (*models.Movie, error) {
				return &models.Movie{ID: movieID}, nil
			},
		}
		container, _ := newTaskFixture(t, catalog)
		seedFavorites(t, container, 1, 2, 3)

		progress := make(chan ProgressUpdate, 8)
		if _, err := FetchFavoriteDetails(ctx, container, catalog, progress, DetailFetchOpts{NumWorkers: 2}); err != nil {
			t.Fatal(err)
		}
		close(progress)

		count := 0
		for update := range progress {
			if update.Phase != FetchDetails || update.Total != 3 {
				t.Errorf("unexpected update %+v", update)
			}
			count++
		}
		if count != 3 {
			t.Errorf("expected 3 updates, got %d", count)
		}
	})
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{
		RestoreTheme:     "restore_theme",
		RestoreSession:   "restore_session",
		RestoreFavorites: "restore_favorites",
		WarmTrending:     "warm_trending",
		WarmPopular:      "warm_popular",
		FetchDetails:     "fetch_details",
		Phase(99):        "unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
