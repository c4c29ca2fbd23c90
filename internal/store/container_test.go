package store

import (
	"context"
	"io"
	"sync"
	"testing"

	"espoir/internal/models"
	"espoir/internal/services"
	"espoir/internal/shared"
	"espoir/internal/storage"
	tu "espoir/internal/testing"
)

// newTestContainer builds a container over in-memory storage and the given
// remote doubles. The caller owns Close.
func newTestContainer(t *testing.T, catalog services.Catalog, auth services.Authenticator, kv *tu.MemoryKV) (*Container, *tu.MemoryKV) {
	t.Helper()

	if kv == nil {
		kv = tu.NewMemoryKV(shared.ErrKeyNotFound)
	}
	if catalog == nil {
		catalog = &tu.CatalogStub{}
	}
	if auth == nil {
		auth = &tu.AuthStub{}
	}

	logger := shared.NewLogger(io.Discard)
	c := New(catalog, auth, storage.NewGateway(kv), logger)
	t.Cleanup(c.Close)
	return c, kv
}

func sampleMovies(ids ...int) []models.Movie {
	movies := make([]models.Movie, len(ids))
	for i, id := range ids {
		movies[i] = models.Movie{ID: id, Title: "Movie", VoteAverage: 7.5}
	}
	return movies
}

func TestContainer(t *testing.T) {
	t.Run("Dispatch Unknown Intent", func(t *testing.T) {
		c, _ := newTestContainer(t, nil, nil, nil)

		type bogus struct{ Intent }
		if err := c.Dispatch(context.Background(), bogus{}); err == nil {
			t.Error("expected error for unknown intent")
		}
	})

	t.Run("State Returns Defensive Copy", func(t *testing.T) {
		c, _ := newTestContainer(t, &tu.CatalogStub{
			TrendingFn: func(ctx context.Context) ([]models.Movie, error) {
				return sampleMovies(1, 2), nil
			},
		}, nil, nil)

		if err := c.Dispatch(context.Background(), FetchTrending{}); err != nil {
			t.Fatalf("fetch trending failed: %v", err)
		}

		snap := c.State()
		snap.Catalog.Trending[0].Title = "mutated"

		if c.State().Catalog.Trending[0].Title == "mutated" {
			t.Error("mutating a returned snapshot leaked into the container")
		}
	})

	t.Run("Subscribers Observe Ordered Snapshots", func(t *testing.T) {
		c, _ := newTestContainer(t, nil, nil, nil)

		var mu sync.Mutex
		var seen []AppState
		c.Subscribe(func(s AppState) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		})

		ctx := context.Background()
		for i := 0; i < 3; i++ {
			if err := c.Dispatch(ctx, ToggleTheme{}); err != nil {
				t.Fatalf("toggle failed: %v", err)
			}
		}
		c.Close()

		mu.Lock()
		defer mu.Unlock()
		if len(seen) != 3 {
			t.Fatalf("expected 3 snapshots, got %d", len(seen))
		}

		want := []models.ThemeMode{models.ThemeDark, models.ThemeLight, models.ThemeDark}
		for i, s := range seen {
			if s.Theme != want[i] {
				t.Errorf("snapshot %d: expected theme %s, got %s", i, want[i], s.Theme)
			}
		}
	})

	t.Run("Late Subscriber Skips Earlier Snapshots", func(t *testing.T) {
		c, _ := newTestContainer(t, &tu.CatalogStub{
			TrendingFn: func(ctx context.Context) ([]models.Movie, error) {
				return sampleMovies(1), nil
			},
		}, nil, nil)

		ctx := context.Background()
		if err := c.Dispatch(ctx, FetchTrending{}); err != nil {
			t.Fatalf("fetch trending failed: %v", err)
		}

		var mu sync.Mutex
		var seen []AppState
		c.Subscribe(func(s AppState) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		})

		if err := c.Dispatch(ctx, ToggleTheme{}); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		c.Close()

		mu.Lock()
		defer mu.Unlock()
		if len(seen) != 1 {
			t.Fatalf("expected only the post-subscription snapshot, got %d", len(seen))
		}

		// The delivered snapshot is the full consistent tree, not just the
		// slice the dispatch touched.
		if seen[0].Theme != models.ThemeDark {
			t.Errorf("expected dark theme in snapshot, got %s", seen[0].Theme)
		}
		if len(seen[0].Catalog.Trending) != 1 {
			t.Errorf("expected trending list carried into snapshot, got %d entries", len(seen[0].Catalog.Trending))
		}
	})

	t.Run("Unsubscribe Stops Delivery", func(t *testing.T) {
		c, _ := newTestContainer(t, nil, nil, nil)

		var mu sync.Mutex
		count := 0
		unsub := c.Subscribe(func(AppState) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		ctx := context.Background()
		if err := c.Dispatch(ctx, ToggleTheme{}); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		c.Close()
		unsub()

		mu.Lock()
		before := count
		mu.Unlock()
		if before != 1 {
			t.Fatalf("expected 1 delivery before unsubscribe, got %d", before)
		}
	})

	t.Run("Close Is Idempotent", func(t *testing.T) {
		c, _ := newTestContainer(t, nil, nil, nil)
		c.Close()
		c.Close()
	})
}
