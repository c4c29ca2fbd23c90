package tasks

import (
	"context"
	"sync"

	"espoir/internal/storage"
	"espoir/internal/store"
)

// BootstrapResult records which startup phases failed. Startup is
// best-effort: a failed phase leaves that slice of state at its default and
// the client keeps going.
type BootstrapResult struct {
	Errors map[Phase]error
}

// Failed reports whether any phase failed.
func (r *BootstrapResult) Failed() bool { return len(r.Errors) > 0 }

// Bootstrap runs the startup sequence against the container: theme, session,
// and favorites are restored from storage in order (session restore must
// settle before the caller routes between signed-in and signed-out roots),
// then the trending and popular lists are warmed concurrently.
//
// Progress may be nil. The returned result is never nil.
func Bootstrap(ctx context.Context, container *store.Container, gateway *storage.Gateway, progress chan<- ProgressUpdate) *BootstrapResult {
	result := &BootstrapResult{Errors: make(map[Phase]error)}

	record := func(phase Phase, message string, err error) {
		if err != nil {
			result.Errors[phase] = err
		}
		emit(progress, ProgressUpdate{Phase: phase, Step: 1, Total: 1, Message: message, Err: err})
	}

	mode, err := gateway.LoadTheme(ctx)
	if err == nil {
		err = container.Dispatch(ctx, store.SetTheme{Mode: mode})
	}
	record(RestoreTheme, "restoring theme preference", err)

	record(RestoreSession, "restoring session", container.Dispatch(ctx, store.LoadSession{}))
	record(RestoreFavorites, "restoring favorites", container.Dispatch(ctx, store.LoadFavorites{}))

	var wg sync.WaitGroup
	var trendingErr, popularErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		trendingErr = container.Dispatch(ctx, store.FetchTrending{})
	}()
	go func() {
		defer wg.Done()
		popularErr = container.Dispatch(ctx, store.FetchPopular{})
	}()
	wg.Wait()

	record(WarmTrending, "fetching trending movies", trendingErr)
	record(WarmPopular, "fetching popular movies", popularErr)

	return result
}
