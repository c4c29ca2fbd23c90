package tasks

import (
	"context"
	"fmt"
	"sync"

	"espoir/internal/models"
	"espoir/internal/services"
	"espoir/internal/shared"
	"espoir/internal/store"
	"golang.org/x/time/rate"
)

// DetailFetchOpts configures [FetchFavoriteDetails].
type DetailFetchOpts struct {
	NumWorkers int     // Concurrent workers (default 3, capped at 8)
	RateLimit  float64 // Requests per second against the catalog (default 4)
}

// DetailFailure records a favorite whose detail fetch failed.
type DetailFailure struct {
	Movie models.Movie
	Err   error
}

// DetailFetchResult contains hydrated favorite records and any per-movie
// failures. Movies keeps the favorite set's display order.
type DetailFetchResult struct {
	Movies   []models.Movie
	Failures []DetailFailure
}

// FetchFavoriteDetails fetches the full detail record for every favorited
// movie through a rate-limited worker pool. List-endpoint records lack
// runtime, tagline, and genres; this fills them in for export and display.
//
// Partial failure is not fatal: movies that could not be hydrated are kept
// in their list form and reported in Failures.
func FetchFavoriteDetails(ctx context.Context, container *store.Container, catalog services.Catalog, progress chan<- ProgressUpdate, opts DetailFetchOpts) (*DetailFetchResult, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 4.0
	}

	favorites := container.State().Favorites.Items
	result := &DetailFetchResult{Movies: make([]models.Movie, len(favorites))}
	if len(favorites) == 0 {
		return result, nil
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan int)

	var mu sync.Mutex
	var wg sync.WaitGroup
	completed := 0

	for w := 0; w < opts.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				fav := favorites[idx]

				if err := limiter.Wait(ctx); err != nil {
					mu.Lock()
					result.Movies[idx] = fav
					result.Failures = append(result.Failures, DetailFailure{Movie: fav, Err: err})
					mu.Unlock()
					continue
				}

				detailed, err := catalog.Details(ctx, fav.ID)

				mu.Lock()
				if err != nil {
					result.Movies[idx] = fav
					result.Failures = append(result.Failures, DetailFailure{Movie: fav, Err: err})
				} else {
					result.Movies[idx] = *detailed
				}
				completed++
				emit(progress, ProgressUpdate{
					Phase:   FetchDetails,
					Step:    completed,
					Total:   len(favorites),
					Message: fav.Title,
					Err:     err,
				})
				mu.Unlock()
			}
		}()
	}

	for idx := range favorites {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return result, nil
}
