// TMDB implementation of [Catalog]
//
// Endpoint shapes based on https://developer.themoviedb.org/reference
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"espoir/internal/models"
	"espoir/internal/shared"
	"golang.org/x/time/rate"
)

const defaultTMDBBaseURL = "https://api.themoviedb.org/3"

// movieList is the paginated results envelope TMDB wraps every list
// endpoint in. Only the current page's results are consumed.
type movieList struct {
	Page         int            `json:"page"`
	Results      []models.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// TMDBService implements [Catalog] against The Movie Database v3 API.
type TMDBService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTMDBService creates a TMDB catalog client. An empty baseURL falls back
// to the public API; requestsPerSecond <= 0 disables client-side limiting.
func NewTMDBService(baseURL, apiKey string, requestsPerSecond float64, client *http.Client) (*TMDBService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing TMDB api key", shared.ErrInvalidConfig)
	}
	if baseURL == "" {
		baseURL = defaultTMDBBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &TMDBService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
		limiter:    rate.NewLimiter(limit, 1),
	}, nil
}

// doRequest performs a rate-limited GET against the TMDB API and decodes the
// JSON response into result.
func (s *TMDBService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	apiURL := s.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: status %d", shared.ErrMovieNotFound, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: tmdb status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Trending retrieves this week's trending movies.
func (s *TMDBService) Trending(ctx context.Context) ([]models.Movie, error) {
	var list movieList
	if err := s.doRequest(ctx, "/trending/movie/week", nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// Popular retrieves the current popular movies.
func (s *TMDBService) Popular(ctx context.Context) ([]models.Movie, error) {
	var list movieList
	if err := s.doRequest(ctx, "/movie/popular", nil, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

// Details retrieves the full record for a single movie.
func (s *TMDBService) Details(ctx context.Context, movieID int) (*models.Movie, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: invalid movie id %d", shared.ErrInvalidInput, movieID)
	}

	var movie models.Movie
	endpoint := fmt.Sprintf("/movie/%d", movieID)
	if err := s.doRequest(ctx, endpoint, nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Search retrieves movies matching the query in relevance order.
func (s *TMDBService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", shared.ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("query", query)

	var list movieList
	if err := s.doRequest(ctx, "/search/movie", params, &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}
