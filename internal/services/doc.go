// Package services implements the remote boundary the state core depends on.
//
// # Interfaces
//
// [Catalog] covers the read-only movie catalog (trending, popular, detail,
// search) and [Authenticator] covers account login and registration. The
// state stores depend only on these interfaces so tests can substitute
// gated or failing doubles.
//
// # TMDB Implementation
//
// [TMDBService] talks to The Movie Database v3 API using api-key query
// authentication. List endpoints return a results envelope which is
// unwrapped into plain []models.Movie. Requests pass through a shared
// [rate.Limiter] so bursts of concurrent fetches stay under the API's
// request budget.
//
// # Auth Implementation
//
// [AuthService] exchanges credentials for a session token over plain JSON.
// The install-scoped device identifier is attached as a request header.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrAuthFailed] : credentials rejected (401/403)
//   - [shared.ErrMovieNotFound] : unknown movie id (404)
//   - [shared.ErrAPIRequest] : transport failure or unexpected status
//   - [shared.ErrInvalidInput] : rejected before any I/O
package services
