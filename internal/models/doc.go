// Package models defines the domain values shared across the Espoir client.
//
// The package contains two categories of types:
//
// 1. Catalog values fetched from TMDB and treated as immutable once decoded:
//   - [Movie] : A single movie record, identified by its TMDB id
//   - [Genre] : An ordered genre entry within a movie's detail record
//
// 2. Client-owned state values:
//   - [User] : The authenticated account restored from or written to local storage
//   - [ThemeMode] : The light/dark display preference
//
// Catalog values carry the TMDB wire field names as JSON tags so the same
// struct serves both the network decode and the local persistence encode.
package models
