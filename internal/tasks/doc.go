// Package tasks implements multi-step operations composed on top of the
// state container.
//
// [Bootstrap] runs the startup sequence (restore theme, session, and
// favorites from storage, then warm the trending and popular lists) and
// reports per-phase progress over a channel so the CLI or TUI can render a
// startup screen without blocking.
//
// [FetchFavoriteDetails] hydrates the favorite set with full detail records
// using a rate-limited worker pool. It is read-only with respect to the
// container: the favorite set itself is only ever mutated through add and
// remove intents.
package tasks
