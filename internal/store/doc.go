// Package store is the application-state core of the Espoir client.
//
// # Overview
//
// A single [Container] owns the composite [AppState] (session, favorites,
// catalog, theme) and is the only code permitted to mutate it. The
// presentation layer sends intents through [Container.Dispatch] and observes
// results through [Container.Subscribe]; it never holds a mutable handle
// into store internals.
//
// # Concurrency Model
//
// One mutex serializes every mutation phase: reading the old state,
// computing the new state, and queueing the snapshot for publication happen
// atomically with respect to other dispatches. Network and storage I/O runs
// outside the lock, so independent fetches interleave freely at their I/O
// boundaries.
//
// Operations whose results land in a shared field carry a generation tag
// taken when the operation is issued. A result is applied only if its tag
// still matches the field's current generation, so a late-arriving response
// from a superseded search or login can never overwrite a newer one. The
// underlying request is not cancelled; only its result is discarded.
//
// # Publication
//
// Snapshots are deep-copied and queued in mutation order. A single pump
// goroutine delivers them to listeners sequentially, so every listener
// observes the same strictly ordered snapshot sequence. A listener
// registered after snapshot N is delivered N+1 onward.
//
// # Persistence
//
// The session user, the favorite set, and the theme flag are mirrored to the
// storage gateway. For favorites the in-memory mutation is applied first and
// rolled back if the write fails, keeping memory and disk equivalent.
// Session writes are surfaced as errors; theme writes and the logout delete
// are best-effort and only logged.
package store
