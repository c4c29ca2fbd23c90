// Package storage implements the durable key-value gateway backing the
// client's persisted state.
//
// Two layers:
//   - [KV] : raw byte-oriented get/set/remove over logical string keys,
//     implemented by [SQLiteKV] on a single migrated kv table
//   - [Gateway] : typed wrapper that owns the JSON encoding of the three
//     persisted slices of state (session user, favorite set, theme flag)
//     plus the install-scoped device identifier
//
// The key namespace is partitioned per owner: session, favorites, and theme
// never share a key, so callers need no cross-store coordination.
package storage
