// Package registry holds the server's session keys.
//
// It maps opaque session ids to 256-bit keys and evicts entries whose TTL
// elapses without renewal. All mutation is serialized behind one lock, and
// eviction timers synchronize with that lock before touching the table, so a
// cancelled timer can never remove an entry that replaced the one it was
// armed for.
package registry
