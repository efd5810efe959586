// Package store defines the [Store] interface for page-view counter backends
// and provides the implementations that do not need a network service:
//
//   - [MemoryStore]: fast, in-memory counters that are lost on restart.
//   - [SQLiteStore]: persistent counters backed by a SQLite database.
//   - [TieredStore]: a memory front over a persistent backend.
//
// [Lazy] defers construction of any backend to its first use, and
// [Instrument] records Prometheus metrics around another Store.
//
// The Redis backend lives in the store/redis subpackage. Custom backends can
// be created by implementing the [Store] interface.
package store
