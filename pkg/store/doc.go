// Package store persists opaque key/value pairs into LMDB, one database file
// per logical namespace, for use as the storage backend of a generic caching
// layer. The package implements no caching policy: no TTL, no serialization,
// no eviction. Those belong to the caller.
//
// # On-Disk Layout
//
// All namespaces share one root directory. Each namespace maps (via
// pkg/codec) to a single LMDB environment file inside it:
//
//	rootDir/
//	    sessions.db
//	    sessions.db-lock
//	    user%3Aprofiles.db
//	    user%3Aprofiles.db-lock
//
// The -lock siblings hold LMDB's reader table and are managed entirely by the
// engine. Namespaces(rootDir) inverts the mapping to discover what exists.
//
// # Lifecycle
//
// New performs no filesystem access and cannot fail. The environment and the
// database handle are opened lazily, at most once per Store, on the first
// operation; configuration problems (no root directory) therefore surface on
// first use, not at construction. A Store holds its environment and handle
// open until Close.
//
// An already-open *lmdb.Env may be injected through Options.Env. It is
// borrowed, not owned: the Store returns it unchanged, never reconfigures it,
// and Close leaves it open. Several Stores may share one injected
// environment within a process.
//
// # Concurrency
//
// Multiple independent operating-system processes may open the same root
// directory and read and write concurrently without any external locking in
// this layer. LMDB provides the guarantee: readers never block and never
// take locks, a single writer at a time is serialized through the lock file,
// and no external lock manager is involved. Do not open the same namespace
// file twice within one process; share a Store (or an injected environment)
// instead.
//
// Within a process, a Store serializes its own operations with an internal
// mutex, so a single Store may be shared between goroutines. Key enumeration
// runs inside one read transaction; the returned keys are copies and remain
// valid after the call.
//
// Keys and values are opaque byte sequences, with one restriction inherited
// from the engine: LMDB refuses zero-length keys, so Fetch, Store and Remove
// reject an empty key with ErrInvalidKey. The check runs after lazy
// initialization, so configuration problems surface first.
package store
