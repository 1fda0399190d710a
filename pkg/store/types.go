package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatsuo/lmdb-go/lmdb"
)

// DBFileSuffix is the extension carried by every namespace database file.
const DBFileSuffix = ".db"

const (
	defaultMapSize = 1 << 30 // 1 GiB
	defaultDirMode = os.FileMode(0775)
	dbFileMode     = os.FileMode(0644)
)

// Options holds configuration for a Store
type Options struct {
	RootDir    string      // Home directory for namespace files, required unless Env is set
	Namespace  string      // Logical partition name, required unless Env is set
	DirMode    os.FileMode // Permission bits for auto-created directories (default 0775)
	MapSize    int64       // LMDB map size in bytes (default 1 GiB)
	MaxReaders int         // LMDB reader slots (0 = engine default)
	Env        *lmdb.Env   // Pre-built environment, borrowed rather than owned
	DBI        *lmdb.DBI   // Pre-opened database handle within Env, bypasses the lazy open
}

// Errors
var (
	// ErrNoRootDir reports that neither an environment nor a root directory
	// was configured. Raised on first use, never at construction.
	ErrNoRootDir = errors.New("store: neither an environment nor a root directory was configured")

	// ErrNoNamespace reports a missing namespace name.
	ErrNoNamespace = errors.New("store: namespace is required")

	// ErrInvalidKey reports a key the engine cannot store.
	ErrInvalidKey = errors.New("store: invalid key")

	// ErrClosed reports an operation on a closed Store.
	ErrClosed = errors.New("store: store is closed")
)

// FilesystemError reports a failed directory creation or listing.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("store: filesystem error at %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// OpenError reports a failure to open the environment or the database file.
// Path is the namespace file the Store was trying to open.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("store: cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError reports a storage operation that failed with a non-tolerated
// engine status. Op names the operation: fetch, store, remove, clear, keys.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
