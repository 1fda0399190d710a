package store

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatsuo/lmdb-go/lmdb"

	"github.com/okreppe/hoard/pkg/codec"
)

// Store is a cache storage driver for a single namespace. The zero value is
// not usable; construct with New.
type Store struct {
	opts Options

	mu       sync.Mutex
	env      *lmdb.Env
	envOwned bool
	dbi      lmdb.DBI
	dbiOpen  bool
	closed   bool
}

// New creates a Store for opts.Namespace rooted at opts.RootDir. No
// filesystem access happens here; the environment and database file are
// opened on the first operation.
func New(opts Options) *Store {
	if opts.DirMode == 0 {
		opts.DirMode = defaultDirMode
	}
	if opts.MapSize == 0 {
		opts.MapSize = defaultMapSize
	}
	return &Store{opts: opts}
}

// Path returns the location of the namespace database file, or "" when no
// root directory is configured. The file may not exist yet.
func (s *Store) Path() string {
	if s.opts.RootDir == "" {
		return ""
	}
	return filepath.Join(s.opts.RootDir, codec.Escape(s.opts.Namespace)+DBFileSuffix)
}

// environment returns the open LMDB environment, building it on first use.
// An injected environment is returned unchanged. Callers must hold s.mu.
func (s *Store) environment() (*lmdb.Env, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.env != nil {
		return s.env, nil
	}
	if s.opts.Env != nil {
		s.env = s.opts.Env
		return s.env, nil
	}
	if s.opts.RootDir == "" {
		return nil, ErrNoRootDir
	}
	if s.opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	if err := os.MkdirAll(s.opts.RootDir, s.opts.DirMode); err != nil {
		return nil, &FilesystemError{Path: s.opts.RootDir, Err: err}
	}

	path := s.Path()
	env, err := lmdb.NewEnv()
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := env.SetMapSize(s.opts.MapSize); err != nil {
		env.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if s.opts.MaxReaders > 0 {
		if err := env.SetMaxReaders(s.opts.MaxReaders); err != nil {
			env.Close()
			return nil, &OpenError{Path: path, Err: err}
		}
	}

	// NoSubdir keeps the whole environment in a single file, so one
	// namespace is exactly one file (plus the engine's -lock sibling).
	if err := env.Open(path, lmdb.NoSubdir, dbFileMode); err != nil {
		env.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	// Reclaim reader slots left behind by crashed processes.
	if _, err := env.ReaderCheck(); err != nil {
		env.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	s.env = env
	s.envOwned = true
	return env, nil
}

// database returns the environment and its root DBI, opening both on first
// use. Callers must hold s.mu.
func (s *Store) database() (*lmdb.Env, lmdb.DBI, error) {
	env, err := s.environment()
	if err != nil {
		return nil, 0, err
	}
	if s.dbiOpen {
		return env, s.dbi, nil
	}
	if s.opts.DBI != nil {
		s.dbi = *s.opts.DBI
		s.dbiOpen = true
		return env, s.dbi, nil
	}

	var dbi lmdb.DBI
	err = env.Update(func(txn *lmdb.Txn) (err error) {
		dbi, err = txn.OpenRoot(0)
		return err
	})
	if err != nil {
		return nil, 0, &OpenError{Path: s.Path(), Err: err}
	}

	s.dbi = dbi
	s.dbiOpen = true
	return env, dbi, nil
}

// Fetch looks up key and returns the stored value. A miss is not an error:
// it returns (nil, false, nil).
func (s *Store) Fetch(key []byte) (value []byte, found bool, err error) {
	defer observe(opFetch, time.Now())(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	env, dbi, err := s.database()
	if err != nil {
		return nil, false, err
	}
	if len(key) == 0 {
		return nil, false, ErrInvalidKey
	}

	err = env.View(func(txn *lmdb.Txn) error {
		v, err := txn.Get(dbi, key)
		if lmdb.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		value = v
		found = true
		return nil
	})
	if err != nil {
		return nil, false, &IOError{Op: opFetch, Err: err}
	}
	return value, found, nil
}

// Store upserts the record for key. An existing value is overwritten; last
// write wins.
func (s *Store) Store(key, value []byte) (err error) {
	defer observe(opStore, time.Now())(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	env, dbi, err := s.database()
	if err != nil {
		return err
	}
	if len(key) == 0 {
		return ErrInvalidKey
	}

	err = env.Update(func(txn *lmdb.Txn) error {
		return txn.Put(dbi, key, value, 0)
	})
	if err != nil {
		return &IOError{Op: opStore, Err: err}
	}
	return nil
}

// Remove deletes the record for key if present. Removing a key that was
// never stored is a successful no-op.
func (s *Store) Remove(key []byte) (err error) {
	defer observe(opRemove, time.Now())(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	env, dbi, err := s.database()
	if err != nil {
		return err
	}
	if len(key) == 0 {
		return ErrInvalidKey
	}

	err = env.Update(func(txn *lmdb.Txn) error {
		err := txn.Del(dbi, key, nil)
		if lmdb.IsNotFound(err) {
			return nil
		}
		return err
	})
	if err != nil {
		return &IOError{Op: opRemove, Err: err}
	}
	return nil
}

// Clear removes every record from the namespace. The database file and the
// handle stay open and usable.
func (s *Store) Clear() (err error) {
	defer observe(opClear, time.Now())(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	env, dbi, err := s.database()
	if err != nil {
		return err
	}

	err = env.Update(func(txn *lmdb.Txn) error {
		return txn.Drop(dbi, false)
	})
	if err != nil {
		return &IOError{Op: opClear, Err: err}
	}
	return nil
}

// Keys returns every key currently stored in the namespace, materialized
// eagerly from a single read transaction. Order is engine-defined; callers
// must not rely on it.
func (s *Store) Keys() (keys [][]byte, err error) {
	defer observe(opKeys, time.Now())(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	env, dbi, err := s.database()
	if err != nil {
		return nil, err
	}

	err = env.View(func(txn *lmdb.Txn) error {
		cur, err := txn.OpenCursor(dbi)
		if err != nil {
			return err
		}
		defer cur.Close()

		for {
			k, _, err := cur.Get(nil, nil, lmdb.Next)
			if lmdb.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			keys = append(keys, k)
		}
	})
	if err != nil {
		return nil, &IOError{Op: opKeys, Err: err}
	}
	return keys, nil
}

// Close releases the Store. An owned environment is closed; an injected one
// is left open for its supplier. Close is idempotent, and operations on a
// closed Store return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.dbiOpen = false

	var err error
	if s.env != nil && s.envOwned {
		err = s.env.Close()
	}
	s.env = nil
	return err
}
