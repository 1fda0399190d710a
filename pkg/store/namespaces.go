package store

import (
	"os"
	"strings"

	"github.com/okreppe/hoard/pkg/codec"
)

// Namespaces lists every namespace with a database file directly under
// rootDir, inverting the file name mapping. Entries with the right suffix
// whose names could not have been produced by the codec are skipped, so
// foreign files cannot break discovery. Order follows the directory listing
// and must not be relied on.
func Namespaces(rootDir string) ([]string, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, &FilesystemError{Path: rootDir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, DBFileSuffix) {
			continue
		}
		ns, err := codec.Unescape(strings.TrimSuffix(name, DBFileSuffix))
		if err != nil {
			continue
		}
		names = append(names, ns)
	}
	return names, nil
}

// Namespaces lists the namespaces under the Store's root directory. It does
// not require (or trigger) an open database handle.
func (s *Store) Namespaces() ([]string, error) {
	if s.opts.RootDir == "" {
		return nil, ErrNoRootDir
	}
	return Namespaces(s.opts.RootDir)
}
