// Package storage persists the ledger's structured form to durable
// storage. The whole file is replaced on every save; there is no
// partial-write visibility and no file locking (a single exclusive
// process is assumed, last writer wins).
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/penny-dev/penny/internal/ledger"
)

// Store is the persistence port for the ledger.
type Store interface {
	Load() (*ledger.Ledger, error)
	Save(*ledger.Ledger) error
}

// FileStore keeps the ledger as indented JSON at a single path.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a FileStore. Warnings about unreadable data go
// to log.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Path returns the data file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the data file. A missing file yields a fresh empty
// ledger; a corrupted file yields a fresh empty ledger after a
// warning. Neither is an error.
func (s *FileStore) Load() (*ledger.Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	l, err := ledger.Decode(f)
	if err != nil {
		s.log.Warn().Str("path", s.path).Err(err).Msg("data file corrupted, starting with fresh data")
		return ledger.New(), nil
	}
	return l, nil
}

// Save replaces the data file atomically: the ledger is written to a
// sibling temp file which is then renamed over the target.
func (s *FileStore) Save(l *ledger.Ledger) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp data file: %w", err)
	}

	if err := ledger.Encode(tmp, l); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("saving ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}

// MemStore keeps the ledger in memory. Tests inject it to exercise the
// core without real file I/O.
type MemStore struct {
	Ledger  *ledger.Ledger
	Saves   int
	SaveErr error
}

// Load returns the stored ledger, or a fresh empty one.
func (s *MemStore) Load() (*ledger.Ledger, error) {
	if s.Ledger == nil {
		return ledger.New(), nil
	}
	return s.Ledger, nil
}

// Save records the ledger and counts the write.
func (s *MemStore) Save(l *ledger.Ledger) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Ledger = l
	s.Saves++
	return nil
}
