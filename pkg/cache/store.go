// Package cache persists small JSON snapshots between runs: the last
// weather reading and the last located position. It stores display data
// only; widget and engine state is never persisted. Each key is one file
// in the cache directory, written atomically via temp-file-then-rename.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store is a directory of snapshot files keyed by name.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory with
// 0755 permissions if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Put writes data under key atomically. Keys must be simple names; path
// separators are rejected.
func (s *Store) Put(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("cache: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cache: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: rename %q: %w", key, err)
	}
	return nil
}

// Get reads the data under key together with its write time. It reports a
// miss when the entry is absent, unreadable, or older than ttl. A ttl of
// zero means entries never expire.
func (s *Store) Get(key string, ttl time.Duration) ([]byte, time.Time, bool) {
	path, err := s.path(key)
	if err != nil {
		return nil, time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, false
	}
	written := info.ModTime()
	if ttl > 0 && time.Since(written) > ttl {
		return nil, time.Time{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, false
	}
	return data, written, true
}

// Delete removes the entry under key. Missing entries are not an error.
func (s *Store) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cache: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("cache: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
