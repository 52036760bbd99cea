// Package store persists the full case collection as a single JSON
// document. There is no incremental API: every mutation rewrites the
// whole file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"caselog/internal/record"
)

// Store reads and writes the case document at a fixed path.
type Store struct {
	path string
}

// New returns a Store bound to path. The file need not exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the entire document. A missing file is a valid initial
// state and yields an empty collection; a malformed document is an
// error with no repair attempted.
func (s *Store) Load() ([]record.Case, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []record.Case{}, nil
		}
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var cases []record.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", s.path, err)
	}
	return cases, nil
}

// Save serializes the full collection with human-readable indentation
// and replaces the document. The write goes to a temp file in the same
// directory first so a failure mid-write cannot truncate existing data.
func (s *Store) Save(cases []record.Case) error {
	if cases == nil {
		cases = []record.Case{}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cases: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cases-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write cases: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace case file: %w", err)
	}
	return nil
}
