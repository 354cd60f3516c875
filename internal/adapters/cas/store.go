// Package cas implements the build step result store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ResultStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.StepRecord
}

// NewStore creates a new ResultStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.StepRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read result store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal result store")
	}
	return nil
}

// save writes the cache to disk. The caller holds s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal result store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for result store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write result store")
	}
	return nil
}

// Get retrieves the last record of a step.
func (s *Store) Get(stepID string) (*domain.StepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[stepID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores rec, replacing the previous record of the step.
func (s *Store) Put(rec domain.StepRecord) error {
	if rec.StepID == "" {
		return zerr.New("step record without step id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[rec.StepID] = rec
	return s.save()
}

// ArgvDigest returns a stable digest of a command line. Arguments are
// NUL-separated so that ["a b"] and ["a", "b"] differ.
func ArgvDigest(argv []string) string {
	if argv == nil {
		return ""
	}
	d := xxhash.New()
	for _, arg := range argv {
		_, _ = d.WriteString(arg)
		_, _ = d.Write([]byte{0})
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
