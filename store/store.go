// Package store reads the three authored JSON documents (pools, results,
// entries) from a data directory. Files are decoded lazily and cached until
// their mtime changes, so admins can drop in a new file without a restart.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/174hz/duelkings/models"
)

// Entries document shapes seen in authored data. The shape is declared in
// configuration, never sniffed from the file.
const (
	// EntriesKeyed is a map from pool id to a list of {user, picks}.
	EntriesKeyed = "keyed"
	// EntriesInline is a flat list of entries each carrying poolId.
	EntriesInline = "inline"
)

const (
	PoolsFile   = "pools.json"
	ResultsFile = "results.json"
	EntriesFile = "entries.json"
)

// Store serves parsed copies of the data directory's documents. Safe for
// concurrent use by handlers.
type Store struct {
	dir          string
	entriesShape string

	mu      sync.RWMutex
	pools   cached[models.PoolsDocument]
	results cached[models.ResultsDocument]
	entries cached[[]models.Entry]
}

type cached[T any] struct {
	mtime time.Time
	value T
}

// New creates a Store over dir. entriesShape must be EntriesKeyed or
// EntriesInline.
func New(dir, entriesShape string) *Store {
	return &Store{dir: dir, entriesShape: entriesShape}
}

// Pools returns the parsed pools document. The pool slice is a fresh copy
// each call: handlers stamp evaluated statuses onto it and must not reach
// the cache.
func (s *Store) Pools() (models.PoolsDocument, error) {
	doc, err := load(s, PoolsFile, &s.pools, func(data []byte) (models.PoolsDocument, error) {
		var doc models.PoolsDocument
		err := json.Unmarshal(data, &doc)
		return doc, err
	})
	if err != nil {
		return models.PoolsDocument{}, err
	}
	doc.Pools = append([]models.Pool(nil), doc.Pools...)
	return doc, nil
}

// Results returns the parsed results document.
func (s *Store) Results() (models.ResultsDocument, error) {
	return load(s, ResultsFile, &s.results, func(data []byte) (models.ResultsDocument, error) {
		var doc models.ResultsDocument
		err := json.Unmarshal(data, &doc)
		return doc, err
	})
}

// PoolResults returns the results map for one pool. A pool with no results
// yet yields an empty (nil) map, which grades every game as not yet played.
func (s *Store) PoolResults(poolID string) (models.PoolResults, error) {
	doc, err := s.Results()
	if err != nil {
		return nil, err
	}
	return doc[poolID], nil
}

// Entries returns the submitted entries for one pool in file order,
// normalized to the canonical shape regardless of how the file is keyed.
func (s *Store) Entries(poolID string) ([]models.Entry, error) {
	all, err := load(s, EntriesFile, &s.entries, s.decodeEntries)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(all))
	for _, e := range all {
		if e.PoolID == poolID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// decodeEntries parses the entries file per the configured shape into the
// canonical form: every entry carries its pool id inline.
func (s *Store) decodeEntries(data []byte) ([]models.Entry, error) {
	switch s.entriesShape {
	case EntriesInline:
		var entries []models.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		return entries, nil

	case EntriesKeyed:
		var byPool map[string][]models.Entry
		if err := json.Unmarshal(data, &byPool); err != nil {
			return nil, err
		}
		// Keyed files carry no poolId field, so stamp it on. Iterate
		// pools in sorted-key order to keep the result deterministic;
		// within a pool, file order is preserved.
		keys := make([]string, 0, len(byPool))
		for k := range byPool {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var entries []models.Entry
		for _, poolID := range keys {
			for _, e := range byPool[poolID] {
				e.PoolID = poolID
				entries = append(entries, e)
			}
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("unknown entries shape %q", s.entriesShape)
	}
}

// load returns the cached value for name, re-reading the file when its mtime
// has moved since the last decode.
func load[T any](s *Store, name string, slot *cached[T], decode func([]byte) (T, error)) (T, error) {
	path := filepath.Join(s.dir, name)

	info, err := os.Stat(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("stat %s: %w", name, err)
	}

	s.mu.RLock()
	if !slot.mtime.IsZero() && !info.ModTime().After(slot.mtime) {
		value := slot.value
		s.mu.RUnlock()
		return value, nil
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read %s: %w", name, err)
	}

	value, err := decode(data)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", name, err)
	}

	s.mu.Lock()
	slot.mtime = info.ModTime()
	slot.value = value
	s.mu.Unlock()

	return value, nil
}
