package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store persists independent state slices as one JSON snapshot file per key.
// Each slice is loaded once at startup and rewritten wholesale on every
// mutation. There is no cross-key transaction: two keys can fall out of sync
// if the process dies mid-write, which is an accepted limitation.
type Store struct {
	basePath string
}

// New creates a Store and ensures the base directory exists.
func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Save rewrites the snapshot for key with the given value.
func (s *Store) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

// Load reads the snapshot for key into v. When the snapshot is missing or
// corrupt, v is left untouched so callers pass their default in v; the
// failure is logged and never surfaced.
func (s *Store) Load(key string, v any) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: unable to read snapshot %q, using default: %v", key, err)
		}
		return
	}
	if !json.Valid(data) {
		log.Printf("store: discarding corrupt snapshot %q", key)
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store: unable to decode snapshot %q, using default: %v", key, err)
	}
}

// Exists reports whether a snapshot has been written for key.
func (s *Store) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return !os.IsNotExist(err)
}
