// Package storage owns the live places document and its backup lifecycle.
// The document is one pretty-printed JSON file; every save snapshots the
// previous on-disk state into a timestamped backup first.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dimitrije/places-api/internal/models"
)

// ErrStorageUnavailable wraps I/O failures on the live document. These are
// surfaced to the caller and never retried.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store reads and writes the places document. Saves are serialized by a
// mutex: the original design had no writer coordination at all, which is a
// lost-update hazard under concurrent admin requests.
type Store struct {
	path    string
	backups *BackupManager
	mu      sync.Mutex
	log     zerolog.Logger
}

func NewStore(dataDir string, logger zerolog.Logger) *Store {
	path := filepath.Join(dataDir, "places.json")
	return &Store{
		path:    path,
		backups: NewBackupManager(path, filepath.Join(dataDir, "backup"), logger),
		log:     logger,
	}
}

// Backups exposes the snapshot manager bound to this store's document.
func (s *Store) Backups() *BackupManager {
	return s.backups
}

// Load reads the backing file, initializing it with an empty document on
// first access.
func (s *Store) Load() (models.PlacesDocument, error) {
	var doc models.PlacesDocument

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info().Str("path", s.path).Msg("data file not found, creating a new one")
			doc.Places = []models.Place{}
			if err := s.write(doc); err != nil {
				return doc, err
			}
			return doc, nil
		}
		return doc, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if doc.Places == nil {
		doc.Places = []models.Place{}
	}
	return doc, nil
}

// Save snapshots the previous on-disk state, then overwrites the backing
// file with doc. The snapshot attempt always completes (or fails silently)
// before the overwrite, so every overwrite has at most one corresponding
// pre-write backup.
func (s *Store) Save(doc models.PlacesDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backups.Create()
	return s.write(doc)
}

func (s *Store) write(doc models.PlacesDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
