package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/dimitrije/places-api/internal/models"
)

const (
	// Snapshots older than this are removed by the retention sweep.
	retentionDays = 14

	// SweepInterval is how often the periodic retention sweep runs.
	SweepInterval = 24 * time.Hour
)

var (
	ErrBackupNotFound = errors.New("backup not found")
	ErrBackupCorrupt  = errors.New("backup is not valid JSON")
)

// BackupManager maintains a directory of immutable snapshots of the live
// document, each capturing the state immediately before some save.
type BackupManager struct {
	dataPath string
	dir      string
	now      func() time.Time
	log      zerolog.Logger
}

func NewBackupManager(dataPath, dir string, logger zerolog.Logger) *BackupManager {
	return &BackupManager{
		dataPath: dataPath,
		dir:      dir,
		now:      time.Now,
		log:      logger,
	}
}

// Create snapshots the current on-disk document and then sweeps old
// snapshots. A missing live document (first-ever save) is a no-op. Errors
// are logged and swallowed: durability of the current state outranks backup
// completeness, so a failed snapshot must never abort the enclosing save.
func (m *BackupManager) Create() {
	data, err := os.ReadFile(m.dataPath)
	if err != nil {
		if !os.IsNotExist(err) {
			m.log.Error().Err(err).Msg("backup: reading live document failed")
		}
		return
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		m.log.Error().Err(err).Msg("backup: creating backup directory failed")
		return
	}

	name := BackupFilename(m.now())
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0o644); err != nil {
		m.log.Error().Err(err).Str("backup", name).Msg("backup: writing snapshot failed")
		return
	}
	m.log.Info().Str("backup", name).Msg("backup created")

	if _, err := m.Cleanup(); err != nil {
		m.log.Error().Err(err).Msg("backup: retention sweep failed")
	}
}

// Cleanup deletes snapshots whose modification time is older than the
// retention window and returns how many were removed. A missing backup
// directory means there is nothing to sweep.
func (m *BackupManager) Cleanup() (int, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := m.now().Add(-retentionDays * 24 * time.Hour)
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() || !IsBackupFilename(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, entry.Name())); err != nil {
			m.log.Error().Err(err).Str("backup", entry.Name()).Msg("backup: removing old snapshot failed")
			continue
		}
		m.log.Info().Str("backup", entry.Name()).Msg("old backup removed")
		deleted++
	}

	if deleted > 0 {
		m.log.Info().Int("deleted", deleted).Msg("retention sweep finished")
	}
	return deleted, nil
}

// List returns snapshot metadata, newest first. The creation instant is
// decoded from the filename; files whose names do not decode fall back to
// their modification time.
func (m *BackupManager) List() ([]models.Backup, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Backup{}, nil
		}
		return nil, err
	}

	backups := make([]models.Backup, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsBackupFilename(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		created, err := backupTimestamp(entry.Name())
		if err != nil {
			created = info.ModTime()
		}
		backups = append(backups, models.Backup{
			Filename:  entry.Name(),
			Size:      info.Size(),
			CreatedAt: created,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Content reads and parses one snapshot.
func (m *BackupManager) Content(filename string) (models.PlacesDocument, error) {
	var doc models.PlacesDocument
	if !IsBackupFilename(filename) {
		return doc, ErrBackupNotFound
	}

	data, err := os.ReadFile(filepath.Join(m.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return doc, ErrBackupNotFound
		}
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %s", ErrBackupCorrupt, filename)
	}
	return doc, nil
}

// Restore overwrites the live document with the named snapshot's content and
// returns it. The current live document is snapshotted first, so the restore
// itself is undoable.
func (m *BackupManager) Restore(filename string) (models.PlacesDocument, error) {
	doc, err := m.Content(filename)
	if err != nil {
		return doc, err
	}

	m.Create()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(m.dataPath, data, 0o644); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	m.log.Info().Str("backup", filename).Msg("restored from backup")
	return doc, nil
}

// Delete removes one snapshot.
func (m *BackupManager) Delete(filename string) error {
	if !IsBackupFilename(filename) {
		return ErrBackupNotFound
	}
	if err := os.Remove(filepath.Join(m.dir, filename)); err != nil {
		if os.IsNotExist(err) {
			return ErrBackupNotFound
		}
		return err
	}
	m.log.Info().Str("backup", filename).Msg("backup deleted")
	return nil
}
