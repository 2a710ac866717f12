package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/places-api/internal/storage"
	"github.com/dimitrije/places-api/pkg/dto"
)

type BackupHandler struct {
	backups *storage.BackupManager
}

func NewBackupHandler(backups *storage.BackupManager) *BackupHandler {
	return &BackupHandler{backups: backups}
}

func (h *BackupHandler) List(c *drift.Context) {
	backups, err := h.backups.List()
	if err != nil {
		c.InternalServerError("failed to list backups")
		return
	}
	_ = c.JSON(http.StatusOK, backups)
}

func (h *BackupHandler) Content(c *drift.Context) {
	doc, err := h.backups.Content(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			c.NotFound("backup not found")
			return
		}
		if errors.Is(err, storage.ErrBackupCorrupt) {
			c.InternalServerError("backup file is corrupt")
			return
		}
		c.InternalServerError("failed to read backup")
		return
	}
	_ = c.JSON(http.StatusOK, doc)
}

// Restore replaces the live document with the named snapshot; the
// pre-restore state is snapshotted first, so this returns the restored
// document with nothing lost.
func (h *BackupHandler) Restore(c *drift.Context) {
	doc, err := h.backups.Restore(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			c.NotFound("backup not found")
			return
		}
		if errors.Is(err, storage.ErrBackupCorrupt) {
			c.InternalServerError("backup file is corrupt")
			return
		}
		c.InternalServerError("failed to restore backup")
		return
	}
	_ = c.JSON(http.StatusOK, doc)
}

func (h *BackupHandler) Delete(c *drift.Context) {
	if err := h.backups.Delete(c.Param("filename")); err != nil {
		if errors.Is(err, storage.ErrBackupNotFound) {
			c.NotFound("backup not found")
			return
		}
		c.InternalServerError("failed to delete backup")
		return
	}
	_ = c.JSON(http.StatusOK, dto.DeleteBackupResponse{
		Success: true,
		Message: "backup deleted",
	})
}

// Cleanup triggers a retention sweep on demand.
func (h *BackupHandler) Cleanup(c *drift.Context) {
	deleted, err := h.backups.Cleanup()
	if err != nil {
		c.InternalServerError("failed to clean up backups")
		return
	}
	_ = c.JSON(http.StatusOK, dto.CleanupResponse{
		Success: true,
		Message: fmt.Sprintf("deleted %d old backups", deleted),
	})
}
