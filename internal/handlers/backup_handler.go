package handlers

import (
	"fmt"
	"net/http"
	"time"

	"hearingheroes/internal/service"
)

// BackupHandler serves full data backups over HTTP
type BackupHandler struct {
	backups *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Download streams a complete JSON backup
func (h *BackupHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("hearingheroes-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := h.backups.ExportToWriter(w); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export backup", "Error exporting backup", err)
	}
}

// Upload restores data from an uploaded JSON backup
func (h *BackupHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := h.backups.ImportFromReader(r.Body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to import backup", "Error importing backup", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}
