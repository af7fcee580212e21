package handlers

import (
	"encoding/json"
	"net/http"

	"hearingheroes/internal/models"
	"hearingheroes/internal/service"
)

// PreferencesHandler serves child profile settings
type PreferencesHandler struct {
	preferences *service.PreferencesService
	profileID   string
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferences *service.PreferencesService, profileID string) *PreferencesHandler {
	return &PreferencesHandler{
		preferences: preferences,
		profileID:   profileID,
	}
}

// Get returns the current preferences, creating defaults on first use
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences.Load(h.profileID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load preferences", "Error loading preferences", err)
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// Update replaces the stored preferences. The profile ID and parent PIN are
// not settable through this endpoint.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	prefs.ID = h.profileID
	if err := h.preferences.Save(&prefs); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save preferences", "Error saving preferences", err)
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// Reset restores default preferences for the profile
func (h *PreferencesHandler) Reset(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences.Reset(h.profileID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset preferences", "Error resetting preferences", err)
		return
	}
	respondJSON(w, http.StatusOK, prefs)
}

// ClearPracticeData deletes all practice results and sessions
func (h *PreferencesHandler) ClearPracticeData(w http.ResponseWriter, r *http.Request) {
	if err := h.preferences.ClearPracticeData(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to clear practice data", "Error clearing practice data", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// ResetAllData deletes everything: results, sessions and preferences
func (h *PreferencesHandler) ResetAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.preferences.ResetAllData(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset data", "Error resetting data", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
