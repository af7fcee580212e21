package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hearingheroes/internal/models"
	"hearingheroes/internal/service"
)

// PracticeHandler handles session lifecycle and practice recording requests
type PracticeHandler struct {
	metrics *service.MetricsService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(metrics *service.MetricsService) *PracticeHandler {
	return &PracticeHandler{metrics: metrics}
}

type startSessionRequest struct {
	DifficultyLevel int  `json:"difficultyLevel"`
	Restore         bool `json:"restore"`
}

// StartSession begins a new practice session. With restore set, an already
// active session is reused instead of being replaced.
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if req.DifficultyLevel < 1 {
		req.DifficultyLevel = 1
	}

	var sessionID string
	var err error
	if req.Restore {
		sessionID, err = h.metrics.RestoreSession(req.DifficultyLevel)
	} else {
		sessionID, err = h.metrics.StartSession(req.DifficultyLevel)
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to start session", "Error starting session", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"sessionId": sessionID})
}

// EndSession ends the active session. Ending when no session is active is
// not an error; the response simply has no session.
func (h *PracticeHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.metrics.EndSession()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to end session", "Error ending session", err)
		return
	}
	if session == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"session": nil})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"session": session})
}

// CurrentSession returns the active session, or null when none is active
func (h *PracticeHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"session": h.metrics.GetCurrentSession()})
}

type recordPracticeRequest struct {
	WordPair       models.WordPair `json:"wordPair"`
	SelectedWord   string          `json:"selectedWord"`
	TargetWord     string          `json:"targetWord"`
	ResponseTimeMs int             `json:"responseTimeMs"`
}

// RecordPractice records one discrimination attempt against the active
// session. Without an active session the request is rejected with 409.
func (h *PracticeHandler) RecordPractice(w http.ResponseWriter, r *http.Request) {
	var req recordPracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	result, err := h.metrics.RecordPractice(service.PracticeInput{
		WordPair:       req.WordPair,
		SelectedWord:   req.SelectedWord,
		TargetWord:     req.TargetWord,
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			respondWithError(w, http.StatusConflict, "No active session", "", nil)
			return
		}
		// The result may have been stored even though session counters
		// failed to update.
		respondWithError(w, http.StatusInternalServerError, "Failed to record practice", "Error recording practice", err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
