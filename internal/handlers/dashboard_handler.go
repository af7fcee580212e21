package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hearingheroes/internal/models"
	"hearingheroes/internal/service"
)

// DashboardHandler serves the parent dashboard API: statistics, session
// history, exports and emailed reports.
type DashboardHandler struct {
	metrics     *service.MetricsService
	exports     *service.ExportService
	reports     *service.ReportService
	preferences *service.PreferencesService
	profileID   string
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(metrics *service.MetricsService, exports *service.ExportService, reports *service.ReportService, preferences *service.PreferencesService, profileID string) *DashboardHandler {
	return &DashboardHandler{
		metrics:     metrics,
		exports:     exports,
		reports:     reports,
		preferences: preferences,
		profileID:   profileID,
	}
}

// OverallStatistics returns the aggregate dashboard view
func (h *DashboardHandler) OverallStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.metrics.GetOverallStatistics()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load statistics", "Error loading statistics", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ContrastAccuracy returns accuracy for one contrast category
func (h *DashboardHandler) ContrastAccuracy(w http.ResponseWriter, r *http.Request) {
	ct := models.ContrastType(r.PathValue("contrastType"))
	if !ct.Valid() {
		respondWithError(w, http.StatusBadRequest, "Unknown contrast type", "", nil)
		return
	}

	accuracy, err := h.metrics.GetContrastAccuracy(ct)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load accuracy", "Error loading contrast accuracy", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"contrastType": ct,
		"accuracy":     accuracy,
	})
}

// RecentSessions returns the most recently completed sessions
func (h *DashboardHandler) RecentSessions(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", "", nil)
			return
		}
		limit = parsed
	}

	sessions, err := h.metrics.GetRecentSessions(limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load sessions", "Error loading recent sessions", err)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

// Session returns one session by ID with its practice results
func (h *DashboardHandler) Session(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	session, err := h.metrics.GetSession(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load session", "Error loading session", err)
		return
	}
	if session == nil {
		respondWithError(w, http.StatusNotFound, "Session not found", "", nil)
		return
	}

	results, err := h.metrics.GetPracticeResults(models.ResultQuery{SessionID: id})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load session results", "Error loading session results", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"results": results,
	})
}

// Results queries practice results with optional filters. At most one of
// sessionId, contrastType and level drives the lookup; date bounds, limit
// and offset narrow it further.
func (h *DashboardHandler) Results(w http.ResponseWriter, r *http.Request) {
	q := models.ResultQuery{
		SessionID:    r.URL.Query().Get("sessionId"),
		ContrastType: models.ContrastType(r.URL.Query().Get("contrastType")),
	}

	if raw := r.URL.Query().Get("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil || level < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid level", "", nil)
			return
		}
		q.DifficultyLevel = level
	}
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid startDate", "", nil)
			return
		}
		q.StartDate = &t
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid endDate", "", nil)
			return
		}
		q.EndDate = &t
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", "", nil)
			return
		}
		q.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid offset", "", nil)
			return
		}
		q.Offset = offset
	}

	results, err := h.metrics.GetPracticeResults(q)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load results", "Error querying results", err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// ExportSession serves one session as a CSV download. The CSV is built in
// memory first so a late failure still gets a clean error response.
func (h *DashboardHandler) ExportSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var buf bytes.Buffer
	if err := h.exports.WriteSessionReport(&buf, id); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export session", "Error exporting session", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=session-%s.csv", id))
	w.Write(buf.Bytes())
}

// ExportProgress serves overall statistics as a CSV download
func (h *DashboardHandler) ExportProgress(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.exports.WriteProgressReport(&buf); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to export report", "Error exporting report", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=progress-report.csv")
	w.Write(buf.Bytes())
}

type emailReportRequest struct {
	Email string `json:"email"`
}

// EmailReport sends the progress report to a parent's email address
func (h *DashboardHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Email address required", "", nil)
		return
	}

	if !h.reports.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Email reports are not configured", "", nil)
		return
	}

	prefs, err := h.preferences.Load(h.profileID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load preferences", "Error loading preferences", err)
		return
	}

	if err := h.reports.SendProgressReport(r.Context(), req.Email, prefs.ChildName); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report", "Error sending progress report", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
