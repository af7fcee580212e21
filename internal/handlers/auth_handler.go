package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hearingheroes/internal/security"
	"hearingheroes/internal/service"
)

// AuthHandler handles parent PIN login and logout
type AuthHandler struct {
	preferences *service.PreferencesService
	tokens      *security.TokenIssuer
	profileID   string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(preferences *service.PreferencesService, tokens *security.TokenIssuer, profileID string) *AuthHandler {
	return &AuthHandler{
		preferences: preferences,
		tokens:      tokens,
		profileID:   profileID,
	}
}

type pinRequest struct {
	PIN string `json:"pin"`
}

// Login verifies the parent PIN and sets a token cookie on success
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := h.preferences.VerifyParentPIN(h.profileID, req.PIN); err != nil {
		if errors.Is(err, service.ErrInvalidPIN) {
			respondWithError(w, http.StatusUnauthorized, "Incorrect PIN", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to verify PIN", "Error verifying PIN", err)
		return
	}

	token, err := h.tokens.Issue(h.profileID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", "Error issuing token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ParentTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.Duration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Logout clears the parent token cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     ParentTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetPIN stores a new parent PIN. Requires an authenticated parent when a
// PIN is already set, enforced by middleware on the route.
func (h *AuthHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}

	if err := h.preferences.SetParentPIN(h.profileID, req.PIN); err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to set PIN", "Error setting PIN", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
