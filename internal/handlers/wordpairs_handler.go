package handlers

import (
	"net/http"
	"strconv"

	"hearingheroes/internal/models"
	"hearingheroes/internal/wordpairs"
)

// WordPairsHandler serves the discrimination word-pair content
type WordPairsHandler struct {
	provider *wordpairs.Provider
}

// NewWordPairsHandler creates a new word-pairs handler
func NewWordPairsHandler(provider *wordpairs.Provider) *WordPairsHandler {
	return &WordPairsHandler{provider: provider}
}

// List returns the full content document, optionally filtered by level or
// contrast type
func (h *WordPairsHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil || level < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid level", "", nil)
			return
		}
		pairs, err := h.provider.ByLevel(level)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load word pairs", "Error loading word pairs", err)
			return
		}
		respondJSON(w, http.StatusOK, pairs)
		return
	}

	if raw := r.URL.Query().Get("contrastType"); raw != "" {
		ct := models.ContrastType(raw)
		if !ct.Valid() {
			respondWithError(w, http.StatusBadRequest, "Unknown contrast type", "", nil)
			return
		}
		pairs, err := h.provider.ByContrast(ct)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load word pairs", "Error loading word pairs", err)
			return
		}
		respondJSON(w, http.StatusOK, pairs)
		return
	}

	data, err := h.provider.Load(false)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load word pairs", "Error loading word pairs", err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// Get returns one word pair by ID
func (h *WordPairsHandler) Get(w http.ResponseWriter, r *http.Request) {
	pair, err := h.provider.ByID(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load word pair", "Error loading word pair", err)
		return
	}
	if pair == nil {
		respondWithError(w, http.StatusNotFound, "Word pair not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, pair)
}
