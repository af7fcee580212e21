package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"hearingheroes/internal/security"
	"hearingheroes/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ProfileContextKey carries the authenticated parent's profile ID
const ProfileContextKey ContextKey = "profile"

// ParentTokenCookie is the cookie holding the parent dashboard token
const ParentTokenCookie = "parent_token"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	preferences *service.PreferencesService
	tokens      *security.TokenIssuer
	profileID   string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(preferences *service.PreferencesService, tokens *security.TokenIssuer, profileID string) *Middleware {
	return &Middleware{
		preferences: preferences,
		tokens:      tokens,
		profileID:   profileID,
	}
}

// RequireParent gates the parent dashboard. When the profile has parent auth
// disabled the request passes straight through; otherwise a valid token
// cookie is required.
func (m *Middleware) RequireParent(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := m.preferences.Load(m.profileID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load preferences", "Error loading preferences", err)
			return
		}

		if !prefs.RequireParentAuth {
			ctx := context.WithValue(r.Context(), ProfileContextKey, m.profileID)
			next(w, r.WithContext(ctx))
			return
		}

		cookie, err := r.Cookie(ParentTokenCookie)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Parent authentication required", "", nil)
			return
		}

		profileID, err := m.tokens.Validate(cookie.Value)
		if err != nil {
			// Clear invalid cookie
			http.SetCookie(w, &http.Cookie{
				Name:     ParentTokenCookie,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})
			respondWithError(w, http.StatusUnauthorized, "Parent authentication required", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ProfileContextKey, profileID)
		next(w, r.WithContext(ctx))
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetProfileFromContext retrieves the authenticated profile ID, or ""
func GetProfileFromContext(ctx context.Context) string {
	profileID, ok := ctx.Value(ProfileContextKey).(string)
	if !ok {
		return ""
	}
	return profileID
}
