package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veldwerk/backend/internal/auth"
)

// sessionMaxAge is seven days, matching the admin session lifetime.
const sessionMaxAge = 7 * 24 * 60 * 60

// AuthHandler serves the admin session endpoints.
type AuthHandler struct {
	gateway      *auth.Gateway
	secureCookie bool
}

// NewAuthHandler creates an AuthHandler. secureCookie should be true
// whenever the API is served over HTTPS.
func NewAuthHandler(gateway *auth.Gateway, secureCookie bool) *AuthHandler {
	return &AuthHandler{gateway: gateway, secureCookie: secureCookie}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.gateway.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, auth.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, "authentication not configured")
		default:
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	user := h.gateway.CurrentUser()
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.SignOut(r.Context()); err != nil && !errors.Is(err, auth.ErrNotConfigured) {
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me. It resolves the session cookie directly, so
// it works on any API instance regardless of which one issued the session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.gateway.Restore(r.Context(), cookie.Value); err != nil {
		writeError(w, http.StatusInternalServerError, "session lookup failed")
		return
	}
	user := h.gateway.CurrentUser()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
