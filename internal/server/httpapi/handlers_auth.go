package httpapi

import (
	"net/http"

	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/server/models"
)

type identityResponse struct {
	User         *models.User `json:"user"`
	NeedsAppLock bool         `json:"needs_app_lock"`
}

type exchangeRequest struct {
	SessionID string `json:"session_id"`
}

type passcodeRequest struct {
	Passcode string `json:"password"`
}

// exchangeSession redeems the one-time broker credential, opens a session,
// and sets the session cookie.
func (h *Handler) exchangeSession(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "session_id is required"})
		return
	}

	user, token, err := h.auth.ExchangeSession(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Warn(r.Context(), "session exchange rejected", "error", err.Error())
		writeError(w, err)
		return
	}

	// SameSite=None because the browser client runs on a different origin.
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionValidity.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, identityResponse{User: user, NeedsAppLock: user.HasAppLock()})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	writeJSON(w, http.StatusOK, identityResponse{User: user, NeedsAppLock: user.HasAppLock()})
}

// logout is best effort: the session row is deleted when a credential is
// presented, the cookie is always cleared, and the response is 200 even for
// unknown or already-revoked tokens.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if err := h.auth.Logout(r.Context(), token); err != nil {
			h.logger.Warn(r.Context(), "session revocation failed", "error", err.Error())
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) setAppLock(w http.ResponseWriter, r *http.Request) {
	var req passcodeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Passcode) < 4 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "passcode must be at least 4 characters"})
		return
	}

	user := userFromContext(r.Context())
	if err := h.auth.SetAppLock(r.Context(), user.ID, req.Passcode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "app lock set"})
}

func (h *Handler) verifyAppLock(w http.ResponseWriter, r *http.Request) {
	var req passcodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	if err := h.auth.VerifyAppLock(r.Context(), user.ID, req.Passcode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "verified"})
}

func (h *Handler) removeAppLock(w http.ResponseWriter, r *http.Request) {
	var req passcodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	if err := h.auth.RemoveAppLock(r.Context(), user.ID, req.Passcode); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "app lock removed"})
}
