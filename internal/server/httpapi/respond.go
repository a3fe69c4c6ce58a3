package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ndmitriev/memora/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError maps domain sentinels to HTTP statuses. Anything unrecognized
// becomes a 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "not found"})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "not authenticated"})
	case errors.Is(err, common.ErrSessionExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Detail: "session expired"})
	case errors.Is(err, common.ErrNoAppLock):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "no app lock set"})
	case errors.Is(err, common.ErrAppLockMismatch):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid passcode"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
		return false
	}
	return true
}
