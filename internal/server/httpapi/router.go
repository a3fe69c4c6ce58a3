package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the full route table under /api.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/ping", h.ping).Methods(http.MethodGet)

	api.HandleFunc("/auth/login-url", h.loginURLHandler).Methods(http.MethodGet)
	api.HandleFunc("/auth/session", h.exchangeSession).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.requireAuth(h.me)).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/set-app-lock", h.requireAuth(h.setAppLock)).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify-app-lock", h.requireAuth(h.verifyAppLock)).Methods(http.MethodPost)
	api.HandleFunc("/auth/remove-app-lock", h.requireAuth(h.removeAppLock)).Methods(http.MethodDelete)

	api.HandleFunc("/websites", h.requireAuth(h.listWebsites)).Methods(http.MethodGet)
	api.HandleFunc("/websites", h.requireAuth(h.createWebsite)).Methods(http.MethodPost)
	api.HandleFunc("/websites/{id}", h.requireAuth(h.updateWebsite)).Methods(http.MethodPut)
	api.HandleFunc("/websites/{id}", h.requireAuth(h.deleteWebsite)).Methods(http.MethodDelete)

	api.HandleFunc("/apps", h.requireAuth(h.listApps)).Methods(http.MethodGet)
	api.HandleFunc("/apps", h.requireAuth(h.createApp)).Methods(http.MethodPost)
	api.HandleFunc("/apps/{id}", h.requireAuth(h.updateApp)).Methods(http.MethodPut)
	api.HandleFunc("/apps/{id}", h.requireAuth(h.deleteApp)).Methods(http.MethodDelete)

	api.HandleFunc("/notes", h.requireAuth(h.listNotes)).Methods(http.MethodGet)
	api.HandleFunc("/notes", h.requireAuth(h.createNote)).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}", h.requireAuth(h.updateNote)).Methods(http.MethodPut)
	api.HandleFunc("/notes/{id}", h.requireAuth(h.deleteNote)).Methods(http.MethodDelete)

	api.HandleFunc("/notes/{id}/attachments", h.requireAuth(h.listAttachments)).Methods(http.MethodGet)
	api.HandleFunc("/notes/{id}/attachments", h.requireAuth(h.createAttachment)).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}/attachments/url", h.requireAuth(h.attachmentURL)).Methods(http.MethodGet)

	return h.withLogging(r)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loginURLHandler tells clients where to send the user for sign-in.
func (h *Handler) loginURLHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"login_url": h.loginURL})
}
