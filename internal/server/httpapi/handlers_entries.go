package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ndmitriev/memora/internal/server/models"
)

// --- websites ---

type websiteRequest struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Purpose  string `json:"purpose"`
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

func (h *Handler) listWebsites(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	entries, err := h.entries.ListWebsites(r.Context(), user.ID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []*models.WebsiteEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) createWebsite(w http.ResponseWriter, r *http.Request) {
	var req websiteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "name is required"})
		return
	}

	user := userFromContext(r.Context())
	created, err := h.entries.CreateWebsite(r.Context(), &models.WebsiteEntry{
		UserID:   user.ID,
		Name:     req.Name,
		Link:     req.Link,
		Purpose:  req.Purpose,
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) updateWebsite(w http.ResponseWriter, r *http.Request) {
	var req websiteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	updated, err := h.entries.UpdateWebsite(r.Context(), &models.WebsiteEntry{
		ID:       mux.Vars(r)["id"],
		UserID:   user.ID,
		Name:     req.Name,
		Link:     req.Link,
		Purpose:  req.Purpose,
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteWebsite(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if err := h.entries.DeleteWebsite(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// --- apps ---

type appRequest struct {
	AppName  string `json:"app_name"`
	Purpose  string `json:"purpose"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) listApps(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	entries, err := h.entries.ListApps(r.Context(), user.ID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []*models.AppEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) createApp(w http.ResponseWriter, r *http.Request) {
	var req appRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AppName == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "app_name is required"})
		return
	}

	user := userFromContext(r.Context())
	created, err := h.entries.CreateApp(r.Context(), &models.AppEntry{
		UserID:   user.ID,
		AppName:  req.AppName,
		Purpose:  req.Purpose,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) updateApp(w http.ResponseWriter, r *http.Request) {
	var req appRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	updated, err := h.entries.UpdateApp(r.Context(), &models.AppEntry{
		ID:       mux.Vars(r)["id"],
		UserID:   user.ID,
		AppName:  req.AppName,
		Purpose:  req.Purpose,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteApp(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if err := h.entries.DeleteApp(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// --- notes ---

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	notes, err := h.entries.ListNotes(r.Context(), user.ID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "title is required"})
		return
	}

	user := userFromContext(r.Context())
	created, err := h.entries.CreateNote(r.Context(), &models.Note{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	updated, err := h.entries.UpdateNote(r.Context(), &models.Note{
		ID:      mux.Vars(r)["id"],
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if err := h.entries.DeleteNote(r.Context(), mux.Vars(r)["id"], user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
