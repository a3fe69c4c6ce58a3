package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ndmitriev/memora/internal/server/models"
)

type attachmentRequest struct {
	Filename string `json:"filename"`
}

type attachmentCreatedResponse struct {
	Attachment *models.Attachment `json:"attachment"`
	UploadURL  string             `json:"upload_url"`
}

func (h *Handler) listAttachments(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	atts, err := h.attachments.List(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if atts == nil {
		atts = []*models.Attachment{}
	}
	writeJSON(w, http.StatusOK, atts)
}

// createAttachment records attachment metadata and returns a presigned PUT
// URL; the client uploads the bytes directly to object storage.
func (h *Handler) createAttachment(w http.ResponseWriter, r *http.Request) {
	var req attachmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "filename is required"})
		return
	}

	user := userFromContext(r.Context())
	att, uploadURL, err := h.attachments.CreateUpload(r.Context(), user.ID, mux.Vars(r)["id"], req.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attachmentCreatedResponse{Attachment: att, UploadURL: uploadURL})
}

func (h *Handler) attachmentURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "key is required"})
		return
	}

	user := userFromContext(r.Context())
	url, err := h.attachments.DownloadURL(r.Context(), user.ID, mux.Vars(r)["id"], key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
