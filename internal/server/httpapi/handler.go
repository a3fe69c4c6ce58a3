// Package httpapi exposes the REST surface of the server: session exchange
// with the identity broker, app-lock management, and CRUD over websites,
// apps, and notes.
package httpapi

import (
	"context"
	"time"

	"github.com/ndmitriev/memora/internal/logging"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/models"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	ExchangeSession(ctx context.Context, sessionID string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
	SetAppLock(ctx context.Context, userID string, passcode string) error
	VerifyAppLock(ctx context.Context, userID string, passcode string) error
	RemoveAppLock(ctx context.Context, userID string, passcode string) error
}

// EntryService covers CRUD over the three record types.
type EntryService interface {
	CreateWebsite(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error)
	ListWebsites(ctx context.Context, userID string, search string) ([]*models.WebsiteEntry, error)
	UpdateWebsite(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error)
	DeleteWebsite(ctx context.Context, id, userID string) error

	CreateApp(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error)
	ListApps(ctx context.Context, userID string, search string) ([]*models.AppEntry, error)
	UpdateApp(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error)
	DeleteApp(ctx context.Context, id, userID string) error

	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	ListNotes(ctx context.Context, userID string, search string) ([]*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	DeleteNote(ctx context.Context, id, userID string) error
}

// AttachmentService hands out presigned URLs for note attachments.
type AttachmentService interface {
	CreateUpload(ctx context.Context, userID, noteID, filename string) (*models.Attachment, string, error)
	List(ctx context.Context, userID, noteID string) ([]*models.Attachment, error)
	DownloadURL(ctx context.Context, userID, noteID, storageKey string) (string, error)
}

// Handler wires services into HTTP endpoints.
type Handler struct {
	auth        AuthService
	entries     EntryService
	attachments AttachmentService
	logger      logging.Logger

	loginURL        string
	sessionValidity time.Duration
}

func NewHandler(auth AuthService, entries EntryService, attachments AttachmentService, cfg *config.Config, logger logging.Logger) *Handler {
	return &Handler{
		auth:            auth,
		entries:         entries,
		attachments:     attachments,
		logger:          logger,
		loginURL:        cfg.AuthLoginURL,
		sessionValidity: cfg.SessionValidityDuration,
	}
}
