package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndmitriev/memora/internal/cryptox"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/models"
	"github.com/ndmitriev/memora/internal/server/repositories/repomanager"
)

// EntryService implements CRUD over the three record types. Website and app
// passwords are encrypted before they reach the repository and decrypted on
// the way out, so plaintext secrets never touch the database.
type EntryService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	encryptionKey []byte
}

// NewEntryService constructs an EntryService. The encryption key comes from
// server config and must already be validated by cryptox.ParseKey.
func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*EntryService, error) {
	key, err := cryptox.ParseKey(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("entry service: %w", err)
	}
	return &EntryService{db: db, repomanager: m, encryptionKey: key}, nil
}

// --- websites ---

func (s *EntryService) CreateWebsite(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	if err := s.sealWebsite(entry); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Websites(s.db).Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	return created, s.openWebsite(created)
}

func (s *EntryService) ListWebsites(ctx context.Context, userID string, search string) ([]*models.WebsiteEntry, error) {
	entries, err := s.repomanager.Websites(s.db).List(ctx, userID, search)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := s.openWebsite(entry); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (s *EntryService) UpdateWebsite(ctx context.Context, entry *models.WebsiteEntry) (*models.WebsiteEntry, error) {
	if err := s.sealWebsite(entry); err != nil {
		return nil, err
	}
	updated, err := s.repomanager.Websites(s.db).Update(ctx, entry)
	if err != nil {
		return nil, err
	}
	return updated, s.openWebsite(updated)
}

func (s *EntryService) DeleteWebsite(ctx context.Context, id, userID string) error {
	return s.repomanager.Websites(s.db).Delete(ctx, id, userID)
}

func (s *EntryService) sealWebsite(entry *models.WebsiteEntry) error {
	cipher, nonce, err := s.seal(entry.Password)
	if err != nil {
		return err
	}
	entry.PasswordCipher, entry.PasswordNonce = cipher, nonce
	return nil
}

func (s *EntryService) openWebsite(entry *models.WebsiteEntry) error {
	plaintext, err := s.open(entry.PasswordCipher, entry.PasswordNonce)
	if err != nil {
		return err
	}
	entry.Password = plaintext
	entry.PasswordCipher, entry.PasswordNonce = nil, nil
	return nil
}

// --- apps ---

func (s *EntryService) CreateApp(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error) {
	if err := s.sealApp(entry); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Apps(s.db).Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	return created, s.openApp(created)
}

func (s *EntryService) ListApps(ctx context.Context, userID string, search string) ([]*models.AppEntry, error) {
	entries, err := s.repomanager.Apps(s.db).List(ctx, userID, search)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if err := s.openApp(entry); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (s *EntryService) UpdateApp(ctx context.Context, entry *models.AppEntry) (*models.AppEntry, error) {
	if err := s.sealApp(entry); err != nil {
		return nil, err
	}
	updated, err := s.repomanager.Apps(s.db).Update(ctx, entry)
	if err != nil {
		return nil, err
	}
	return updated, s.openApp(updated)
}

func (s *EntryService) DeleteApp(ctx context.Context, id, userID string) error {
	return s.repomanager.Apps(s.db).Delete(ctx, id, userID)
}

func (s *EntryService) sealApp(entry *models.AppEntry) error {
	cipher, nonce, err := s.seal(entry.Password)
	if err != nil {
		return err
	}
	entry.PasswordCipher, entry.PasswordNonce = cipher, nonce
	return nil
}

func (s *EntryService) openApp(entry *models.AppEntry) error {
	plaintext, err := s.open(entry.PasswordCipher, entry.PasswordNonce)
	if err != nil {
		return err
	}
	entry.Password = plaintext
	entry.PasswordCipher, entry.PasswordNonce = nil, nil
	return nil
}

// --- notes ---

func (s *EntryService) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	return s.repomanager.Notes(s.db).Create(ctx, note)
}

func (s *EntryService) ListNotes(ctx context.Context, userID string, search string) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx, userID, search)
}

func (s *EntryService) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	return s.repomanager.Notes(s.db).Update(ctx, note)
}

func (s *EntryService) DeleteNote(ctx context.Context, id, userID string) error {
	return s.repomanager.Notes(s.db).Delete(ctx, id, userID)
}

// --- field crypto helpers ---

// seal encrypts a password field. Empty passwords stay empty: nil cipher and
// nonce mean "no secret stored".
func (s *EntryService) seal(password string) (cipher, nonce []byte, err error) {
	if password == "" {
		return nil, nil, nil
	}
	return cryptox.EncryptString(password, s.encryptionKey)
}

func (s *EntryService) open(cipher, nonce []byte) (string, error) {
	if len(cipher) == 0 {
		return "", nil
	}
	return cryptox.DecryptString(cipher, nonce, s.encryptionKey)
}
