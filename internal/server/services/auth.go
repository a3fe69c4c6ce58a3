// Package services contains server-side business logic. This file implements
// AuthService: session-credential exchange with the identity broker, session
// token issuance and validation, logout, and app-lock management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ndmitriev/memora/internal/common"
	"github.com/ndmitriev/memora/internal/dbx"
	"github.com/ndmitriev/memora/internal/server/auth"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/identity"
	"github.com/ndmitriev/memora/internal/server/models"
	"github.com/ndmitriev/memora/internal/server/repositories/repomanager"
)

// AuthService provides authentication-related operations:
//   - ExchangeSession: redeem a one-time broker credential and open a session
//   - Authenticate: resolve a session token to a user
//   - Logout: revoke a session token
//   - SetAppLock / VerifyAppLock / RemoveAppLock: passcode management
type AuthService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	broker                  identity.Client
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories, the identity
// broker client, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, broker identity.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                      db,
		repomanager:             m,
		broker:                  broker,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// ExchangeSession redeems the one-time session_id at the broker, creates the
// user on first sign-in, and opens a session. The returned token goes into
// the session_token cookie.
func (s *AuthService) ExchangeSession(ctx context.Context, sessionID string) (*models.User, string, error) {
	profile, err := s.broker.SessionData(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", fmt.Errorf("session exchange failed: %w", err)
	}

	var user *models.User
	var token string

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := s.repomanager.Users(tx)

		user, err = userRepo.GetByEmail(ctx, profile.Email)
		if errors.Is(err, common.ErrorNotFound) {
			user, err = userRepo.Create(ctx, &models.User{
				Email:   profile.Email,
				Name:    profile.Name,
				Picture: profile.Picture,
			})
		}
		if err != nil {
			return fmt.Errorf("error resolving user: %w", err)
		}

		token, err = auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidityDuration)
		if err != nil {
			return common.ErrorInternal
		}

		return s.repomanager.Sessions(tx).Create(ctx, user.ID, token, s.sessionValidityDuration)
	})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a session token to its user. The token must carry a
// valid signature, reference a live session row, and not be expired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrSessionExpired
	}
	if session.UserID != userID {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Logout revokes the session token. Revoking an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.repomanager.Sessions(s.db).DeleteByToken(ctx, token)
}

// SetAppLock hashes the passcode with bcrypt and stores it. Setting a new
// passcode over an existing one is allowed.
func (s *AuthService) SetAppLock(ctx context.Context, userID string, passcode string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}
	return s.repomanager.Users(s.db).SetAppLockHash(ctx, userID, string(hash))
}

// VerifyAppLock compares the passcode against the stored hash.
func (s *AuthService) VerifyAppLock(ctx context.Context, userID string, passcode string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return common.ErrorInternal
	}
	if !user.HasAppLock() {
		return common.ErrNoAppLock
	}
	if bcrypt.CompareHashAndPassword([]byte(user.AppLockHash), []byte(passcode)) != nil {
		return common.ErrAppLockMismatch
	}
	return nil
}

// RemoveAppLock verifies the passcode and clears the stored hash.
func (s *AuthService) RemoveAppLock(ctx context.Context, userID string, passcode string) error {
	if err := s.VerifyAppLock(ctx, userID, passcode); err != nil {
		return err
	}
	return s.repomanager.Users(s.db).SetAppLockHash(ctx, userID, "")
}
