// Package session owns the client's view of "who is signed in and is the
// app unlocked". A single Manager resolves the session once per process
// start and is afterwards the only writer of session state; UI code reads
// snapshots and calls the enumerated operations.
package session

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/ndmitriev/memora/internal/client/api"
	"github.com/ndmitriev/memora/internal/logging"
)

var (
	ErrPasscodeTooShort = errors.New("passcode must be at least 4 characters")
	ErrPasscodeMismatch = errors.New("passcodes do not match")
)

const minPasscodeLength = 4

// fragmentParam is the one-time credential parameter the identity broker
// appends to the post-login redirect URL.
const fragmentParam = "session_id"

// State is a snapshot of the session.
//
// Invariant: IsAppLocked is true only when NeedsAppLock is true. While
// Loading is true, User is not authoritative.
type State struct {
	User         *api.UserProfile
	NeedsAppLock bool
	IsAppLocked  bool
	Loading      bool
}

// API is the slice of the server client the Manager needs.
type API interface {
	LoginURL(ctx context.Context) (string, error)
	ExchangeSession(ctx context.Context, sessionID string) (*api.Identity, error)
	Me(ctx context.Context) (*api.Identity, error)
	Logout(ctx context.Context) error
	SetAppLock(ctx context.Context, passcode string) error
	VerifyAppLock(ctx context.Context, passcode string) error
	RemoveAppLock(ctx context.Context, passcode string) error
}

// Navigator abstracts the navigation surface the Manager touches: the URL
// fragment left by the sign-in redirect, and outbound redirects to the
// identity broker.
type Navigator interface {
	// Origin returns the address the broker should send the user back to.
	Origin() string

	// Fragment returns the current URL fragment without the leading '#'.
	Fragment() string

	// ReplaceFragment swaps the fragment without creating a history entry.
	ReplaceFragment(fragment string)

	// Redirect navigates away from the app.
	Redirect(url string)
}

// Manager resolves and mutates the session. Not safe for concurrent use;
// the UI drives it from a single goroutine.
type Manager struct {
	api    API
	nav    Navigator
	logger logging.Logger

	state    State
	resolved bool
}

func NewManager(apiClient API, nav Navigator, logger logging.Logger) *Manager {
	return &Manager{
		api:    apiClient,
		nav:    nav,
		logger: logger,
		state:  State{Loading: true},
	}
}

// State returns a snapshot of the current session.
func (m *Manager) State() State { return m.state }

// Screen returns the render state for the current session.
func (m *Manager) Screen() Screen { return DeriveScreen(m.state) }

// Resolve establishes the session exactly once. If the navigation fragment
// carries a one-time credential it is consumed and stripped before the
// exchange, so a refresh can never replay it. Otherwise the ambient cookie
// session is checked. Failures are silent: the session stays signed out and
// Loading still drops to false.
func (m *Manager) Resolve(ctx context.Context) {
	if m.resolved {
		return
	}
	m.resolved = true
	defer func() { m.state.Loading = false }()

	var (
		identity *api.Identity
		err      error
	)

	if token, ok := extractSessionID(m.nav.Fragment()); ok {
		m.nav.ReplaceFragment("")
		identity, err = m.api.ExchangeSession(ctx, token)
	} else {
		identity, err = m.api.Me(ctx)
	}

	if err != nil {
		m.logger.Debug(ctx, "session resolution failed", "error", err.Error())
		return
	}

	m.state.User = identity.User
	m.state.NeedsAppLock = identity.NeedsAppLock
	// a passcode-protected account always starts locked on a fresh load
	m.state.IsAppLocked = identity.NeedsAppLock
}

// extractSessionID pulls the one-time credential out of a URL fragment such
// as "session_id=abc123&foo=bar". The value runs to the next '&' or the end
// of the fragment.
func extractSessionID(fragment string) (string, bool) {
	for _, part := range strings.Split(fragment, "&") {
		if v, ok := strings.CutPrefix(part, fragmentParam+"="); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Login sends the user to the identity broker, passing the current origin
// as the post-login redirect target.
func (m *Manager) Login(ctx context.Context) error {
	loginURL, err := m.api.LoginURL(ctx)
	if err != nil {
		return err
	}
	m.nav.Redirect(loginURL + "?redirect=" + url.QueryEscape(m.nav.Origin()))
	return nil
}

// Logout asks the server to invalidate the session and clears local state
// regardless of the outcome. Remote invalidation is best effort.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.logger.Warn(ctx, "remote logout failed", "error", err.Error())
	}
	m.state.User = nil
	m.state.NeedsAppLock = false
	m.state.IsAppLocked = false
}

// ValidatePasscode runs the local checks for setting a passcode. No network
// traffic happens when validation fails.
func ValidatePasscode(passcode, confirmation string) error {
	if len(passcode) < minPasscodeLength {
		return ErrPasscodeTooShort
	}
	if passcode != confirmation {
		return ErrPasscodeMismatch
	}
	return nil
}

// SetAppLock validates locally, then configures the passcode on the server.
// On success the app is immediately locked behind the new passcode.
func (m *Manager) SetAppLock(ctx context.Context, passcode, confirmation string) error {
	if err := ValidatePasscode(passcode, confirmation); err != nil {
		return err
	}
	if err := m.api.SetAppLock(ctx, passcode); err != nil {
		return err
	}
	m.state.NeedsAppLock = true
	m.state.IsAppLocked = true
	return nil
}

// VerifyAppLock unlocks the app when the passcode matches. On failure the
// session is unchanged.
func (m *Manager) VerifyAppLock(ctx context.Context, passcode string) error {
	if err := m.api.VerifyAppLock(ctx, passcode); err != nil {
		return err
	}
	m.state.IsAppLocked = false
	return nil
}

// RemoveAppLock drops the passcode after verifying it.
func (m *Manager) RemoveAppLock(ctx context.Context, passcode string) error {
	if err := m.api.RemoveAppLock(ctx, passcode); err != nil {
		return err
	}
	m.state.NeedsAppLock = false
	m.state.IsAppLocked = false
	return nil
}
