// Package cli implements the Memora terminal client: a REPL gated by the
// session screen state, with sub-screens for sign-in, the passcode
// challenge, and record management.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ndmitriev/memora/internal/client/api"
	"github.com/ndmitriev/memora/internal/client/config"
	"github.com/ndmitriev/memora/internal/client/session"
	"github.com/ndmitriev/memora/internal/logging"
)

type App struct {
	config  *config.Config
	api     api.Client
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	apiClient, err := api.NewHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	nav := NewTerminalNavigator(cfg.ServerBaseURL, cfg.RedirectURL, os.Stdout)

	return &App{
		config:  cfg,
		api:     apiClient,
		session: session.NewManager(apiClient, nav, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run resolves the session once, then drives the screen loop until the user
// quits. Sign-out is not terminal: it drops back to the signed-out screen.
func (a *App) Run(ctx context.Context) {
	a.session.Resolve(ctx)

	for {
		switch a.session.Screen() {
		case session.ScreenSignedOut:
			if done := a.signedOutScreen(ctx); done {
				return
			}
		case session.ScreenLocked:
			if done := a.lockScreen(ctx); done {
				return
			}
		case session.ScreenActive:
			if done := a.activeScreen(ctx); done {
				return
			}
		default:
			// Loading never persists past Resolve
			return
		}
	}
}

// signedOutScreen offers sign-in. Returns true when the user wants to exit.
func (a *App) signedOutScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Not signed in. Commands: login, exit")

	cmd, err := GetSimpleText(a.reader, "memora (signed out)", a.out)
	if err != nil {
		return true
	}

	switch cmd {
	case "login":
		if err := a.session.Login(ctx); err != nil {
			fmt.Fprintf(a.out, "sign-in unavailable: %s\n", err)
		}
		// the one-time credential arrives via a fresh run with -r
		return true
	case "exit", "quit":
		return true
	case "":
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}
