// Package api implements the REST client the Memora terminal app talks to
// the server with. Session state rides on the session cookie held in the
// client's cookie jar.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/ndmitriev/memora/internal/client/config"
	"github.com/ndmitriev/memora/internal/common"
)

// Client is the server-facing surface the UI layers depend on.
type Client interface {
	LoginURL(ctx context.Context) (string, error)
	ExchangeSession(ctx context.Context, sessionID string) (*Identity, error)
	Me(ctx context.Context) (*Identity, error)
	Logout(ctx context.Context) error
	SetAppLock(ctx context.Context, passcode string) error
	VerifyAppLock(ctx context.Context, passcode string) error
	RemoveAppLock(ctx context.Context, passcode string) error

	ListWebsites(ctx context.Context, search string) ([]*Website, error)
	CreateWebsite(ctx context.Context, w *Website) (*Website, error)
	UpdateWebsite(ctx context.Context, w *Website) (*Website, error)
	DeleteWebsite(ctx context.Context, id string) error

	ListApps(ctx context.Context, search string) ([]*App, error)
	CreateApp(ctx context.Context, a *App) (*App, error)
	UpdateApp(ctx context.Context, a *App) (*App, error)
	DeleteApp(ctx context.Context, id string) error

	ListNotes(ctx context.Context, search string) ([]*Note, error)
	CreateNote(ctx context.Context, n *Note) (*Note, error)
	UpdateNote(ctx context.Context, n *Note) (*Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListAttachments(ctx context.Context, noteID string) ([]*Attachment, error)
	CreateAttachment(ctx context.Context, noteID, filename string) (*Attachment, string, error)
	AttachmentURL(ctx context.Context, noteID, storageKey string) (string, error)
}

// HTTPClient talks JSON over HTTP to the Memora server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(cfg *config.Config) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: cfg.ServerBaseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.RequestTimeout,
		},
	}, nil
}

type errorPayload struct {
	Detail string `json:"detail"`
}

// do sends a JSON request and decodes the JSON response into out (when out
// is non-nil). Transport failures map to ErrServerUnavailable, HTTP error
// statuses to the shared sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func statusError(resp *http.Response) error {
	var payload errorPayload
	json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		switch payload.Detail {
		case "no app lock set":
			return common.ErrNoAppLock
		case "invalid passcode":
			return common.ErrAppLockMismatch
		}
		return fmt.Errorf("request rejected: %s", payload.Detail)
	}
	return fmt.Errorf("server error: status %d", resp.StatusCode)
}

// --- auth ---

func (c *HTTPClient) LoginURL(ctx context.Context) (string, error) {
	var out struct {
		LoginURL string `json:"login_url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/login-url", nil, &out); err != nil {
		return "", err
	}
	return out.LoginURL, nil
}

func (c *HTTPClient) ExchangeSession(ctx context.Context, sessionID string) (*Identity, error) {
	var out Identity
	err := c.do(ctx, http.MethodPost, "/api/auth/session", map[string]string{"session_id": sessionID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *HTTPClient) SetAppLock(ctx context.Context, passcode string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/set-app-lock", map[string]string{"password": passcode}, nil)
}

func (c *HTTPClient) VerifyAppLock(ctx context.Context, passcode string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/verify-app-lock", map[string]string{"password": passcode}, nil)
}

func (c *HTTPClient) RemoveAppLock(ctx context.Context, passcode string) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/remove-app-lock", map[string]string{"password": passcode}, nil)
}

// --- websites ---

func (c *HTTPClient) ListWebsites(ctx context.Context, search string) ([]*Website, error) {
	var out []*Website
	if err := c.do(ctx, http.MethodGet, "/api/websites"+searchQuery(search), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateWebsite(ctx context.Context, w *Website) (*Website, error) {
	var out Website
	if err := c.do(ctx, http.MethodPost, "/api/websites", w, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateWebsite(ctx context.Context, w *Website) (*Website, error) {
	var out Website
	if err := c.do(ctx, http.MethodPut, "/api/websites/"+w.ID, w, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteWebsite(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/websites/"+id, nil, nil)
}

// --- apps ---

func (c *HTTPClient) ListApps(ctx context.Context, search string) ([]*App, error) {
	var out []*App
	if err := c.do(ctx, http.MethodGet, "/api/apps"+searchQuery(search), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateApp(ctx context.Context, a *App) (*App, error) {
	var out App
	if err := c.do(ctx, http.MethodPost, "/api/apps", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateApp(ctx context.Context, a *App) (*App, error) {
	var out App
	if err := c.do(ctx, http.MethodPut, "/api/apps/"+a.ID, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteApp(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/apps/"+id, nil, nil)
}

// --- notes ---

func (c *HTTPClient) ListNotes(ctx context.Context, search string) ([]*Note, error) {
	var out []*Note
	if err := c.do(ctx, http.MethodGet, "/api/notes"+searchQuery(search), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, n *Note) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, n *Note) (*Note, error) {
	var out Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+n.ID, n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

// --- attachments ---

func (c *HTTPClient) ListAttachments(ctx context.Context, noteID string) ([]*Attachment, error) {
	var out []*Attachment
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+noteID+"/attachments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateAttachment(ctx context.Context, noteID, filename string) (*Attachment, string, error) {
	var out struct {
		Attachment *Attachment `json:"attachment"`
		UploadURL  string      `json:"upload_url"`
	}
	err := c.do(ctx, http.MethodPost, "/api/notes/"+noteID+"/attachments", map[string]string{"filename": filename}, &out)
	if err != nil {
		return nil, "", err
	}
	return out.Attachment, out.UploadURL, nil
}

func (c *HTTPClient) AttachmentURL(ctx context.Context, noteID, storageKey string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	q := url.Values{"key": {storageKey}}
	err := c.do(ctx, http.MethodGet, "/api/notes/"+noteID+"/attachments/url?"+q.Encode(), nil, &out)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

func searchQuery(search string) string {
	if search == "" {
		return ""
	}
	return "?" + url.Values{"search": {search}}.Encode()
}

var _ Client = (*HTTPClient)(nil)
