// Package identity talks to the external OAuth broker. The browser completes
// the provider flow against the broker directly; the server only redeems the
// resulting one-time session_id for the user's profile.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ndmitriev/memora/internal/common"
)

// Profile is the subset of broker session data the server keeps.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Client redeems one-time session credentials at the broker.
type Client interface {
	SessionData(ctx context.Context, sessionID string) (*Profile, error)
}

// HTTPClient is the production Client over plain HTTP.
type HTTPClient struct {
	url   string
	httpc *http.Client
}

// NewHTTPClient constructs a client for the broker's session-data endpoint.
func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{url: url, httpc: &http.Client{}}
}

// SessionData redeems sessionID. The broker invalidates the credential on
// first use, so a second call with the same ID fails. Any non-200 response is
// reported as ErrorUnauthorized: an expired, replayed, or forged session_id
// is indistinguishable to us.
func (c *HTTPClient) SessionData(ctx context.Context, sessionID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity broker request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.ErrorUnauthorized
	}

	profile := &Profile{}
	if err := json.NewDecoder(resp.Body).Decode(profile); err != nil {
		return nil, fmt.Errorf("invalid identity broker response: %w", err)
	}
	return profile, nil
}
