package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitriev/memora/internal/client/config"
	"github.com/ndmitriev/memora/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(&config.Config{ServerBaseURL: srv.URL, RequestTimeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestExchangeSession_SendsIDAndKeepsCookie(t *testing.T) {
	var sawCookieOnMe bool

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/session":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "one-time", body["session_id"])

			http.SetCookie(w, &http.Cookie{Name: common.SessionCookieName, Value: "tok", Path: "/"})
			json.NewEncoder(w).Encode(Identity{User: &UserProfile{ID: "u1", Email: "a@b.c"}})
		case "/api/auth/me":
			if cookie, err := r.Cookie(common.SessionCookieName); err == nil && cookie.Value == "tok" {
				sawCookieOnMe = true
			}
			json.NewEncoder(w).Encode(Identity{User: &UserProfile{ID: "u1"}, NeedsAppLock: true})
		}
	})

	id, err := c.ExchangeSession(context.Background(), "one-time")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", id.User.Email)

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, sawCookieOnMe)
	assert.True(t, me.NeedsAppLock)
}

func TestMe_Unauthenticated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "not authenticated"})
	})

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewHTTPClient(&config.Config{ServerBaseURL: srv.URL, RequestTimeout: time.Second})
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	assert.ErrorIs(t, err, common.ErrServerUnavailable)
}

func TestVerifyAppLock_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   error
	}{
		{name: "mismatch", detail: "invalid passcode", want: common.ErrAppLockMismatch},
		{name: "no lock", detail: "no app lock set", want: common.ErrNoAppLock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
			})

			err := c.VerifyAppLock(context.Background(), "1234")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListWebsites_Search(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/websites", r.URL.Path)
		assert.Equal(t, "bank", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode([]*Website{{ID: "w1", Name: "Bank"}})
	})

	sites, err := c.ListWebsites(context.Background(), "bank")
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "Bank", sites[0].Name)
}

func TestUpdateWebsite_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
	})

	_, err := c.UpdateWebsite(context.Background(), &Website{ID: "other"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreateAttachment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/n1/attachments", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"attachment": Attachment{ID: "att1", Filename: "r.pdf"},
			"upload_url": "https://s3/put",
		})
	})

	att, uploadURL, err := c.CreateAttachment(context.Background(), "n1", "r.pdf")
	require.NoError(t, err)
	assert.Equal(t, "att1", att.ID)
	assert.Equal(t, "https://s3/put", uploadURL)
}

func TestLoginURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"login_url": "https://auth/login"})
	})

	u, err := c.LoginURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://auth/login", u)
}
