package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestOAuth(t *testing.T, h http.HandlerFunc) *GoogleOAuth {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	o := NewGoogleOAuth("client-id", "client-secret", "https://bewell.example/api/calendar/callback")
	o.cfg.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	o.revokeURL = srv.URL + "/revoke"
	o.client = srv.Client()
	return o
}

func writeToken(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	o := NewGoogleOAuth("client-id", "secret", "https://bewell.example/cb")

	u, err := url.Parse(o.AuthCodeURL("st1"))

	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "st1", q.Get("state"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Contains(t, q.Get("scope"), "calendar.events")
}

func TestGoogleOAuth_Exchange(t *testing.T) {
	o := newTestOAuth(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "code1", r.Form.Get("code"))
		writeToken(w, map[string]any{
			"access_token": "a1", "refresh_token": "r1", "token_type": "Bearer", "expires_in": 3600,
		})
	})

	cred, err := o.Exchange(context.Background(), "code1")

	require.NoError(t, err)
	assert.Equal(t, "a1", cred.AccessToken)
	assert.Equal(t, "r1", cred.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), cred.Expiry, time.Minute)
}

func TestGoogleOAuth_Refresh(t *testing.T) {
	o := newTestOAuth(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "r1", r.Form.Get("refresh_token"))
		writeToken(w, map[string]any{"access_token": "a2", "token_type": "Bearer", "expires_in": 3600})
	})

	cred, err := o.Refresh(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "a2", cred.AccessToken)
}

func TestGoogleOAuth_Refresh_Rejected(t *testing.T) {
	o := newTestOAuth(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	_, err := o.Refresh(context.Background(), "revoked")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenRefresh)
}

func TestGoogleOAuth_Revoke(t *testing.T) {
	o := newTestOAuth(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/revoke", r.URL.Path)
		assert.Equal(t, "r1", r.Form.Get("token"))
	})

	require.NoError(t, o.Revoke(context.Background(), "r1"))
}

func TestGoogleOAuth_Revoke_Failure(t *testing.T) {
	o := newTestOAuth(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := o.Revoke(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegration)
}
