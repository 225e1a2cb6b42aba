package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

const googleRevokeURL = "https://oauth2.googleapis.com/revoke"

// defaultTokenLifetime applies when the provider omits expires_in.
const defaultTokenLifetime = time.Hour

type GoogleOAuth struct {
	cfg       *oauth2.Config
	revokeURL string
	client    *http.Client
	now       func() time.Time
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	return &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarEventsScope},
		},
		revokeURL: googleRevokeURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		now:       time.Now,
	}
}

func (o *GoogleOAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (o *GoogleOAuth) Exchange(ctx context.Context, code string) (*domain.Credential, error) {
	tok, err := o.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchange code: %w", domain.ErrIntegration, err)
	}

	return o.credential(tok), nil
}

func (o *GoogleOAuth) Refresh(ctx context.Context, refreshToken string) (*domain.Credential, error) {
	tok, err := o.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenRefresh, err)
	}

	return o.credential(tok), nil
}

func (o *GoogleOAuth) Revoke(ctx context.Context, token string) error {
	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: revoke: %w", domain.ErrIntegration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: revoke: status %d: %s", domain.ErrIntegration, resp.StatusCode, body)
	}

	return nil
}

func (o *GoogleOAuth) credential(tok *oauth2.Token) *domain.Credential {
	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = o.now().Add(defaultTokenLifetime)
	}

	return &domain.Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       expiry,
	}
}
