package ports

import (
	"context"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
)

type CredentialRepo interface {
	Get(ctx context.Context, userID string) (*domain.Credential, error)
	Upsert(ctx context.Context, c *domain.Credential) error
	Delete(ctx context.Context, userID string) error
}

// OAuthProvider speaks the provider's OAuth 2.0 endpoints. Returned
// credentials carry no UserID.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.Credential, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.Credential, error)
	Revoke(ctx context.Context, token string) error
}

type OAuthStateStore interface {
	Save(ctx context.Context, state, userID string) error
	// Consume returns the user bound to state and forgets it.
	Consume(ctx context.Context, state string) (string, error)
}
