package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CredentialService is the only writer of stored calendar credentials.
type CredentialService struct {
	repo     ports.CredentialRepo
	provider ports.OAuthProvider
	logger   logger.Logger
	now      func() time.Time
}

func NewCredentialService(repo ports.CredentialRepo, provider ports.OAuthProvider, logger logger.Logger) *CredentialService {
	return &CredentialService{
		repo:     repo,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *CredentialService) Get(ctx context.Context, userID string) (*domain.Credential, error) {
	return s.repo.Get(ctx, userID)
}

func (s *CredentialService) Set(ctx context.Context, c *domain.Credential) error {
	if c.UserID == "" || c.AccessToken == "" {
		return fmt.Errorf("%w: credential requires user id and access token", domain.ErrValidation)
	}

	return s.repo.Upsert(ctx, c)
}

func (s *CredentialService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

// GetValidAccessToken returns "" with a nil error when the user has no
// usable credential, including when a refresh was attempted and failed.
func (s *CredentialService) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	cred, err := s.load(ctx, userID)
	if err != nil || cred == nil {
		return "", err
	}

	if !cred.Expired(s.now()) {
		return cred.AccessToken, nil
	}

	return s.refresh(ctx, cred)
}

// ForceRefresh refreshes regardless of the stored expiry; used after the
// provider rejected a token it should have accepted.
func (s *CredentialService) ForceRefresh(ctx context.Context, userID string) (string, error) {
	cred, err := s.load(ctx, userID)
	if err != nil || cred == nil {
		return "", err
	}

	return s.refresh(ctx, cred)
}

// load returns nil without error when the user has no usable credential.
// A stored credential that cannot be opened is dropped.
func (s *CredentialService) load(ctx context.Context, userID string) (*domain.Credential, error) {
	cred, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		return cred, nil
	case errors.Is(err, domain.ErrCredentialNotFound):
		return nil, nil
	case errors.Is(err, domain.ErrCredentialUnreadable):
		s.drop(ctx, userID, err)
		return nil, nil
	default:
		return nil, fmt.Errorf("get credential: %w", err)
	}
}

func (s *CredentialService) refresh(ctx context.Context, cred *domain.Credential) (string, error) {
	if cred.RefreshToken == "" {
		s.drop(ctx, cred.UserID, fmt.Errorf("%w: no refresh token stored", domain.ErrTokenRefresh))
		return "", nil
	}

	fresh, err := s.provider.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		s.drop(ctx, cred.UserID, fmt.Errorf("%w: %w", domain.ErrTokenRefresh, err))
		return "", nil
	}

	fresh.UserID = cred.UserID
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = cred.RefreshToken
	}

	if err = s.repo.Upsert(ctx, fresh); err != nil {
		return "", fmt.Errorf("store refreshed credential: %w", err)
	}

	s.logger.Debug("calendar credential refreshed",
		logger.String("user_id", cred.UserID),
		logger.Any("expiry", fresh.Expiry),
	)

	return fresh.AccessToken, nil
}

func (s *CredentialService) drop(ctx context.Context, userID string, cause error) {
	s.logger.Warn("calendar credential unusable, removing",
		logger.String("user_id", userID),
		logger.String("error", cause.Error()),
	)

	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error("failed to delete calendar credential",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}
