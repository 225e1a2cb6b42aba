package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type CalendarAuthService struct {
	credentials *CredentialService
	provider    ports.OAuthProvider
	states      ports.OAuthStateStore
	logger      logger.Logger
}

func NewCalendarAuthService(
	credentials *CredentialService,
	provider ports.OAuthProvider,
	states ports.OAuthStateStore,
	logger logger.Logger,
) *CalendarAuthService {
	return &CalendarAuthService{
		credentials: credentials,
		provider:    provider,
		states:      states,
		logger:      logger,
	}
}

// Connect returns the usable access token when there is one, otherwise the
// consent URL the user must visit.
func (s *CalendarAuthService) Connect(ctx context.Context, userID string) (*domain.CalendarAuth, error) {
	token, err := s.credentials.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}
	if token != "" {
		return &domain.CalendarAuth{AccessToken: token}, nil
	}

	state := uuid.New().String()
	if err = s.states.Save(ctx, state, userID); err != nil {
		return nil, fmt.Errorf("save oauth state: %w", err)
	}

	return &domain.CalendarAuth{URL: s.provider.AuthCodeURL(state)}, nil
}

func (s *CalendarAuthService) Callback(ctx context.Context, code, state string) error {
	if code == "" || state == "" {
		return fmt.Errorf("%w: code and state are required", domain.ErrValidation)
	}

	userID, err := s.states.Consume(ctx, state)
	if err != nil {
		return fmt.Errorf("resolve oauth state: %w", err)
	}

	cred, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	cred.UserID = userID

	if err = s.credentials.Set(ctx, cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	s.logger.Info("calendar connected", logger.String("user_id", userID))

	return nil
}

func (s *CalendarAuthService) Disconnect(ctx context.Context, userID string) error {
	cred, err := s.credentials.Get(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrCredentialNotFound):
		return fmt.Errorf("get credential: %w", err)
	case err != nil:
		// Nothing to revoke with; the row still goes.
		s.logger.Warn("calendar credential unreadable, deleting without revoke",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	default:
		s.revoke(ctx, cred)
	}

	if err = s.credentials.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	s.logger.Info("calendar disconnected", logger.String("user_id", userID))

	return nil
}

func (s *CalendarAuthService) revoke(ctx context.Context, cred *domain.Credential) {
	token := cred.RefreshToken
	if token == "" {
		token = cred.AccessToken
	}
	if err := s.provider.Revoke(ctx, token); err != nil {
		s.logger.Warn("failed to revoke calendar token",
			logger.String("user_id", cred.UserID),
			logger.String("error", err.Error()),
		)
	}
}
