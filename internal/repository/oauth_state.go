package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/go-redis/redis/v8"
)

const oauthStatePrefix = "oauth_state:"

type OAuthStateStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOAuthStateStore(rdb *redis.Client, ttl time.Duration) *OAuthStateStore {
	return &OAuthStateStore{rdb: rdb, ttl: ttl}
}

func (s *OAuthStateStore) Save(ctx context.Context, state, userID string) error {
	if err := s.rdb.Set(ctx, oauthStatePrefix+state, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("save oauth state: %w", err)
	}

	return nil
}

func (s *OAuthStateStore) Consume(ctx context.Context, state string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidOAuthState
		}
		return "", fmt.Errorf("consume oauth state: %w", err)
	}

	return userID, nil
}
