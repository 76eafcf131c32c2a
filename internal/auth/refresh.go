package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenTTL = 30 * 24 * time.Hour

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshStore keeps opaque refresh tokens in redis, keyed by token with
// the owning username as value. Expiry is handled by the key TTL.
type RefreshStore struct {
	rdb *redis.Client
}

func NewRefreshStore(rdb *redis.Client) *RefreshStore {
	return &RefreshStore{rdb: rdb}
}

// Issue creates and stores a new refresh token for the user.
func (s *RefreshStore) Issue(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, refreshKey(token), username, refreshTokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

// Redeem consumes a refresh token and returns the username it was issued
// for. A token can be redeemed only once.
func (s *RefreshStore) Redeem(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.GetDel(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to redeem refresh token: %w", err)
	}
	return username, nil
}

func refreshKey(token string) string {
	return "refresh:" + token
}
