package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore checks access tokens against the session keys the auth service keeps in Redis.
// Logging out deletes the key, which revokes the token before it expires.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, AccessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check access token: %w", err)
	}
	return exists > 0, nil
}

func AccessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}
