package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks revoked token ids in redis. A jti stays on the list until the
// token's own expiry, after which the entry is dropped automatically.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func revokedKey(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}

// Revoke ends the session for the given token id. Revoking an already revoked
// token is a no-op, which makes logout idempotent.
func (s *Store) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
