package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore using Redis SET NX. Relay nonces are
// scoped per signer address, so independent users never collide.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "relay:nonce:",
	}
}

// CheckAndSet atomically marks a nonce as seen for the given signer.
// Returns true if the nonce is fresh, false if it was already used.
func (s *NonceStore) CheckAndSet(ctx context.Context, user string, nonce uint64, ttl time.Duration) (bool, error) {
	key := s.prefix + strings.ToLower(user) + ":" + strconv.FormatUint(nonce, 10)
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, nonce was already used
			return false, nil
		}
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return result == "OK", nil
}

// Release forgets a recorded nonce so the same authorization can be retried
// after a submission that never reached the chain.
func (s *NonceStore) Release(ctx context.Context, user string, nonce uint64) error {
	key := s.prefix + strings.ToLower(user) + ":" + strconv.FormatUint(nonce, 10)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis nonce release: %w", err)
	}
	return nil
}
