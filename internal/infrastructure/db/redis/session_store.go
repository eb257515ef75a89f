package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
	tokenBytes        = 32
)

// SessionStore implements the session manager over Redis. A session lives at
// session:<token> holding the owning account id; key expiry is the TTL, and
// revocation deletes the key. A token is therefore Active exactly while its
// key exists, and there is no transition back once it is gone.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. If ttl <= 0 the default of 24h
// is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Issue generates an opaque 256-bit token and binds it to accountID.
func (s *SessionStore) Issue(ctx context.Context, accountID string) (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.client.Set(ctx, s.key(token), accountID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve maps a token back to its account id. Unknown, revoked, and expired
// tokens are indistinguishable: all yield domain.ErrUnauthenticated.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return accountID, nil
}

// Revoke invalidates the token. Deleting an absent key is not an error.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
