package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenNS = ns + ":admin:token"

func keyToken(token string) string {
	return tokenNS + ":" + token
}

// TokenStore keeps issued admin bearer tokens with a TTL, so sessions
// survive restarts and expire without bookkeeping. Implements
// auth.TokenStore.
type TokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenStore(rdb *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, ttl: ttl}
}

func (s *TokenStore) Issue(ctx context.Context) (string, error) {
	token := randomHex(32)

	if err := s.rdb.Set(ctx, keyToken(token), "1", s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *TokenStore) Validate(ctx context.Context, token string) (bool, error) {
	_, err := s.rdb.Get(ctx, keyToken(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyToken(token)).Err()
}
