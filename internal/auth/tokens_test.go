package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore_IssueValidate(t *testing.T) {
	s := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	token, err := s.Issue(ctx)
	require.NoError(t, err)
	assert.Len(t, token, 64)

	ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(ctx, "not-a-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTokenStore_Revoke(t *testing.T) {
	s := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	token, err := s.Issue(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, token))

	ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	s := NewMemoryTokenStore(time.Minute)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return current }

	token, err := s.Issue(ctx)
	require.NoError(t, err)

	ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)

	ok, err = s.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok, "expired token must not validate")

	// lazy expiry drops the entry
	s.mu.Lock()
	_, held := s.tokens[token]
	s.mu.Unlock()
	assert.False(t, held)
}

func TestMemoryTokenStore_TokensAreUnique(t *testing.T) {
	s := NewMemoryTokenStore(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := s.Issue(ctx)
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
