package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := NewSession("alice", "tok", time.Hour)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, time.Hour, s.ExpiresAt.Sub(s.CreatedAt))
	assert.False(t, s.Expired(s.CreatedAt))
	assert.True(t, s.Expired(s.ExpiresAt))
}

func TestAccessTokenContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, AccessTokenFrom(ctx))

	ctx = WithAccessToken(ctx, "abc")
	assert.Equal(t, "abc", AccessTokenFrom(ctx))
}
