package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session binds a dashboard login to the backend access token.
type Session struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func NewSession(username, accessToken string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New(),
		Username:    username,
		AccessToken: accessToken,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

type accessTokenKey struct{}

// WithAccessToken attaches the backend bearer token to ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessTokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(accessTokenKey{}).(string)
	return tok
}

type requestIDKey struct{}

// WithRequestID attaches the inbound request id so outbound calls can carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
