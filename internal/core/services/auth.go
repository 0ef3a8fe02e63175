package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"release-management-service/internal/core/domain"
	ports "release-management-service/internal/core/ports/output"
)

// AuthService exchanges dashboard credentials for a backend token and keeps
// it behind an opaque session id. Without a session repository it is
// stateless and callers hold the backend token themselves.
type AuthService struct {
	client   ports.AuthClient
	sessions ports.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates the auth service. sessions may be nil.
func NewAuthService(client ports.AuthClient, sessions ports.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, domain.ErrCredentialsRequired
	}

	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(username, token, s.ttl)
	if s.Stateless() {
		return session, nil
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"username": username, "session_id": session.ID}).Info("user logged in")
	return session, nil
}

// Stateless reports whether logins hand out the backend token instead of a session id.
func (s *AuthService) Stateless() bool {
	return s.sessions == nil
}

// Resolve returns a live session. Expired sessions are removed.
func (s *AuthService) Resolve(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if s.Stateless() {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			log.WithError(err).WithField("session_id", id).Warn("failed to delete expired session")
		}
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, id uuid.UUID) error {
	if s.Stateless() {
		return nil
	}
	return s.sessions.Delete(ctx, id)
}

// CurrentUser asks the backend who owns the token carried by ctx.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.client.CurrentUser(ctx)
}

func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.Stateless() {
		return 0, nil
	}
	return s.sessions.DeleteExpired(ctx, s.now())
}
