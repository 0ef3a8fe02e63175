// Package memory holds in-process adapters used when no database is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"release-management-service/internal/core/domain"
	output "release-management-service/internal/core/ports/output"
)

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.Session
}

// NewSessionRepository creates a SessionRepository that lives for the process lifetime.
func NewSessionRepository() output.SessionRepository {
	return &sessionRepo{sessions: make(map[uuid.UUID]domain.Session)}
}

func (r *sessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *sessionRepo) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *sessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

var _ output.SessionRepository = (*sessionRepo)(nil)
