package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"release-management-service/internal/core/domain"
)

// SessionRepository stores dashboard login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
