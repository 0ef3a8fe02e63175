package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"release-management-service/internal/core/domain"
	output "release-management-service/internal/core/ports/output"
)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS dashboard_session (
		id           UUID PRIMARY KEY,
		username     TEXT NOT NULL,
		access_token TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		expires_at   TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_dashboard_session_expires_at ON dashboard_session (expires_at);
`

type sessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(pool *pgxpool.Pool) output.SessionRepository {
	return &sessionRepo{pool: pool}
}

// EnsureSchema creates the session table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("ensure session schema: %w", err)
	}
	return nil
}

func (r *sessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO dashboard_session (id, username, access_token, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, s.ID, s.Username, s.AccessToken, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, username, access_token, created_at, expires_at
		FROM dashboard_session
		WHERE id = $1
	`

	var s domain.Session
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Username, &s.AccessToken, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM dashboard_session WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM dashboard_session WHERE expires_at <= $1`

	result, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return result.RowsAffected(), nil
}

var _ output.SessionRepository = (*sessionRepo)(nil)
