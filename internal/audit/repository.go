package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(ctx context.Context, attempt LoginAttempt) (*LoginAttempt, error) {
	attempt.ID = uuid.NewString()

	query := `
		INSERT INTO login_attempts (id, email, attempted_at, success, user_agent, ip)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		attempt.ID, attempt.Email, attempt.Timestamp, attempt.Success, attempt.UserAgent, attempt.IP)
	if err != nil {
		return nil, fmt.Errorf("record login attempt: %w", err)
	}
	return &attempt, nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]LoginAttempt, error) {
	query := `
		SELECT id, email, attempted_at, success, user_agent, ip
		FROM login_attempts
		ORDER BY attempted_at DESC
		LIMIT $1
	`

	attempts := []LoginAttempt{}
	if err := r.db.SelectContext(ctx, &attempts, query, limit); err != nil {
		return nil, fmt.Errorf("list login attempts: %w", err)
	}
	return attempts, nil
}
