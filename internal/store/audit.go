package store

import (
	"context"
	"time"

	"academiasport/internal/audit"
)

type auditRepository struct {
	s *Store
}

func NewAuditRepository(s *Store) audit.Repository {
	return &auditRepository{s: s}
}

func (r *auditRepository) Record(_ context.Context, attempt audit.LoginAttempt) (*audit.LoginAttempt, error) {
	defer r.s.lock()()

	stored := r.s.loginAttempts.Create(func(id string) audit.LoginAttempt {
		attempt.ID = id
		return attempt
	})
	return &stored, nil
}

func (r *auditRepository) Recent(_ context.Context, limit int) ([]audit.LoginAttempt, error) {
	defer r.s.lock()()

	attempts := r.s.loginAttempts.All()
	newestFirst(attempts, func(a audit.LoginAttempt) time.Time { return a.Timestamp })

	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}
