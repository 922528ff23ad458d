package audit

import (
	"context"
	"time"
)

type Service interface {
	RecordLogin(ctx context.Context, email string, success bool, userAgent, ip string) (*LoginAttempt, error)
	Recent(ctx context.Context) ([]LoginAttempt, error)
}

type service struct {
	repo  Repository
	limit int
	now   func() time.Time
}

// NewService returns an audit service whose Recent lists at most limit attempts.
func NewService(repo Repository, limit int) Service {
	return &service{
		repo:  repo,
		limit: limit,
		now:   time.Now,
	}
}

func (s *service) RecordLogin(ctx context.Context, email string, success bool, userAgent, ip string) (*LoginAttempt, error) {
	return s.repo.Record(ctx, LoginAttempt{
		Email:     email,
		Timestamp: s.now(),
		Success:   success,
		UserAgent: userAgent,
		IP:        ip,
	})
}

func (s *service) Recent(ctx context.Context) ([]LoginAttempt, error) {
	return s.repo.Recent(ctx, s.limit)
}
