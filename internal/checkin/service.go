package checkin

import (
	"context"
	"errors"
	"time"

	"academiasport/internal/metrics"
)

var (
	ErrAlreadyCheckedIn = errors.New("user is already checked in")
	ErrCheckinNotFound  = errors.New("checkin not found")
)

type Service interface {
	CheckIn(ctx context.Context, userID string) (*Checkin, error)
	CheckOut(ctx context.Context, id string) (*Checkin, error)
	ListByUser(ctx context.Context, userID string) ([]Checkin, error)
	Active(ctx context.Context, userID string) (*Checkin, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CheckIn(ctx context.Context, userID string) (*Checkin, error) {
	c, err := s.repo.CheckIn(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckin()
	return c, nil
}

// CheckOut closes the visit. Closing an already closed visit recomputes its
// duration against the new checkout time.
func (s *service) CheckOut(ctx context.Context, id string) (*Checkin, error) {
	c, wasOpen, err := s.repo.CheckOut(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	if wasOpen && c.Duration != nil {
		metrics.RecordCheckout(*c.Duration)
	}
	return c, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Checkin, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Active(ctx context.Context, userID string) (*Checkin, error) {
	return s.repo.Active(ctx, userID)
}
