package equipment

import (
	"context"
	"time"

	"academiasport/internal/metrics"
)

type Service interface {
	// List returns all equipment, or one category when category is non-empty.
	List(ctx context.Context, category string) ([]Equipment, error)
	Get(ctx context.Context, id string) (*Equipment, error)
	Create(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
	// Reserve holds the equipment for userID until one hour from now.
	Reserve(ctx context.Context, id, userID string) (*Equipment, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context, category string) ([]Equipment, error) {
	if category == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *service) Get(ctx context.Context, id string) (*Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	return s.repo.Create(ctx, Equipment{
		Name:     req.Name,
		Category: req.Category,
		Status:   req.Status,
	})
}

func (s *service) Reserve(ctx context.Context, id, userID string) (*Equipment, error) {
	e, err := s.repo.Reserve(ctx, id, Reservation{
		UserID: userID,
		Until:  s.now().Add(ReservationWindow),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEquipmentReservation(e.Category)
	return e, nil
}
