package schedule

import "context"

type Service interface {
	// List returns every class, or only those on date when it is non-empty.
	List(ctx context.Context, date string) ([]Class, error)
	Get(ctx context.Context, id string) (*Class, error)
	Create(ctx context.Context, req CreateClassRequest) (*Class, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, date string) ([]Class, error) {
	if date == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByDate(ctx, date)
}

func (s *service) Get(ctx context.Context, id string) (*Class, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*Class, error) {
	return s.repo.Create(ctx, Class{
		Name:            req.Name,
		Instructor:      req.Instructor,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Room:            req.Room,
		MaxParticipants: req.MaxParticipants,
		Date:            req.Date,
	})
}
