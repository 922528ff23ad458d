package plan

import "context"

type Service interface {
	List(ctx context.Context) ([]Plan, error)
	Get(ctx context.Context, id string) (*Plan, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Plan, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Plan, error) {
	return s.repo.GetByID(ctx, id)
}
