package store

import (
	"context"

	"academiasport/internal/plan"
)

type planRepository struct {
	s *Store
}

func NewPlanRepository(s *Store) plan.Repository {
	return &planRepository{s: s}
}

func (r *planRepository) List(_ context.Context) ([]plan.Plan, error) {
	defer r.s.lock()()
	return r.s.plans.All(), nil
}

func (r *planRepository) GetByID(_ context.Context, id string) (*plan.Plan, error) {
	defer r.s.lock()()

	p, ok := r.s.plans.Get(id)
	if !ok {
		return nil, plan.ErrPlanNotFound
	}
	return &p, nil
}

func (r *planRepository) Seed(_ context.Context, plans []plan.Plan) error {
	defer r.s.lock()()

	for _, p := range plans {
		if _, exists := r.s.plans.Get(p.ID); exists {
			continue
		}
		r.s.plans.Insert(p.ID, p)
	}
	return nil
}
