package store

import (
	"context"

	"academiasport/internal/schedule"
)

type classRepository struct {
	s *Store
}

func NewClassRepository(s *Store) schedule.Repository {
	return &classRepository{s: s}
}

func (r *classRepository) List(_ context.Context) ([]schedule.Class, error) {
	defer r.s.lock()()
	return r.s.classes.All(), nil
}

func (r *classRepository) ListByDate(_ context.Context, date string) ([]schedule.Class, error) {
	defer r.s.lock()()
	return r.s.classes.Filter(func(c schedule.Class) bool { return c.Date == date }), nil
}

func (r *classRepository) GetByID(_ context.Context, id string) (*schedule.Class, error) {
	defer r.s.lock()()

	c, ok := r.s.classes.Get(id)
	if !ok {
		return nil, schedule.ErrClassNotFound
	}
	return &c, nil
}

func (r *classRepository) Create(_ context.Context, c schedule.Class) (*schedule.Class, error) {
	defer r.s.lock()()

	created := r.s.classes.Create(func(id string) schedule.Class {
		c.ID = id
		c.CurrentParticipants = 0
		return c
	})
	return &created, nil
}

func (r *classRepository) Count(_ context.Context) (int, error) {
	defer r.s.lock()()
	return r.s.classes.Len(), nil
}
