package store

import (
	"context"

	"academiasport/internal/equipment"
)

type equipmentRepository struct {
	s *Store
}

func NewEquipmentRepository(s *Store) equipment.Repository {
	return &equipmentRepository{s: s}
}

func (r *equipmentRepository) List(_ context.Context) ([]equipment.Equipment, error) {
	defer r.s.lock()()
	return r.s.equipment.All(), nil
}

func (r *equipmentRepository) ListByCategory(_ context.Context, category string) ([]equipment.Equipment, error) {
	defer r.s.lock()()
	return r.s.equipment.Filter(func(e equipment.Equipment) bool { return e.Category == category }), nil
}

func (r *equipmentRepository) GetByID(_ context.Context, id string) (*equipment.Equipment, error) {
	defer r.s.lock()()

	e, ok := r.s.equipment.Get(id)
	if !ok {
		return nil, equipment.ErrEquipmentNotFound
	}
	return &e, nil
}

func (r *equipmentRepository) Create(_ context.Context, e equipment.Equipment) (*equipment.Equipment, error) {
	defer r.s.lock()()

	if e.Status == "" {
		e.Status = equipment.StatusAvailable
	}
	created := r.s.equipment.Create(func(id string) equipment.Equipment {
		e.ID = id
		return e
	})
	return &created, nil
}

func (r *equipmentRepository) Reserve(_ context.Context, id string, res equipment.Reservation) (*equipment.Equipment, error) {
	defer r.s.lock()()

	e, ok := r.s.equipment.Update(id, res.Apply)
	if !ok {
		return nil, equipment.ErrEquipmentNotFound
	}
	return &e, nil
}

func (r *equipmentRepository) Count(_ context.Context) (int, error) {
	defer r.s.lock()()
	return r.s.equipment.Len(), nil
}
