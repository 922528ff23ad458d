package store

import (
	"context"
	"sort"

	"academiasport/internal/workout"

	"github.com/lib/pq"
)

type workoutRepository struct {
	s *Store
}

func NewWorkoutRepository(s *Store) workout.Repository {
	return &workoutRepository{s: s}
}

func (r *workoutRepository) Create(_ context.Context, w workout.Workout) (*workout.Workout, error) {
	defer r.s.lock()()

	if w.Exercises == nil {
		w.Exercises = pq.StringArray{}
	}
	created := r.s.workouts.Create(func(id string) workout.Workout {
		w.ID = id
		return w
	})
	return &created, nil
}

func (r *workoutRepository) GetByID(_ context.Context, id string) (*workout.Workout, error) {
	defer r.s.lock()()

	w, ok := r.s.workouts.Get(id)
	if !ok {
		return nil, workout.ErrWorkoutNotFound
	}
	return &w, nil
}

func (r *workoutRepository) ListByUser(_ context.Context, userID string) ([]workout.Workout, error) {
	defer r.s.lock()()

	workouts := r.s.workouts.Filter(func(w workout.Workout) bool { return w.UserID == userID })
	// Dates are YYYY-MM-DD, so string order is calendar order.
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
	return workouts, nil
}
