package workout

import "context"

type Repository interface {
	Create(ctx context.Context, w Workout) (*Workout, error)
	GetByID(ctx context.Context, id string) (*Workout, error)
	// ListByUser returns the user's workouts, latest date first.
	ListByUser(ctx context.Context, userID string) ([]Workout, error)
}
