package schedule

import "context"

type Repository interface {
	List(ctx context.Context) ([]Class, error)
	ListByDate(ctx context.Context, date string) ([]Class, error)
	GetByID(ctx context.Context, id string) (*Class, error)
	// Create stores c under a new id with currentParticipants forced to 0.
	Create(ctx context.Context, c Class) (*Class, error)
	Count(ctx context.Context) (int, error)
}
