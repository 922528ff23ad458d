package equipment

import "context"

type Repository interface {
	List(ctx context.Context) ([]Equipment, error)
	ListByCategory(ctx context.Context, category string) ([]Equipment, error)
	GetByID(ctx context.Context, id string) (*Equipment, error)
	Create(ctx context.Context, e Equipment) (*Equipment, error)
	Reserve(ctx context.Context, id string, r Reservation) (*Equipment, error)
	Count(ctx context.Context) (int, error)
}
