package plan

import "context"

type Repository interface {
	List(ctx context.Context) ([]Plan, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	// Seed inserts the plans that are not stored yet; existing ids are left untouched.
	Seed(ctx context.Context, plans []Plan) error
}
