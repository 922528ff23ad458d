package user

import "context"

type Repository interface {
	// Create stores u under a freshly generated id and returns the stored record.
	Create(ctx context.Context, u User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
	// Promote grants administrator rights to an existing user.
	Promote(ctx context.Context, id string) (*User, error)
}
