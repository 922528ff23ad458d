package store

import (
	"context"

	"academiasport/internal/user"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) user.Repository {
	return &userRepository{s: s}
}

func (r *userRepository) Create(_ context.Context, u user.User) (*user.User, error) {
	defer r.s.lock()()

	if _, _, taken := r.s.users.Find(byEmail(u.Email)); taken {
		return nil, user.ErrEmailExists
	}

	created := r.s.users.Create(func(id string) user.User {
		u.ID = id
		return u
	})
	return &created, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	defer r.s.lock()()

	_, u, ok := r.s.users.Find(byEmail(email))
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	defer r.s.lock()()

	u, ok := r.s.users.Get(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) EmailExists(_ context.Context, email string) (bool, error) {
	defer r.s.lock()()

	_, _, ok := r.s.users.Find(byEmail(email))
	return ok, nil
}

func (r *userRepository) Update(_ context.Context, id string, req user.UpdateRequest) (*user.User, error) {
	defer r.s.lock()()

	u, ok := r.s.users.Update(id, req.Apply)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) Promote(_ context.Context, id string) (*user.User, error) {
	defer r.s.lock()()

	u, ok := r.s.users.Update(id, func(u *user.User) { u.IsAdmin = true })
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func byEmail(email string) func(user.User) bool {
	return func(u user.User) bool { return u.Email == email }
}
