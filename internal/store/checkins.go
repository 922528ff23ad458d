package store

import (
	"context"
	"time"

	"academiasport/internal/checkin"
	"academiasport/internal/user"
)

type checkinRepository struct {
	s *Store
}

func NewCheckinRepository(s *Store) checkin.Repository {
	return &checkinRepository{s: s}
}

func (r *checkinRepository) CheckIn(_ context.Context, userID string, at time.Time) (*checkin.Checkin, error) {
	defer r.s.lock()()

	if _, ok := r.s.users.Get(userID); !ok {
		return nil, user.ErrUserNotFound
	}
	if _, _, open := r.s.checkins.Find(openFor(userID)); open {
		return nil, checkin.ErrAlreadyCheckedIn
	}

	c := r.s.checkins.Create(func(id string) checkin.Checkin {
		return checkin.Checkin{ID: id, UserID: userID, CheckinTime: at}
	})
	r.s.users.Update(userID, func(u *user.User) {
		last := at
		u.IsCheckedIn = true
		u.LastCheckin = &last
	})
	return &c, nil
}

func (r *checkinRepository) CheckOut(_ context.Context, id string, at time.Time) (*checkin.Checkin, bool, error) {
	defer r.s.lock()()

	current, ok := r.s.checkins.Get(id)
	if !ok {
		return nil, false, checkin.ErrCheckinNotFound
	}

	c, _ := r.s.checkins.Update(id, func(c *checkin.Checkin) {
		c.Close(at)
	})
	r.s.users.Update(c.UserID, func(u *user.User) {
		u.IsCheckedIn = false
	})
	return &c, current.Active(), nil
}

func (r *checkinRepository) ListByUser(_ context.Context, userID string) ([]checkin.Checkin, error) {
	defer r.s.lock()()

	checkins := r.s.checkins.Filter(func(c checkin.Checkin) bool { return c.UserID == userID })
	newestFirst(checkins, func(c checkin.Checkin) time.Time { return c.CheckinTime })
	return checkins, nil
}

func (r *checkinRepository) Active(_ context.Context, userID string) (*checkin.Checkin, error) {
	defer r.s.lock()()

	_, c, ok := r.s.checkins.Find(openFor(userID))
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func openFor(userID string) func(checkin.Checkin) bool {
	return func(c checkin.Checkin) bool { return c.UserID == userID && c.Active() }
}
