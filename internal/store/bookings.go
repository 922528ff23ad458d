package store

import (
	"context"
	"time"

	"academiasport/internal/booking"
	"academiasport/internal/schedule"
)

type bookingRepository struct {
	s *Store
}

func NewBookingRepository(s *Store) booking.Repository {
	return &bookingRepository{s: s}
}

func (r *bookingRepository) CreateBooking(_ context.Context, p booking.BookParams) (*booking.Booking, error) {
	defer r.s.lock()()

	class, ok := r.s.classes.Get(p.ClassID)
	if !ok {
		return nil, schedule.ErrClassNotFound
	}
	if class.Full() {
		return nil, booking.ErrClassFull
	}
	if p.RejectDuplicates && r.hasActive(p.UserID, p.ClassID) {
		return nil, booking.ErrAlreadyBooked
	}

	b := r.s.bookings.Create(func(id string) booking.Booking {
		return booking.Booking{
			ID:          id,
			UserID:      p.UserID,
			ClassID:     p.ClassID,
			Status:      booking.StatusBooked,
			BookingDate: p.BookedAt,
		}
	})
	r.s.classes.Update(p.ClassID, func(c *schedule.Class) {
		c.CurrentParticipants++
	})
	return &b, nil
}

func (r *bookingRepository) CancelBooking(_ context.Context, userID, classID string) (*booking.Booking, error) {
	defer r.s.lock()()

	id, _, ok := r.s.bookings.Find(activeFor(userID, classID))
	if !ok {
		return nil, booking.ErrBookingNotFound
	}

	b, _ := r.s.bookings.Update(id, func(b *booking.Booking) {
		b.Status = booking.StatusCancelled
	})
	r.s.classes.Update(classID, func(c *schedule.Class) {
		if c.CurrentParticipants > 0 {
			c.CurrentParticipants--
		}
	})
	return &b, nil
}

func (r *bookingRepository) UserHasBookingForClass(_ context.Context, userID, classID string) (bool, error) {
	defer r.s.lock()()
	return r.hasActive(userID, classID), nil
}

func (r *bookingRepository) GetUserBookings(_ context.Context, userID string) ([]booking.Booking, error) {
	defer r.s.lock()()

	bookings := r.s.bookings.Filter(func(b booking.Booking) bool { return b.UserID == userID })
	newestFirst(bookings, func(b booking.Booking) time.Time { return b.BookingDate })
	return bookings, nil
}

// hasActive must be called with the store lock held.
func (r *bookingRepository) hasActive(userID, classID string) bool {
	_, _, ok := r.s.bookings.Find(activeFor(userID, classID))
	return ok
}

func activeFor(userID, classID string) func(booking.Booking) bool {
	return func(b booking.Booking) bool {
		return b.UserID == userID && b.ClassID == classID && b.Status == booking.StatusBooked
	}
}
