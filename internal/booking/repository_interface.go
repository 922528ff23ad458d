package booking

import "context"

// Repository performs booking transitions atomically together with the
// class participant counter.
type Repository interface {
	// CreateBooking fails with schedule.ErrClassNotFound, ErrClassFull or,
	// when p.RejectDuplicates is set, ErrAlreadyBooked. On success the class
	// counter has been incremented.
	CreateBooking(ctx context.Context, p BookParams) (*Booking, error)
	// CancelBooking cancels the oldest booked booking for the pair and
	// decrements the class counter, never below zero.
	CancelBooking(ctx context.Context, userID, classID string) (*Booking, error)
	UserHasBookingForClass(ctx context.Context, userID, classID string) (bool, error)
	GetUserBookings(ctx context.Context, userID string) ([]Booking, error)
}
