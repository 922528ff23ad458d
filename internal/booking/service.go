package booking

import (
	"context"
	"errors"
	"time"

	"academiasport/internal/logger"
	"academiasport/internal/metrics"
	"academiasport/internal/schedule"
	"academiasport/internal/user"
)

var (
	ErrClassFull       = errors.New("class is full")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyBooked   = errors.New("user already has a booking for this class")
)

// Notifier delivers booking emails. Failures are logged and ignored.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email, name, className, when string) error
	SendCancellation(ctx context.Context, email, name, className, when string) error
}

// MemberLookup resolves the member a booking belongs to.
type MemberLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Service interface {
	BookClass(ctx context.Context, userID, classID string) (*Booking, error)
	CancelBooking(ctx context.Context, userID, classID string) error
	GetUserBookings(ctx context.Context, userID string) ([]Booking, error)
}

type service struct {
	repo             Repository
	classes          schedule.Repository
	members          MemberLookup
	notifier         Notifier
	rejectDuplicates bool
	now              func() time.Time
}

func NewService(repo Repository, classes schedule.Repository, members MemberLookup, notifier Notifier, rejectDuplicates bool) Service {
	return &service{
		repo:             repo,
		classes:          classes,
		members:          members,
		notifier:         notifier,
		rejectDuplicates: rejectDuplicates,
		now:              time.Now,
	}
}

func (s *service) BookClass(ctx context.Context, userID, classID string) (*Booking, error) {
	b, err := s.repo.CreateBooking(ctx, BookParams{
		UserID:           userID,
		ClassID:          classID,
		BookedAt:         s.now(),
		RejectDuplicates: s.rejectDuplicates,
	})
	switch {
	case errors.Is(err, ErrClassFull):
		metrics.RecordBooking("full")
		return nil, err
	case errors.Is(err, ErrAlreadyBooked):
		metrics.RecordBooking("duplicate")
		return nil, err
	case err != nil:
		return nil, err
	}

	metrics.RecordBooking("booked")
	s.notify(ctx, userID, classID, true)
	return b, nil
}

func (s *service) CancelBooking(ctx context.Context, userID, classID string) error {
	if _, err := s.repo.CancelBooking(ctx, userID, classID); err != nil {
		return err
	}

	metrics.RecordBookingCancellation()
	s.notify(ctx, userID, classID, false)
	return nil
}

func (s *service) GetUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) notify(ctx context.Context, userID, classID string, confirmed bool) {
	if s.notifier == nil || s.members == nil {
		return
	}

	member, err := s.members.GetByID(ctx, userID)
	if err != nil {
		return
	}
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return
	}

	when := class.Date + " " + class.StartTime + "-" + class.EndTime + ", " + class.Room
	if confirmed {
		err = s.notifier.SendBookingConfirmation(ctx, member.Email, member.Name, class.Name, when)
	} else {
		err = s.notifier.SendCancellation(ctx, member.Email, member.Name, class.Name, when)
	}
	if err != nil {
		logger.WithError(err).Warn("booking email not queued", "user_id", userID, "class_id", classID)
	}
}
