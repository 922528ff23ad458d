package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"academiasport/internal/booking"
	"academiasport/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClass(t *testing.T, s *Store, max int) *schedule.Class {
	t.Helper()
	c, err := NewClassRepository(s).Create(context.Background(), schedule.Class{
		Name: "Yoga Flow", Instructor: "Ana Costa", StartTime: "07:00", EndTime: "08:00",
		Room: "Studio 1", MaxParticipants: max, Date: "2024-05-01",
	})
	require.NoError(t, err)
	return c
}

func participants(t *testing.T, s *Store, classID string) int {
	t.Helper()
	c, err := NewClassRepository(s).GetByID(context.Background(), classID)
	require.NoError(t, err)
	return c.CurrentParticipants
}

func countBooked(s *Store, classID string) int {
	defer s.lock()()
	return len(s.bookings.Filter(func(b booking.Booking) bool {
		return b.ClassID == classID && b.Status == booking.StatusBooked
	}))
}

func TestBooking_CounterTracksBookedBookings(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	class := newClass(t, s, 3)

	_, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID, BookedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u2", ClassID: class.ID, BookedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, 2, participants(t, s, class.ID))

	_, err = repo.CancelBooking(ctx, "u1", class.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, participants(t, s, class.ID))
	assert.Equal(t, countBooked(s, class.ID), participants(t, s, class.ID))

	_, err = repo.CancelBooking(ctx, "u1", class.ID)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	assert.Equal(t, 1, participants(t, s, class.ID))
}

func TestBooking_FullLeavesCounterUnchanged(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	class := newClass(t, s, 1)

	_, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID})
	require.NoError(t, err)

	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u2", ClassID: class.ID})
	assert.ErrorIs(t, err, booking.ErrClassFull)
	assert.Equal(t, 1, participants(t, s, class.ID))
	assert.Equal(t, 1, countBooked(s, class.ID))
}

func TestBooking_UnknownClass(t *testing.T) {
	repo := NewBookingRepository(New())

	_, err := repo.CreateBooking(context.Background(), booking.BookParams{UserID: "u1", ClassID: "missing"})
	assert.ErrorIs(t, err, schedule.ErrClassNotFound)
}

func TestBooking_DoubleBookingAllowedByDefault(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	class := newClass(t, s, 5)

	first, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, participants(t, s, class.ID))

	cancelled, err := repo.CancelBooking(ctx, "u1", class.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, cancelled.ID)
	assert.Equal(t, booking.StatusCancelled, cancelled.Status)

	has, err := repo.UserHasBookingForClass(ctx, "u1", class.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBooking_RejectDuplicates(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	class := newClass(t, s, 5)

	_, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID, RejectDuplicates: true})
	require.NoError(t, err)

	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID, RejectDuplicates: true})
	assert.ErrorIs(t, err, booking.ErrAlreadyBooked)
	assert.Equal(t, 1, participants(t, s, class.ID))
}

func TestBooking_CancelFloorsAtZero(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	class := newClass(t, s, 5)

	_, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: class.ID})
	require.NoError(t, err)
	s.classes.Update(class.ID, func(c *schedule.Class) { c.CurrentParticipants = 0 })

	_, err = repo.CancelBooking(ctx, "u1", class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, participants(t, s, class.ID))
}

func TestBooking_UserBookingsNewestFirst(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	ctx := context.Background()
	a, b := newClass(t, s, 5), newClass(t, s, 5)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	_, err := repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: a.ID, BookedAt: base})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u1", ClassID: b.ID, BookedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, booking.BookParams{UserID: "u2", ClassID: b.ID, BookedAt: base})
	require.NoError(t, err)

	bookings, err := repo.GetUserBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, b.ID, bookings[0].ClassID)
	assert.Equal(t, a.ID, bookings[1].ClassID)
}

func TestBooking_ConcurrentBookingsNeverExceedCapacity(t *testing.T) {
	s := New()
	repo := NewBookingRepository(s)
	class := newClass(t, s, 5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateBooking(context.Background(), booking.BookParams{UserID: "u", ClassID: class.ID}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 5, participants(t, s, class.ID))
	assert.Equal(t, 5, countBooked(s, class.ID))
}
