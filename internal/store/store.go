package store

import (
	"sync"

	"academiasport/internal/audit"
	"academiasport/internal/booking"
	"academiasport/internal/checkin"
	"academiasport/internal/equipment"
	"academiasport/internal/plan"
	"academiasport/internal/schedule"
	"academiasport/internal/user"
	"academiasport/internal/workout"
)

// Store is the in-memory entity store. Every repository built on it holds
// mu for the whole operation, so each operation is atomic with respect to
// all others.
type Store struct {
	mu sync.Mutex

	users         *Collection[user.User]
	plans         *Collection[plan.Plan]
	classes       *Collection[schedule.Class]
	bookings      *Collection[booking.Booking]
	workouts      *Collection[workout.Workout]
	equipment     *Collection[equipment.Equipment]
	checkins      *Collection[checkin.Checkin]
	loginAttempts *Collection[audit.LoginAttempt]
}

func New() *Store {
	return &Store{
		users:         NewCollection[user.User](),
		plans:         NewCollection[plan.Plan](),
		classes:       NewCollection[schedule.Class](),
		bookings:      NewCollection[booking.Booking](),
		workouts:      NewCollection[workout.Workout](),
		equipment:     NewCollection[equipment.Equipment](),
		checkins:      NewCollection[checkin.Checkin](),
		loginAttempts: NewCollection[audit.LoginAttempt](),
	}
}

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}
