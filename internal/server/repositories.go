package server

import (
	"academiasport/internal/audit"
	"academiasport/internal/booking"
	"academiasport/internal/checkin"
	"academiasport/internal/equipment"
	"academiasport/internal/plan"
	"academiasport/internal/schedule"
	"academiasport/internal/store"
	"academiasport/internal/user"
	"academiasport/internal/workout"

	"github.com/jmoiron/sqlx"
)

// Repositories is one storage backend for every entity.
type Repositories struct {
	Users     user.Repository
	Plans     plan.Repository
	Audit     audit.Repository
	Classes   schedule.Repository
	Bookings  booking.Repository
	Workouts  workout.Repository
	Equipment equipment.Repository
	Checkins  checkin.Repository
}

func MemoryRepositories(s *store.Store) Repositories {
	return Repositories{
		Users:     store.NewUserRepository(s),
		Plans:     store.NewPlanRepository(s),
		Audit:     store.NewAuditRepository(s),
		Classes:   store.NewClassRepository(s),
		Bookings:  store.NewBookingRepository(s),
		Workouts:  store.NewWorkoutRepository(s),
		Equipment: store.NewEquipmentRepository(s),
		Checkins:  store.NewCheckinRepository(s),
	}
}

func PostgresRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Users:     user.NewRepository(db),
		Plans:     plan.NewRepository(db),
		Audit:     audit.NewRepository(db),
		Classes:   schedule.NewRepository(db),
		Bookings:  booking.NewRepository(db),
		Workouts:  workout.NewRepository(db),
		Equipment: equipment.NewRepository(db),
		Checkins:  checkin.NewRepository(db),
	}
}
