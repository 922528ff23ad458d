package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"academiasport/internal/schedule"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, user_id, class_id, status, booking_date`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, p BookParams) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var seats struct {
		Max     int `db:"max_participants"`
		Current int `db:"current_participants"`
	}
	err = tx.QueryRowxContext(ctx,
		`SELECT max_participants, current_participants FROM classes WHERE id = $1 FOR UPDATE`,
		p.ClassID,
	).StructScan(&seats)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock class: %w", err)
	}

	if seats.Current >= seats.Max {
		return nil, ErrClassFull
	}

	if p.RejectDuplicates {
		var exists bool
		err = tx.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM class_bookings WHERE user_id = $1 AND class_id = $2 AND status = 'booked')`,
			p.UserID, p.ClassID,
		)
		if err != nil {
			return nil, fmt.Errorf("check booking: %w", err)
		}
		if exists {
			return nil, ErrAlreadyBooked
		}
	}

	b := Booking{
		ID:          uuid.NewString(),
		UserID:      p.UserID,
		ClassID:     p.ClassID,
		Status:      StatusBooked,
		BookingDate: p.BookedAt,
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO class_bookings (id, user_id, class_id, status, booking_date) VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.UserID, b.ClassID, b.Status, b.BookingDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE classes SET current_participants = current_participants + 1 WHERE id = $1`,
		p.ClassID,
	)
	if err != nil {
		return nil, fmt.Errorf("increment participants: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CancelBooking(ctx context.Context, userID, classID string) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var b Booking
	err = tx.GetContext(ctx, &b,
		`SELECT `+bookingColumns+` FROM class_bookings
		 WHERE user_id = $1 AND class_id = $2 AND status = 'booked'
		 ORDER BY seq LIMIT 1 FOR UPDATE`,
		userID, classID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE class_bookings SET status = 'cancelled' WHERE id = $1`, b.ID); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE classes SET current_participants = GREATEST(current_participants - 1, 0) WHERE id = $1`,
		classID,
	)
	if err != nil {
		return nil, fmt.Errorf("decrement participants: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	return &b, nil
}

func (r *repository) UserHasBookingForClass(ctx context.Context, userID, classID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM class_bookings
			WHERE user_id = $1 AND class_id = $2 AND status = 'booked'
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, classID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM class_bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC
	`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
