package checkin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"academiasport/internal/user"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	checkinColumns  = `id, user_id, checkin_time, checkout_time, duration`
	uniqueViolation = "23505"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CheckIn(ctx context.Context, userID string, at time.Time) (*Checkin, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID string
	err = tx.GetContext(ctx, &lockedID, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock user: %w", err)
	}

	var open bool
	err = tx.GetContext(ctx, &open,
		`SELECT EXISTS(SELECT 1 FROM checkins WHERE user_id = $1 AND checkout_time IS NULL)`, userID)
	if err != nil {
		return nil, fmt.Errorf("check active visit: %w", err)
	}
	if open {
		return nil, ErrAlreadyCheckedIn
	}

	c := Checkin{ID: uuid.NewString(), UserID: userID, CheckinTime: at}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO checkins (id, user_id, checkin_time) VALUES ($1, $2, $3)`,
		c.ID, c.UserID, c.CheckinTime,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("insert checkin: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET is_checked_in = TRUE, last_checkin = $1 WHERE id = $2`, at, userID)
	if err != nil {
		return nil, fmt.Errorf("mark user checked in: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) CheckOut(ctx context.Context, id string, at time.Time) (*Checkin, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var c Checkin
	err = tx.GetContext(ctx, &c, `SELECT `+checkinColumns+` FROM checkins WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, ErrCheckinNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("lock checkin: %w", err)
	}

	wasOpen := c.Active()
	c.Close(at)

	_, err = tx.ExecContext(ctx,
		`UPDATE checkins SET checkout_time = $1, duration = $2 WHERE id = $3`,
		c.CheckoutTime, c.Duration, c.ID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("close checkin: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE users SET is_checked_in = FALSE WHERE id = $1`, c.UserID); err != nil {
		return nil, false, fmt.Errorf("mark user checked out: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return &c, wasOpen, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Checkin, error) {
	checkins := []Checkin{}
	err := r.db.SelectContext(ctx, &checkins,
		`SELECT `+checkinColumns+` FROM checkins WHERE user_id = $1 ORDER BY checkin_time DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	return checkins, nil
}

func (r *repository) Active(ctx context.Context, userID string) (*Checkin, error) {
	var c Checkin
	err := r.db.GetContext(ctx, &c,
		`SELECT `+checkinColumns+` FROM checkins WHERE user_id = $1 AND checkout_time IS NULL ORDER BY seq LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("active checkin: %w", err)
	}
	return &c, nil
}
