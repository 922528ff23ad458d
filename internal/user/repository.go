package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrUserNotFound = errors.New("user not found")

const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, phone, birth_date, member_since,
	current_weight, target_weight, primary_goal, plan_id, is_checked_in,
	last_checkin, profile_photo, is_admin`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) (*User, error) {
	u.ID = uuid.NewString()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :name, :email, :password_hash, :phone, :birth_date, :member_since,
			:current_weight, :target_weight, :primary_goal, :plan_id, :is_checked_in,
			:last_checkin, :profile_photo, :is_admin)
	`

	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *repository) findOne(ctx context.Context, query string, arg interface{}) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *repository) Promote(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, `UPDATE users SET is_admin = TRUE WHERE id = $1 RETURNING `+userColumns, id)
}

func (r *repository) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var u User
	err = tx.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock user: %w", err)
	}

	req.Apply(&u)

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET name = $1, phone = $2, birth_date = $3, current_weight = $4,
			target_weight = $5, primary_goal = $6, plan_id = $7, profile_photo = $8
		WHERE id = $9
	`, u.Name, u.Phone, u.BirthDate, u.CurrentWeight, u.TargetWeight, u.PrimaryGoal, u.PlanID, u.ProfilePhoto, u.ID)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &u, nil
}
