package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `id, user_id, name, date, duration, calories, exercises`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, w Workout) (*Workout, error) {
	w.ID = uuid.NewString()
	w.normalize()

	query := `
		INSERT INTO workouts (id, user_id, name, date, duration, calories, exercises)
		VALUES (:id, :user_id, :name, :date, :duration, :calories, :exercises)
	`
	if _, err := r.db.NamedExecContext(ctx, query, w); err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return &w, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Workout, error) {
	var w Workout
	err := r.db.GetContext(ctx, &w, `SELECT `+workoutColumns+` FROM workouts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	w.normalize()
	return &w, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Workout, error) {
	workouts := []Workout{}
	err := r.db.SelectContext(ctx, &workouts,
		`SELECT `+workoutColumns+` FROM workouts WHERE user_id = $1 ORDER BY date DESC, seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	for i := range workouts {
		workouts[i].normalize()
	}
	return workouts, nil
}
