package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

const classColumns = `id, name, instructor, start_time, end_time, room, max_participants, current_participants, date`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Class, error) {
	classes := []Class{}
	err := r.db.SelectContext(ctx, &classes, `SELECT `+classColumns+` FROM classes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]Class, error) {
	classes := []Class{}
	err := r.db.SelectContext(ctx, &classes, `SELECT `+classColumns+` FROM classes WHERE date = $1 ORDER BY seq`, date)
	if err != nil {
		return nil, fmt.Errorf("list classes by date: %w", err)
	}
	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Class, error) {
	var c Class
	err := r.db.GetContext(ctx, &c, `SELECT `+classColumns+` FROM classes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c Class) (*Class, error) {
	c.ID = uuid.NewString()
	c.CurrentParticipants = 0

	query := `
		INSERT INTO classes (id, name, instructor, start_time, end_time, room, max_participants, current_participants, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Instructor, c.StartTime, c.EndTime, c.Room, c.MaxParticipants, c.CurrentParticipants, c.Date)
	if err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return &c, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM classes`); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return n, nil
}
