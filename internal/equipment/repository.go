package equipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

const equipmentColumns = `id, name, category, status, reserved_by, reserved_until`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Equipment, error) {
	items := []Equipment{}
	if err := r.db.SelectContext(ctx, &items, `SELECT `+equipmentColumns+` FROM equipment ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	return items, nil
}

func (r *repository) ListByCategory(ctx context.Context, category string) ([]Equipment, error) {
	items := []Equipment{}
	err := r.db.SelectContext(ctx, &items, `SELECT `+equipmentColumns+` FROM equipment WHERE category = $1 ORDER BY seq`, category)
	if err != nil {
		return nil, fmt.Errorf("list equipment by category: %w", err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Equipment, error) {
	var e Equipment
	err := r.db.GetContext(ctx, &e, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e Equipment) (*Equipment, error) {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = StatusAvailable
	}

	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES (:id, :name, :category, :status, :reserved_by, :reserved_until)
	`
	if _, err := r.db.NamedExecContext(ctx, query, e); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	return &e, nil
}

func (r *repository) Reserve(ctx context.Context, id string, res Reservation) (*Equipment, error) {
	var e Equipment
	err := r.db.GetContext(ctx, &e, `
		UPDATE equipment
		SET status = $1, reserved_by = $2, reserved_until = $3
		WHERE id = $4
		RETURNING `+equipmentColumns,
		StatusReserved, res.UserID, res.Until, id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reserve equipment: %w", err)
	}
	return &e, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM equipment`); err != nil {
		return 0, fmt.Errorf("count equipment: %w", err)
	}
	return n, nil
}
